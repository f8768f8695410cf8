package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с NotifyService
// NotifyService рассылает письма администратору и клиентам салона;
// здесь он используется для уведомлений о смене статуса занятости дня
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotifyService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyDayFullyBooked отправляет уведомление о том, что день полностью занят
func (c *Client) NotifyDayFullyBooked(ctx context.Context, date string) error {
	return c.send(ctx, AvailabilityNotification{Event: EventDayFullyBooked, Date: date})
}

// NotifyDayReopened отправляет уведомление о том, что в дне снова есть свободные слоты
func (c *Client) NotifyDayReopened(ctx context.Context, date string) error {
	return c.send(ctx, AvailabilityNotification{Event: EventDayReopened, Date: date})
}

func (c *Client) send(ctx context.Context, notification AvailabilityNotification) error {
	url := fmt.Sprintf("%s/internal/notifications/availability", c.baseURL)

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		c.log.Info("NotifyService: sent %s for date=%s", notification.Event, notification.Date)
		return nil
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}
}
