package document

import (
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/infra/storage"
)

var (
	// ErrDocumentNotFound возвращается, когда документ не найден
	// Оборачивает storage.ErrDocumentNotFound для драйверо-независимых проверок
	ErrDocumentNotFound = fmt.Errorf("document.repository: %w", storage.ErrDocumentNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("document.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("document.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("document.repository: failed to scan row")

	// ErrMarshal возвращается при ошибке сериализации документа
	ErrMarshal = errors.New("document.repository: failed to marshal document")

	// ErrUnmarshal возвращается при ошибке десериализации документа
	ErrUnmarshal = errors.New("document.repository: failed to unmarshal document")
)
