package document

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

// Repository key/value хранилище JSON документов поверх PostgreSQL
// Документ целиком лежит в одной JSONB колонке, upsert по ключу атомарен -
// это единственная граница консистентности хранилища
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория документов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Read читает документ по ключу и декодирует его в out
// Возвращает ErrDocumentNotFound, если документа нет
func (r *Repository) Read(ctx context.Context, key string, out interface{}) error {
	query, args, err := psqlbuilder.Select("value").
		From("documents").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Read - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return ErrDocumentNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Read - scan document: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: Read - key=%s: %v", ErrUnmarshal, key, err)
	}

	return nil
}

// Write записывает документ по ключу (insert или update целиком)
func (r *Repository) Write(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: Write - key=%s: %v", ErrMarshal, key, err)
	}

	query, args, err := psqlbuilder.Insert("documents").
		Columns("key", "value").
		Values(key, raw).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Write - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Write - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
