package filedoc

import (
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/infra/storage"
)

var (
	// ErrDocumentNotFound возвращается, когда файл документа не найден
	// Оборачивает storage.ErrDocumentNotFound для драйверо-независимых проверок
	ErrDocumentNotFound = fmt.Errorf("filedoc.store: %w", storage.ErrDocumentNotFound)

	// ErrInvalidKey возвращается при недопустимом ключе документа
	ErrInvalidKey = errors.New("filedoc.store: invalid document key")

	// ErrReadFile возвращается при ошибке чтения файла документа
	ErrReadFile = errors.New("filedoc.store: failed to read document file")

	// ErrWriteFile возвращается при ошибке записи файла документа
	ErrWriteFile = errors.New("filedoc.store: failed to write document file")

	// ErrMarshal возвращается при ошибке сериализации документа
	ErrMarshal = errors.New("filedoc.store: failed to marshal document")

	// ErrUnmarshal возвращается при ошибке десериализации документа
	ErrUnmarshal = errors.New("filedoc.store: failed to unmarshal document")
)
