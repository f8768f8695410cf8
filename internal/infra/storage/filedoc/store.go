package filedoc

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// keyPattern допустимые ключи документов (имя файла без расширения)
var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Store key/value хранилище JSON документов в локальных файлах
// Один документ - один файл <baseDir>/<key>.json
// Запись выполняется через временный файл с rename, чтобы чтение
// никогда не видело наполовину записанный документ
type Store struct {
	baseDir string
}

// NewStore создает файловое хранилище документов в каталоге baseDir
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: NewStore - create base dir: %v", ErrWriteFile, err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Read читает документ по ключу и декодирует его в out
// Возвращает ErrDocumentNotFound, если файла нет
func (s *Store) Read(_ context.Context, key string, out interface{}) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ErrDocumentNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Read - key=%s: %v", ErrReadFile, key, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: Read - key=%s: %v", ErrUnmarshal, key, err)
	}

	return nil
}

// Write записывает документ по ключу (файл перезаписывается целиком)
func (s *Store) Write(_ context.Context, key string, value interface{}) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: Write - key=%s: %v", ErrMarshal, key, err)
	}

	tmp, err := os.CreateTemp(s.baseDir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: Write - create temp file: %v", ErrWriteFile, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: Write - write temp file: %v", ErrWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: Write - close temp file: %v", ErrWriteFile, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: Write - rename temp file: %v", ErrWriteFile, err)
	}

	return nil
}

func (s *Store) pathFor(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("%w: key=%q", ErrInvalidKey, key)
	}
	return filepath.Join(s.baseDir, key+".json"), nil
}
