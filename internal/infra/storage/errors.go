// Package storage содержит общие ошибки реализаций хранилищ.
package storage

import "errors"

// ErrDocumentNotFound общий sentinel "документ не найден"
// Конкретные реализации (document, filedoc) оборачивают его своими ошибками,
// чтобы потребители могли проверять errors.Is независимо от выбранного драйвера
var ErrDocumentNotFound = errors.New("storage: document not found")
