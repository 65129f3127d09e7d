package sessionstore

import "errors"

var (
	// ErrGet возвращается при ошибке чтения сессии из Redis
	ErrGet = errors.New("sessionstore: failed to get session")

	// ErrSet возвращается при ошибке записи сессии в Redis
	ErrSet = errors.New("sessionstore: failed to set session")

	// ErrDelete возвращается при ошибке удаления сессии из Redis
	ErrDelete = errors.New("sessionstore: failed to delete session")
)
