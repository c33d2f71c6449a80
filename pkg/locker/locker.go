package locker

import (
	"context"
	"errors"
)

var (
	// ErrLockTimeout блокировку не удалось получить до истечения контекста
	ErrLockTimeout = errors.New("locker: timed out waiting for lock")

	// ErrBackend хранилище блокировок недоступно
	ErrBackend = errors.New("locker: backend error")

	// ErrNotOwner блокировка уже истекла или принадлежит другому владельцу
	ErrNotOwner = errors.New("locker: lock not owned by this client")
)

// Release снимает блокировку
type Release func() error

// Locker взаимоисключающая блокировка по ключу.
// Lock ждет освобождения ключа, пока не истечет ctx.
type Locker interface {
	Lock(ctx context.Context, key string) (Release, error)
}
