package lock

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=lock.go -destination=../mocks/lock_mocks.go -package=mocks

// ErrLocked is returned when another holder owns the key
var ErrLocked = errors.New("lock is held by another request")

// Locker serializes work on a key across requests (and, for RedisLocker, across instances)
type Locker interface {
	// Acquire takes the lock or fails with ErrLocked. The returned release
	// func is safe to call more than once.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// PeriodKey is the lock key guarding every mutation of one period
func PeriodKey(periodID uuid.UUID) string {
	return fmt.Sprintf("period:%s", periodID)
}

// PeriodOrderKey is the lock key guarding order allocation within a year and unit
func PeriodOrderKey(year int, unit string) string {
	return fmt.Sprintf("period-order:%d:%s", year, unit)
}
