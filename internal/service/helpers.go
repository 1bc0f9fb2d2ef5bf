package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "review-cycle-backend/internal/errors"
	"review-cycle-backend/internal/lock"
	"review-cycle-backend/internal/repository"

	"gorm.io/gorm"
)

// repoError maps repository failures to application errors.
// notFound may be nil when a missing row cannot happen.
func repoError(err error, notFound error, action string) error {
	switch {
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, repository.ErrStaleObject):
		return apperrors.ErrConcurrentModification
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}

// acquireLock takes key on locker, reporting contention as ErrPeriodLocked
func acquireLock(ctx context.Context, locker lock.Locker, key string) (func(), error) {
	release, err := locker.Acquire(ctx, key)
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return nil, apperrors.ErrPeriodLocked
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	return release, nil
}

func validationError(err error) error {
	return apperrors.NewValidationError("", err.Error())
}
