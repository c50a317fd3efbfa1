package service

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/aaANDkk/sutdychat/models"
)

// runInTx executes fn inside a unit of work. Business-rule errors surface
// verbatim; a storage-unavailable failure gets one immediate retry with a
// fresh unit of work before surfacing.
func runInTx(ctx context.Context, factory UnitOfWorkFactory, fn func(uow UnitOfWork) error) error {
	err := execInTx(ctx, factory, fn)
	if err != nil && errors.Is(err, models.ErrStorageUnavailable) {
		log.WithError(err).Warn("Storage unavailable, retrying once")
		err = execInTx(ctx, factory, fn)
	}
	return err
}

func execInTx(ctx context.Context, factory UnitOfWorkFactory, fn func(uow UnitOfWork) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	if err := fn(uow); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
