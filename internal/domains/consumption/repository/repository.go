package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/consumption/model"
	ruModel "lodge/internal/domains/rentalunit/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

type Consumption interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Consumption, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Consumption, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	ListForGroup(ctx context.Context, groupID string) ([]model.Consumption, error)
	ListForCenters(ctx context.Context, centerIDs []string, dateFrom, dateTo time.Time) ([]model.Consumption, error)

	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	LockUnitsTx(ctx context.Context, tx *sqlx.Tx, unitIDs []string) error
	ListForUnitsTx(ctx context.Context, tx *sqlx.Tx, unitIDs []string) ([]model.Consumption, error)
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []model.Consumption) error
	DeleteForGroupTx(ctx context.Context, tx *sqlx.Tx, groupID string) error
	DeleteForBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID string) error
	DeleteBlockTx(ctx context.Context, tx *sqlx.Tx, unitID string, dateFrom, dateTo time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Consumption]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Consumption {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Consumption](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) ListForGroup(ctx context.Context, groupID string) ([]model.Consumption, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldGroupID,
				Operator: gDto.FilterOperatorEq,
				Value:    groupID,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{SortBy: model.TableName + "." + model.FieldDate, SortDir: gDto.SortDirAsc}, filter)
}

// ListForCenters loads every consumption of the given centers whose day
// falls in [dateFrom, dateTo+1]. The extra trailing day lets the aggregator
// carry an out-of-order block's capacity decrement back to the day before
// the block starts.
func (repo *repositoryImpl) ListForCenters(ctx context.Context, centerIDs []string, dateFrom, dateTo time.Time) ([]model.Consumption, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    ruModel.FieldCenterID,
				Operator: gDto.FilterOperatorIn,
				Value:    centerIDs,
				Table:    ruModel.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    dateFrom,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    dateTo.AddDate(0, 0, 1),
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{SortBy: model.TableName + "." + model.FieldDate, SortDir: gDto.SortDirAsc}, filter)
}

func (repo *repositoryImpl) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".consumption.WithTx")
	defer scope.End()

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		if err != nil {
			_ = tx.Rollback()

			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			logger.ErrorWithStack(commitErr)
			scope.TraceError(commitErr)

			err = fmt.Errorf("failed to commit transaction: %w", commitErr)
		}
	}()

	err = fn(tx)

	return err
}

// LockUnitsTx serializes concurrent allocations per rental unit with
// transaction-scoped advisory locks. Callers must pass the unit IDs sorted
// so two overlapping requests acquire the locks in the same order.
func (repo *repositoryImpl) LockUnitsTx(ctx context.Context, tx *sqlx.Tx, unitIDs []string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".consumption.LockUnitsTx")
	defer scope.End()

	for _, unitID := range unitIDs {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", unitID); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return fmt.Errorf("failed to lock rental unit: %w", err)
		}
	}

	return nil
}

func (repo *repositoryImpl) ListForUnitsTx(ctx context.Context, tx *sqlx.Tx, unitIDs []string) ([]model.Consumption, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".consumption.ListForUnitsTx")
	defer scope.End()

	query, args, err := sqlx.In(
		fmt.Sprintf("SELECT * FROM %s WHERE %s IN (?)", model.TableName, model.FieldRentalUnitID),
		unitIDs,
	)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to build unit consumption query: %w", err)
	}

	query = tx.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var models []model.Consumption
	if err := tx.SelectContext(ctx, &models, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list unit consumptions: %w", err)
	}

	return models, nil
}

func (repo *repositoryImpl) DeleteForGroupTx(ctx context.Context, tx *sqlx.Tx, groupID string) error {
	return repo.deleteWhereTx(ctx, tx, "DeleteForGroupTx", model.FieldGroupID, groupID)
}

func (repo *repositoryImpl) DeleteForBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID string) error {
	return repo.deleteWhereTx(ctx, tx, "DeleteForBookingTx", model.FieldBookingID, bookingID)
}

func (repo *repositoryImpl) deleteWhereTx(ctx context.Context, tx *sqlx.Tx, op, field, value string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".consumption."+op)
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", model.TableName, field)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := tx.ExecContext(ctx, query, value); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete consumptions: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) DeleteBlockTx(ctx context.Context, tx *sqlx.Tx, unitID string, dateFrom, dateTo time.Time) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".consumption.DeleteBlockTx")
	defer scope.End()

	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s >= $3 AND %s <= $4",
		model.TableName, model.FieldRentalUnitID, model.FieldType, model.FieldDate, model.FieldDate,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := tx.ExecContext(ctx, query, unitID, model.TypeOOO, dateFrom, dateTo); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete out-of-order block: %w", err)
	}

	return nil
}
