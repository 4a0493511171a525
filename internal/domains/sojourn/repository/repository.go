package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/sojourn/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
	"lodge/shared/timezone"
)

type Group interface {
	Insert(ctx context.Context, model model.SojournGroup) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SojournGroup, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SojournGroup, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListForBooking(ctx context.Context, bookingID string) ([]model.SojournGroup, error)
	MarkScheduledTx(ctx context.Context, tx *sqlx.Tx, id string) (bool, error)
	MarkUnscheduledTx(ctx context.Context, tx *sqlx.Tx, id string) error
}

type groupImpl struct {
	gRepo.Repository[model.SojournGroup]
	db   *postgres.Connection
	otel otel.Otel
}

func NewGroup(db *postgres.Connection, otel otel.Otel) Group {
	return &groupImpl{
		Repository: gRepo.NewRepository[model.SojournGroup](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *groupImpl) ListForBooking(ctx context.Context, bookingID string) ([]model.SojournGroup, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldDateFrom, SortDir: gDto.SortDirAsc}, filter)
}

// MarkScheduledTx performs the guarded unscheduled→scheduled transition.
// The guard runs in the same statement as the update, so a concurrent
// generation of the same group loses the race and sees false.
func (repo *groupImpl) MarkScheduledTx(ctx context.Context, tx *sqlx.Tx, id string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sojourn group.MarkScheduledTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3 AND %s = $4",
		model.TableName, model.FieldStatus, constant.FieldModifiedAt, model.FieldID, model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.ExecContext(ctx, query, model.StatusScheduled, timezone.Now(), id, model.StatusUnscheduled)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to mark sojourn group scheduled: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

func (repo *groupImpl) MarkUnscheduledTx(ctx context.Context, tx *sqlx.Tx, id string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sojourn group.MarkUnscheduledTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3",
		model.TableName, model.FieldStatus, constant.FieldModifiedAt, model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := tx.ExecContext(ctx, query, model.StatusUnscheduled, timezone.Now(), id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to mark sojourn group unscheduled: %w", err)
	}

	return nil
}

type Assignment interface {
	Insert(ctx context.Context, model model.Assignment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Assignment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Assignment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListForGroup(ctx context.Context, groupID string) ([]model.Assignment, error)
}

type assignmentImpl struct {
	gRepo.Repository[model.Assignment]
	db   *postgres.Connection
	otel otel.Otel
}

func NewAssignment(db *postgres.Connection, otel otel.Otel) Assignment {
	return &assignmentImpl{
		Repository: gRepo.NewRepository[model.Assignment](model.AssignmentEntityName, model.AssignmentTableName, model.AssignmentFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *assignmentImpl) ListForGroup(ctx context.Context, groupID string) ([]model.Assignment, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.AssignmentFieldGroupID,
				Operator: gDto.FilterOperatorEq,
				Value:    groupID,
				Table:    model.AssignmentTableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}, filter)
}
