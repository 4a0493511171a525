package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/rentalunit/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type RentalUnit interface {
	Insert(ctx context.Context, model model.RentalUnit) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RentalUnit, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RentalUnit, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListByCenters(ctx context.Context, centerIDs []string) ([]model.RentalUnit, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RentalUnit]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RentalUnit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RentalUnit](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListByCenters returns the full roster of the given centers, unpaginated.
func (repo *repositoryImpl) ListByCenters(ctx context.Context, centerIDs []string) ([]model.RentalUnit, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCenterID,
				Operator: gDto.FilterOperatorIn,
				Value:    centerIDs,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}, filter)
}
