package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tempah/infras/otel"
	"tempah/infras/postgres"
	"tempah/internal/domains/schedule/model"
	gDto "tempah/shared/dto"
	gRepo "tempah/shared/repository"
)

type Schedule interface {
	// GetForDay returns the staff member's recurring window for the given
	// day of week (0 = Sunday). A zero-ID result means the staff member is
	// closed that day; that is a normal outcome, not an error.
	GetForDay(ctx context.Context, staffID string, dayOfWeek int) (model.StaffSchedule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.StaffSchedule, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.StaffSchedule]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Schedule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.StaffSchedule](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetForDay(ctx context.Context, staffID string, dayOfWeek int) (model.StaffSchedule, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStaffID,
				Operator: gDto.FilterOperatorEq,
				Value:    staffID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDayOfWeek,
				Operator: gDto.FilterOperatorEq,
				Value:    dayOfWeek,
				Table:    model.TableName,
			},
		},
	}

	return repo.Get(ctx, filter)
}
