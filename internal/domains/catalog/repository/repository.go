package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tempah/infras/otel"
	"tempah/infras/postgres"
	"tempah/internal/domains/catalog/model"
	"tempah/shared"
	gDto "tempah/shared/dto"
	gRepo "tempah/shared/repository"
)

type Catalog interface {
	GetService(ctx context.Context, id string) (model.Service, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Service, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Service]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Catalog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Service](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetService(ctx context.Context, id string) (model.Service, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}
