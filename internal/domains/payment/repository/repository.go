package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tempah/infras/otel"
	"tempah/infras/postgres"
	"tempah/internal/domains/payment/model"
	"tempah/shared/constant"
	gDto "tempah/shared/dto"
	"tempah/shared/logger"
	gRepo "tempah/shared/repository"
	"tempah/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Payment interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PaymentIntent, error)
	GetPendingByBooking(ctx context.Context, bookingID string) (model.PaymentIntent, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.PaymentIntent) error
	Transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error

	// MarkStatusTx settles the intent with an optimistic status guard. It
	// reports false when the intent was not in the expected status.
	MarkStatusTx(ctx context.Context, sqltx *sqlx.Tx, id, fromStatus, toStatus, trackingCode, modifiedBy string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PaymentIntent]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PaymentIntent](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetPendingByBooking(ctx context.Context, bookingID string) (model.PaymentIntent, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
			},
		},
	}

	return repo.Get(ctx, filter)
}

func (repo *repositoryImpl) MarkStatusTx(ctx context.Context, sqltx *sqlx.Tx, id, fromStatus, toStatus, trackingCode, modifiedBy string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment_intent.MarkStatusTx")
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4 WHERE %s = $5 AND %s = $6",
		model.TableName, model.FieldStatus, model.FieldTrackingCode, constant.FieldModifiedAt, constant.FieldModifiedBy, model.FieldID, model.FieldStatus)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.ExecContext(ctx, query, toStatus, trackingCode, timezone.Now(), modifiedBy, id, fromStatus)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to mark payment intent status (%s): %w", model.EntityName, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return rows > 0, nil
}
