package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tempah/infras/otel"
	"tempah/infras/postgres"
	"tempah/internal/domains/booking/model"
	"tempah/shared/constant"
	gDto "tempah/shared/dto"
	"tempah/shared/logger"
	gRepo "tempah/shared/repository"
	"tempah/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error

	// LockStaffCalendarTx serializes all booking writes for one staff member
	// within the transaction. The advisory lock is released on commit or
	// rollback, so overlap re-checks done after acquiring it cannot race
	// against a concurrent insert for the same staff.
	LockStaffCalendarTx(ctx context.Context, sqltx *sqlx.Tx, staffID string) error

	CountOverlapping(ctx context.Context, staffID string, startTime, endTime time.Time) (int, error)
	CountOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, staffID string, startTime, endTime time.Time) (int, error)
	ListActiveInWindow(ctx context.Context, staffID string, windowStart, windowEnd time.Time) ([]model.Booking, error)

	// UpdateStatusFrom moves the booking from one status to another only if it
	// is still in the expected status. It reports false when no row matched,
	// which callers treat as a state conflict.
	UpdateStatusFrom(ctx context.Context, id, fromStatus, toStatus, modifiedBy string) (bool, error)
	UpdateStatusFromTx(ctx context.Context, sqltx *sqlx.Tx, id, fromStatus, toStatus, modifiedBy string) (bool, error)
	ConfirmPaidTx(ctx context.Context, sqltx *sqlx.Tx, id string, depositPaid float64, modifiedBy string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) LockStaffCalendarTx(ctx context.Context, sqltx *sqlx.Tx, staffID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.LockStaffCalendarTx")
	defer scope.End()

	query := "SELECT pg_advisory_xact_lock(hashtext($1))"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := sqltx.ExecContext(ctx, query, staffID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock staff calendar (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) CountOverlapping(ctx context.Context, staffID string, startTime, endTime time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountOverlapping")
	defer scope.End()

	return repo.countOverlapping(ctx, scope, repo.db.Read, staffID, startTime, endTime)
}

func (repo *repositoryImpl) CountOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, staffID string, startTime, endTime time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountOverlappingTx")
	defer scope.End()

	return repo.countOverlapping(ctx, scope, sqltx, staffID, startTime, endTime)
}

// countOverlapping counts active bookings colliding with [startTime, endTime)
// using half-open interval semantics, so back-to-back bookings never collide.
func (repo *repositoryImpl) countOverlapping(ctx context.Context, scope otel.Scope, ext sqlx.ExtContext, staffID string, startTime, endTime time.Time) (int, error) {
	query, args, err := sqlx.In(
		fmt.Sprintf("SELECT COUNT(%s) FROM %s WHERE %s = ? AND %s IN (?) AND %s < ? AND %s > ?",
			model.FieldID, model.TableName, model.FieldStaffID, model.FieldStatus, model.FieldStartTime, model.FieldEndTime),
		staffID, model.ActiveStatuses, endTime, startTime,
	)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to build overlap query (%s): %w", model.EntityName, err)
	}

	query = ext.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	if err := sqlx.GetContext(ctx, ext, &count, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count overlapping bookings (%s): %w", model.EntityName, err)
	}

	return count, nil
}

func (repo *repositoryImpl) ListActiveInWindow(ctx context.Context, staffID string, windowStart, windowEnd time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListActiveInWindow")
	defer scope.End()

	query, args, err := sqlx.In(
		fmt.Sprintf("SELECT * FROM %s WHERE %s = ? AND %s IN (?) AND %s >= ? AND %s < ? ORDER BY %s ASC",
			model.TableName, model.FieldStaffID, model.FieldStatus, model.FieldStartTime, model.FieldStartTime, model.FieldStartTime),
		staffID, model.ActiveStatuses, windowStart, windowEnd,
	)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to build active bookings query (%s): %w", model.EntityName, err)
	}

	query = repo.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.Booking

	if err := repo.db.Read.SelectContext(ctx, &bookings, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list active bookings (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}

func (repo *repositoryImpl) UpdateStatusFrom(ctx context.Context, id, fromStatus, toStatus, modifiedBy string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatusFrom")
	defer scope.End()

	return repo.updateStatusFrom(ctx, scope, repo.db.Write, id, fromStatus, toStatus, modifiedBy)
}

func (repo *repositoryImpl) UpdateStatusFromTx(ctx context.Context, sqltx *sqlx.Tx, id, fromStatus, toStatus, modifiedBy string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatusFromTx")
	defer scope.End()

	return repo.updateStatusFrom(ctx, scope, sqltx, id, fromStatus, toStatus, modifiedBy)
}

func (repo *repositoryImpl) updateStatusFrom(ctx context.Context, scope otel.Scope, ext sqlx.ExtContext, id, fromStatus, toStatus, modifiedBy string) (bool, error) {
	query := fmt.Sprintf("UPDATE %s SET %s = $1, %s = $2, %s = $3 WHERE %s = $4 AND %s = $5",
		model.TableName, model.FieldStatus, constant.FieldModifiedAt, constant.FieldModifiedBy, model.FieldID, model.FieldStatus)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := ext.ExecContext(ctx, query, toStatus, timezone.Now(), modifiedBy, id, fromStatus)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update booking status (%s): %w", model.EntityName, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return rows > 0, nil
}

func (repo *repositoryImpl) ConfirmPaidTx(ctx context.Context, sqltx *sqlx.Tx, id string, depositPaid float64, modifiedBy string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ConfirmPaidTx")
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4 WHERE %s = $5 AND %s = $6",
		model.TableName, model.FieldStatus, model.FieldDepositPaid, constant.FieldModifiedAt, constant.FieldModifiedBy, model.FieldID, model.FieldStatus)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.ExecContext(ctx, query, model.StatusConfirmed, depositPaid, timezone.Now(), modifiedBy, id, model.StatusPendingPayment)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to confirm booking (%s): %w", model.EntityName, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return rows > 0, nil
}
