package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/bookingservice/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type BookingService interface {
	Insert(ctx context.Context, model model.BookingService) error
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []model.BookingService) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingService, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingService, error)
	GetByBooking(ctx context.Context, bookingID string) ([]model.BookingService, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.BookingService]
}

func New(db *postgres.Connection, otel otel.Otel) BookingService {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BookingService](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (repo *repositoryImpl) GetByBooking(ctx context.Context, bookingID string) ([]model.BookingService, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, FilterByBooking(bookingID))
}

// FilterByBooking scopes attachment queries to one booking.
func FilterByBooking(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
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
}
