package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/schedule/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type WorkSchedule interface {
	Insert(ctx context.Context, model model.WorkSchedule) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.WorkSchedule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.WorkSchedule, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountByEmployee(ctx context.Context, employeeID string) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.WorkSchedule]
}

func New(db *postgres.Connection, otel otel.Otel) WorkSchedule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.WorkSchedule](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (repo *repositoryImpl) CountByEmployee(ctx context.Context, employeeID string) (int, error) {
	return repo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmployeeID,
				Operator: gDto.FilterOperatorEq,
				Value:    employeeID,
				Table:    model.TableName,
			},
		},
	})
}

// FilterByEmployee scopes schedule queries to one employee.
func FilterByEmployee(employeeID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmployeeID,
				Operator: gDto.FilterOperatorEq,
				Value:    employeeID,
				Table:    model.TableName,
			},
		},
	}
}

// FilterByDateRange scopes schedule queries to work dates within [start, end].
func FilterByDateRange(start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "work_date_start",
				Field:    model.FieldWorkDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    start,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "work_date_end",
				Field:    model.FieldWorkDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    end,
				Table:    model.TableName,
			},
		},
	}
}
