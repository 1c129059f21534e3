package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	InsertRecord(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	DeleteBy(ctx context.Context, model any, query string, args ...any) (int64, error)
	FindOrdered(ctx context.Context, entity any, order string, query string, args ...any) error
	Ping(ctx context.Context) error
}
