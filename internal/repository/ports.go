package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Database . Database
type Database interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, record any) error
	SeedTable(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	GetAll(ctx context.Context, entity any) error
	UpdateColumns(ctx context.Context, model any, column string, value any, updates map[string]any) error
}
