package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (p *PostgresDB) MigrateTable(tbl ...any) error {
	err := p.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (p *PostgresDB) SaveToTable(ctx context.Context, record any) error {
	if err := p.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// SeedTable inserts the records only when their table is empty.
func (p *PostgresDB) SeedTable(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	slice := v.Elem()
	if slice.Len() == 0 {
		return nil
	}

	var count int64

	elemType := slice.Index(0).Interface()
	if err := p.DB.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := p.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (p *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := p.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (p *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := p.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (p *PostgresDB) GetAll(ctx context.Context, entity any) error {
	tx := p.DB.WithContext(ctx).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records: %w", tx.Error)
	}
	return nil
}

func (p *PostgresDB) UpdateColumns(ctx context.Context, model any, column string, value any, updates map[string]any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := p.DB.WithContext(ctx).Model(model).Where(query, value).Updates(updates)
	if tx.Error != nil {
		return fmt.Errorf("updating records by %q: %w", column, tx.Error)
	}
	return nil
}
