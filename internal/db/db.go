package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	db *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	return NewWithDialector(postgres.Open(dsn))
}

// NewWithDialector opens a connection through an already configured dialector.
func NewWithDialector(dialector gorm.Dialector) (*PostgresDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		db: db,
	}, nil
}

func (p *PostgresDB) MigrateTable(tbl ...any) error {
	err := p.db.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Insert writes records, a pointer to a slice, skipping rows whose primary key already exists.
func (p *PostgresDB) Insert(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	if v.Elem().Len() == 0 {
		return nil
	}

	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(records).Error
	if err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (p *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := p.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetAllBy loads every row whose column matches value into entity, ordered by orderBy when set.
func (p *PostgresDB) GetAllBy(ctx context.Context, column string, value any, orderBy string, entity any) error {
	tx := p.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value)
	if orderBy != "" {
		tx = tx.Order(orderBy)
	}
	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("getting records by %q: %w", column, err)
	}
	return nil
}

func (p *PostgresDB) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (p *PostgresDB) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
