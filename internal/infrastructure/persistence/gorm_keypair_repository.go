// Package persistence implements the keypair record store on GORM with
// sqlite and postgres drivers.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"textbook_rsa_service/internal/domain/keys"
	"textbook_rsa_service/internal/infrastructure/persistence/models"
	"textbook_rsa_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormKeypairRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeypairRepository creates a new GORM-based KeypairRepository
// implementation
func NewGormKeypairRepository(db *gorm.DB, logger logger.Logger) (keys.KeypairRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db handle cannot be nil")
	}
	return &gormKeypairRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeypairRepository) Create(ctx context.Context, record *keys.KeypairRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeypairModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create keypair record: %w", err)
	}

	r.logger.Info("Created keypair record with id ", record.ID)
	return nil
}

func (r *gormKeypairRepository) List(ctx context.Context, query *keys.KeypairQuery) ([]*keys.KeypairRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeypairModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeypairModel{})

	if query.DigitCount > 0 {
		dbQuery = dbQuery.Where("digit_count = ?", query.DigitCount)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch keypair records: %w", err)
	}

	domainList := make([]*keys.KeypairRecord, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormKeypairRepository) GetByID(ctx context.Context, id string) (*keys.KeypairRecord, error) {
	var model models.KeypairModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("keypair record with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch keypair record: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormKeypairRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.KeypairModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete keypair record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("keypair record with ID %s not found", id)
	}

	r.logger.Info("Deleted keypair record with id ", id)
	return nil
}
