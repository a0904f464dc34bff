package repository

import (
	"context"

	"gorm.io/gorm"
	"plantcare.app/leafclinic/internal/model"
)

type DiseaseRepository interface {
	Count(ctx context.Context) (int64, error)
	FindAll(ctx context.Context) ([]model.Disease, error)
	SearchByName(ctx context.Context, substring string) ([]model.Disease, error)
	// SeedIfEmpty inserts the given rows inside a transaction, but only when
	// the table is still empty. Returns true when rows were inserted.
	SeedIfEmpty(ctx context.Context, diseases []model.Disease) (bool, error)
}

type diseaseRepository struct {
	db *gorm.DB
}

func NewDiseaseRepository(db *gorm.DB) DiseaseRepository {
	return &diseaseRepository{db: db}
}

func (r *diseaseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Disease{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *diseaseRepository) FindAll(ctx context.Context) ([]model.Disease, error) {
	var diseases []model.Disease
	if err := r.db.WithContext(ctx).Order("id").Find(&diseases).Error; err != nil {
		return nil, err
	}
	return diseases, nil
}

func (r *diseaseRepository) SearchByName(ctx context.Context, substring string) ([]model.Disease, error) {
	var diseases []model.Disease
	if err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+substring+"%").
		Order("id").
		Find(&diseases).Error; err != nil {
		return nil, err
	}
	return diseases, nil
}

func (r *diseaseRepository) SeedIfEmpty(ctx context.Context, diseases []model.Disease) (bool, error) {
	seeded := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Disease{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		if err := tx.CreateInBatches(diseases, 100).Error; err != nil {
			return err
		}
		seeded = true
		return nil
	})
	return seeded, err
}
