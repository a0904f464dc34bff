package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"plantcare.app/leafclinic/internal/model"
)

type HistoryRepository interface {
	Create(ctx context.Context, session *model.DiagnosisSession) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	FindPageByUser(ctx context.Context, userID uuid.UUID, page, perPage int) ([]model.DiagnosisSession, error)
	FindOwnedByIDs(ctx context.Context, userID uuid.UUID, ids []uint) ([]model.DiagnosisSession, error)
	DeleteOwnedByIDs(ctx context.Context, userID uuid.UUID, ids []uint) error
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, session *model.DiagnosisSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *historyRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.DiagnosisSession{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindPageByUser returns one page of the user's records, most recent upload
// first (descending id).
func (r *historyRepository) FindPageByUser(ctx context.Context, userID uuid.UUID, page, perPage int) ([]model.DiagnosisSession, error) {
	var sessions []model.DiagnosisSession
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// FindOwnedByIDs resolves ids against records owned by the given user only.
// Records belonging to other users are simply absent from the result.
func (r *historyRepository) FindOwnedByIDs(ctx context.Context, userID uuid.UUID, ids []uint) ([]model.DiagnosisSession, error) {
	var sessions []model.DiagnosisSession
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, userID).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *historyRepository) DeleteOwnedByIDs(ctx context.Context, userID uuid.UUID, ids []uint) error {
	return r.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, userID).
		Delete(&model.DiagnosisSession{}).Error
}
