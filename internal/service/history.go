package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"plantcare.app/leafclinic/internal/dto"
	"plantcare.app/leafclinic/internal/model"
	"plantcare.app/leafclinic/internal/repository"
	"plantcare.app/leafclinic/pkg/apperror"
)

const (
	DefaultHistoryPage    = 1
	DefaultHistoryPerPage = 5
)

type HistoryService interface {
	// List returns one page of the user's records (most recent first) plus
	// pagination metadata over the full set.
	List(ctx context.Context, userID uuid.UUID, page, perPage int) ([]model.DiagnosisSession, dto.PaginationMeta, error)
	// Delete removes the given records. Every id must belong to the caller;
	// any unknown or foreign id fails the whole operation before anything is
	// deleted. Returns the user's remaining record count.
	Delete(ctx context.Context, userID uuid.UUID, ids []uint) (int64, error)
}

type historyService struct {
	history repository.HistoryRepository
}

func NewHistoryService(history repository.HistoryRepository) HistoryService {
	return &historyService{history: history}
}

func (s *historyService) List(ctx context.Context, userID uuid.UUID, page, perPage int) ([]model.DiagnosisSession, dto.PaginationMeta, error) {
	if page < 1 {
		page = DefaultHistoryPage
	}
	if perPage < 1 {
		perPage = DefaultHistoryPerPage
	}

	total, err := s.history.CountByUser(ctx, userID)
	if err != nil {
		return nil, dto.PaginationMeta{}, err
	}

	records, err := s.history.FindPageByUser(ctx, userID, page, perPage)
	if err != nil {
		return nil, dto.PaginationMeta{}, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	meta := dto.PaginationMeta{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		PerPage:     perPage,
	}

	return records, meta, nil
}

func (s *historyService) Delete(ctx context.Context, userID uuid.UUID, ids []uint) (int64, error) {
	if len(ids) > 0 {
		owned, err := s.history.FindOwnedByIDs(ctx, userID, ids)
		if err != nil {
			return 0, err
		}

		if len(owned) != len(ids) {
			ownedSet := make(map[uint]struct{}, len(owned))
			for _, rec := range owned {
				ownedSet[rec.ID] = struct{}{}
			}
			for _, id := range ids {
				if _, ok := ownedSet[id]; !ok {
					return 0, fmt.Errorf("%w: record %d", apperror.ErrNotFound, id)
				}
			}
		}

		if err := s.history.DeleteOwnedByIDs(ctx, userID, ids); err != nil {
			return 0, err
		}
	}

	return s.history.CountByUser(ctx, userID)
}
