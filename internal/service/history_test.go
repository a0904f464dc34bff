package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"plantcare.app/leafclinic/internal/model"
	"plantcare.app/leafclinic/internal/repository"
	"plantcare.app/leafclinic/pkg/apperror"
)

func seedHistory(t *testing.T, db *gorm.DB, userID uuid.UUID, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		rec := model.DiagnosisSession{
			Date:     "Aug/28/2026 9:00 AM",
			Image:    fmt.Sprintf("key-%d", i),
			FileName: fmt.Sprintf("leaf-%d.jpg", i),
			UserID:   userID,
		}
		require.NoError(t, db.Create(&rec).Error)
	}
}

func TestListPagination(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	seedHistory(t, db, userID, 12)

	svc := NewHistoryService(repository.NewHistoryRepository(db))
	ctx := context.Background()

	records, meta, err := svc.List(ctx, userID, 1, 5)
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, uint(12), records[0].ID)
	assert.Equal(t, uint(8), records[4].ID)
	assert.Equal(t, int64(12), meta.TotalItems)
	assert.Equal(t, 3, meta.TotalPages)

	records, _, err = svc.List(ctx, userID, 3, 5)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, uint(2), records[0].ID)
	assert.Equal(t, uint(1), records[1].ID)
}

func TestListDefaultsApplied(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	seedHistory(t, db, userID, 7)

	svc := NewHistoryService(repository.NewHistoryRepository(db))

	records, meta, err := svc.List(context.Background(), userID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, records, DefaultHistoryPerPage)
	assert.Equal(t, DefaultHistoryPage, meta.CurrentPage)
}

func TestListScopedToUser(t *testing.T) {
	db := newTestDB(t)
	alice := uuid.New()
	bob := uuid.New()
	seedHistory(t, db, alice, 3)
	seedHistory(t, db, bob, 2)

	svc := NewHistoryService(repository.NewHistoryRepository(db))

	_, meta, err := svc.List(context.Background(), alice, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), meta.TotalItems)
}

func TestDeleteRemovesExactlyGivenRecords(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	seedHistory(t, db, userID, 8)

	svc := NewHistoryService(repository.NewHistoryRepository(db))

	remaining, err := svc.Delete(context.Background(), userID, []uint{3, 7})
	require.NoError(t, err)
	assert.Equal(t, int64(6), remaining)

	var ids []uint
	require.NoError(t, db.Model(&model.DiagnosisSession{}).Order("id").Pluck("id", &ids).Error)
	assert.Equal(t, []uint{1, 2, 4, 5, 6, 8}, ids)
}

func TestDeleteUnknownIDFailsFast(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	seedHistory(t, db, userID, 3)

	svc := NewHistoryService(repository.NewHistoryRepository(db))

	_, err := svc.Delete(context.Background(), userID, []uint{2, 99})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Contains(t, err.Error(), "99")

	// Nothing was deleted.
	var count int64
	require.NoError(t, db.Model(&model.DiagnosisSession{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	db := newTestDB(t)
	alice := uuid.New()
	bob := uuid.New()
	seedHistory(t, db, alice, 2)

	svc := NewHistoryService(repository.NewHistoryRepository(db))

	_, err := svc.Delete(context.Background(), bob, []uint{1})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&model.DiagnosisSession{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestDeleteWithNoIDsReturnsCount(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	seedHistory(t, db, userID, 4)

	svc := NewHistoryService(repository.NewHistoryRepository(db))

	remaining, err := svc.Delete(context.Background(), userID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), remaining)
}
