package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"plantcare.app/leafclinic/internal/model"
	"plantcare.app/leafclinic/internal/repository"
	"plantcare.app/leafclinic/pkg/storage"
)

type UploadService interface {
	// Upload stores the file under the user's folder and records the
	// diagnosis session. The returned record carries the generated storage
	// key in Image and the sanitized original name in FileName.
	Upload(ctx context.Context, user *model.User, fileName string, r io.Reader) (*model.DiagnosisSession, error)
}

type uploadService struct {
	history repository.HistoryRepository
	store   storage.FileStore
	now     func() time.Time
}

func NewUploadService(history repository.HistoryRepository, store storage.FileStore) UploadService {
	return &uploadService{
		history: history,
		store:   store,
		now:     time.Now,
	}
}

func (s *uploadService) Upload(ctx context.Context, user *model.User, fileName string, r io.Reader) (*model.DiagnosisSession, error) {
	display := displayName(fileName)
	key := storageKey(display)

	// File first, then record. A failed record creation removes the file so
	// no record ever references a missing image.
	if _, err := s.store.Save(ctx, user.Email, key, r); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	session := &model.DiagnosisSession{
		Date:        s.now().Format(model.SessionDateFormat),
		Prediction:  "",
		Disease:     "",
		Description: "",
		Image:       key,
		FileName:    display,
		UserID:      user.ID,
	}

	if err := s.history.Create(ctx, session); err != nil {
		if removeErr := s.store.Remove(ctx, user.Email, key); removeErr != nil {
			return nil, fmt.Errorf("failed to record upload: %w (orphan file %s: %v)", err, key, removeErr)
		}
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}

	return session, nil
}

// displayName strips any client-supplied path and keeps only a safe base
// name for display.
func displayName(fileName string) string {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == string(filepath.Separator) {
		return "upload"
	}
	return base
}

// storageKey derives a collision-resistant on-disk name. The uuid prefix
// keys the file; the original base name rides along for operator legibility.
func storageKey(display string) string {
	return uuid.New().String() + "_" + display
}
