package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"plantcare.app/leafclinic/internal/model"
	"plantcare.app/leafclinic/internal/repository"
)

const (
	catalogCacheKey = "cache:diseases"
	catalogCacheTTL = time.Hour
)

type CatalogService interface {
	// EnsureSeeded loads the bundled dataset into the catalog when, and only
	// when, the table is empty. Safe to call repeatedly.
	EnsureSeeded(ctx context.Context) error
	ListAll(ctx context.Context) ([]model.Disease, error)
	// Search returns rows whose name contains the substring. An empty
	// substring matches nothing.
	Search(ctx context.Context, substring string) ([]model.Disease, error)
}

type catalogService struct {
	diseases repository.DiseaseRepository
	redis    *redis.Client
	seedFile string
}

// NewCatalogService builds the catalog service. redisClient may be nil, in
// which case every read goes straight to the store.
func NewCatalogService(diseases repository.DiseaseRepository, redisClient *redis.Client, seedFile string) CatalogService {
	return &catalogService{
		diseases: diseases,
		redis:    redisClient,
		seedFile: seedFile,
	}
}

func (s *catalogService) EnsureSeeded(ctx context.Context) error {
	count, err := s.diseases.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows, err := loadSeedFile(s.seedFile)
	if err != nil {
		return err
	}

	// The repository re-checks emptiness inside the transaction, so a
	// concurrent seeder cannot double-insert.
	seeded, err := s.diseases.SeedIfEmpty(ctx, rows)
	if err != nil {
		return err
	}
	if seeded {
		log.Printf("disease catalog seeded with %d entries", len(rows))
		s.invalidateCache(ctx)
	}

	return nil
}

func (s *catalogService) ListAll(ctx context.Context) ([]model.Disease, error) {
	if cached, ok := s.readCache(ctx); ok {
		return cached, nil
	}

	diseases, err := s.diseases.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	s.writeCache(ctx, diseases)
	return diseases, nil
}

func (s *catalogService) Search(ctx context.Context, substring string) ([]model.Disease, error) {
	if substring == "" {
		return []model.Disease{}, nil
	}
	return s.diseases.SearchByName(ctx, substring)
}

// loadSeedFile parses the bundled CSV. Expected header columns:
// Disease, Description, Symptom, Treatment, Image.
func loadSeedFile(path string) ([]model.Disease, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("seed file %s is empty", path)
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	for _, required := range []string{"Disease", "Description", "Symptom", "Treatment", "Image"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("seed file %s is missing column %q", path, required)
		}
	}

	diseases := make([]model.Disease, 0, len(records)-1)
	for _, row := range records[1:] {
		diseases = append(diseases, model.Disease{
			Name:        row[col["Disease"]],
			Description: row[col["Description"]],
			Symptom:     row[col["Symptom"]],
			Treatment:   row[col["Treatment"]],
			Image:       row[col["Image"]],
		})
	}

	return diseases, nil
}

func (s *catalogService) readCache(ctx context.Context) ([]model.Disease, bool) {
	if s.redis == nil {
		return nil, false
	}

	data, err := s.redis.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var diseases []model.Disease
	if err := json.Unmarshal(data, &diseases); err != nil {
		return nil, false
	}
	return diseases, true
}

func (s *catalogService) writeCache(ctx context.Context, diseases []model.Disease) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(diseases)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
		log.Printf("failed to cache disease catalog: %v", err)
	}
}

func (s *catalogService) invalidateCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, catalogCacheKey).Err(); err != nil {
		log.Printf("failed to invalidate disease catalog cache: %v", err)
	}
}
