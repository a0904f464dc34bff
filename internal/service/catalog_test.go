package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"plantcare.app/leafclinic/internal/model"
	"plantcare.app/leafclinic/internal/repository"
)

const seedFixture = `Disease,Description,Symptom,Treatment,Image
Early Blight,Fungal disease,Target-like rings,Rotate crops,early_blight.jpg
Late Blight,Oomycete disease,Water-soaked lesions,Copper fungicide,late_blight.jpg
Powdery Mildew,Fungal disease,White powdery patches,Sulfur spray,powdery_mildew.jpg
`

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diseases.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newCatalog(t *testing.T, db *gorm.DB, seed string) CatalogService {
	t.Helper()
	return NewCatalogService(repository.NewDiseaseRepository(db), nil, writeSeedFile(t, seed))
}

func TestEnsureSeededLoadsDataset(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(t, db, seedFixture)
	ctx := context.Background()

	require.NoError(t, svc.EnsureSeeded(ctx))

	diseases, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, diseases, 3)
	assert.Equal(t, "Early Blight", diseases[0].Name)
	assert.Equal(t, "Copper fungicide", diseases[1].Treatment)
}

func TestEnsureSeededIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(t, db, seedFixture)
	ctx := context.Background()

	// Back-to-back seeding must not duplicate the catalog.
	require.NoError(t, svc.EnsureSeeded(ctx))
	require.NoError(t, svc.EnsureSeeded(ctx))

	var count int64
	require.NoError(t, db.Model(&model.Disease{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestSeedIfEmptyGuardsInsideTransaction(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewDiseaseRepository(db)
	ctx := context.Background()

	rows := []model.Disease{{Name: "Early Blight"}, {Name: "Late Blight"}}

	seeded, err := repo.SeedIfEmpty(ctx, rows)
	require.NoError(t, err)
	assert.True(t, seeded)

	// A second seeder that already passed the outer empty-check still
	// re-checks inside the transaction and inserts nothing.
	seeded, err = repo.SeedIfEmpty(ctx, rows)
	require.NoError(t, err)
	assert.False(t, seeded)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestSearchBySubstring(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(t, db, seedFixture)
	ctx := context.Background()
	require.NoError(t, svc.EnsureSeeded(ctx))

	matches, err := svc.Search(ctx, "Blight")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Early Blight", matches[0].Name)
	assert.Equal(t, "Late Blight", matches[1].Name)

	matches, err = svc.Search(ctx, "Mildew")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	matches, err = svc.Search(ctx, "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearchEmptyQueryMatchesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(t, db, seedFixture)
	ctx := context.Background()
	require.NoError(t, svc.EnsureSeeded(ctx))

	matches, err := svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestEnsureSeededRejectsMalformedDataset(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(t, db, "Name,Notes\nEarly Blight,whatever\n")

	err := svc.EnsureSeeded(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestEnsureSeededMissingFile(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewDiseaseRepository(db), nil, "no/such/file.csv")

	err := svc.EnsureSeeded(context.Background())
	require.Error(t, err)
}
