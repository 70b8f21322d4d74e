package postgres

import (
	"context"
	"os"
	"testing"

	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateConversion(t *testing.T) {
	assert.False(t, toPgDate(domain.Date{}).Valid)
	assert.False(t, toPgDatePtr(nil).Valid)
	assert.Nil(t, fromPgDatePtr(toPgDate(domain.Date{})))

	d := domain.MustParseDate("2023-03-15")
	back := fromPgDate(toPgDate(d))
	assert.Equal(t, "2023-03-15", back.String())

	ptr := fromPgDatePtr(toPgDatePtr(&d))
	require.NotNil(t, ptr)
	assert.Equal(t, d, *ptr)
}

// Runs against a real database when TEST_DATABASE_URL is set.
func TestCandidateRepositoryIntegration(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	db, err := database.NewPostgresConnection(ctx, url)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Bootstrap(ctx, db))

	repo := NewCandidateRepository(db)
	notes := "integration"
	c := domain.Candidate{
		ID:          "it-" + t.Name(),
		Name:        "Integration Test",
		Email:       "it@example.com",
		Skills:      []string{"Go", "SQL"},
		Status:      domain.CandidateApplied,
		AppliedDate: domain.MustParseDate("2023-03-01"),
		Notes:       &notes,
	}
	_ = repo.Delete(ctx, c.ID)
	require.NoError(t, repo.Create(ctx, &c))
	assert.ErrorIs(t, repo.Create(ctx, &c), domain.ErrDuplicateID)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, *got)

	require.NoError(t, repo.Delete(ctx, c.ID))
	_, err = repo.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
