package consent

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"organease/internal/domain"
	"organease/internal/ports"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	g, err := NewFileGenerator(dir, "https://api.example.org/")
	require.NoError(t, err)

	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	in := ports.ConsentInput{
		Match: domain.MatchRecord{
			ID: "5f0c", Organ: domain.OrganKidney, Score: 85,
			DonorAcceptedAt: &at, RecipientAcceptedAt: &at,
		},
		Donor:     domain.DonorProfile{ID: "d1", BloodGroup: domain.BloodONeg, Age: 30, Location: domain.Location{State: "TX"}},
		Recipient: domain.RecipientProfile{ID: "r1", BloodGroup: domain.BloodAPos, Age: 44, Location: domain.Location{State: "TX"}},
		Hospital:  &domain.Hospital{Name: "Mercy", Location: domain.Location{City: "Dallas", State: "TX"}},
	}

	url, err := g.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org/matches/5f0c/consent", url)

	body, err := os.ReadFile(filepath.Join(dir, "5f0c.pdf"))
	require.NoError(t, err)
	text := string(body)
	assert.Contains(t, text[:8], "%PDF-")
	assert.Contains(t, text, "Mercy")
	assert.Contains(t, text, "Dallas, TX")
	assert.Contains(t, text, "85/100")
	assert.Contains(t, text, "2026-03-02T10:00:00Z")
	assert.Contains(t, text, "not scheduled")
	assert.NotContains(t, text, "unassigned")

	in.Hospital = nil
	_, err = g.Generate(context.Background(), in)
	require.NoError(t, err)
	doc, size, err := g.Open(context.Background(), "5f0c")
	require.NoError(t, err)
	defer doc.Close()
	body, err = io.ReadAll(doc)
	require.NoError(t, err)
	assert.EqualValues(t, len(body), size)
	assert.Contains(t, string(body), "unassigned")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "regeneration replaces the document")
}

func TestOpen_Missing(t *testing.T) {
	g, err := NewFileGenerator(t.TempDir(), "")
	require.NoError(t, err)
	_, _, err = g.Open(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "/matches/nope/consent", g.URL("nope"))
}

func TestGenerate_BadID(t *testing.T) {
	g, err := NewFileGenerator(t.TempDir(), "")
	require.NoError(t, err)
	_, err = g.Generate(context.Background(), ports.ConsentInput{Match: domain.MatchRecord{ID: "../etc"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = g.Open(context.Background(), "../etc")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
