package history

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "careerbooster", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestAnalysisRoundTrip(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordAnalysis(ctx, "cv.pdf", "general_analysis", "Add metrics to bullets"))
	require.NoError(t, store.RecordAnalysis(ctx, "old.pdf", "general_analysis", "Shorten the summary"))

	analyses, err := store.RecentAnalyses(ctx, 10)
	require.NoError(t, err)
	require.Len(t, analyses, 2)

	byFile := map[string]Analysis{}
	for _, a := range analyses {
		assert.NotEmpty(t, a.ID)
		assert.False(t, a.CreatedAt.IsZero())
		byFile[a.FileName] = a
	}
	assert.Equal(t, "Add metrics to bullets", byFile["cv.pdf"].Excerpt)
	assert.Equal(t, "general_analysis", byFile["cv.pdf"].AnalysisType)
}

func TestAnalysisExcerptIsTruncated(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	long := strings.Repeat("x", 2000)
	require.NoError(t, store.RecordAnalysis(ctx, "cv.pdf", "general_analysis", long))

	analyses, err := store.RecentAnalyses(ctx, 1)
	require.NoError(t, err)
	require.Len(t, analyses, 1)

	assert.Len(t, analyses[0].Excerpt, excerptLimit+len("..."))
	assert.True(t, strings.HasSuffix(analyses[0].Excerpt, "..."))
}

func TestGenerationRoundTrip(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordGeneration(ctx, "rec-42", "modern", "/tmp/cv.pdf"))

	generations, err := store.RecentGenerations(ctx, 10)
	require.NoError(t, err)
	require.Len(t, generations, 1)

	g := generations[0]
	assert.Equal(t, "rec-42", g.RecordID)
	assert.Equal(t, "modern", g.Template)
	assert.Equal(t, "/tmp/cv.pdf", g.OutputPath)
	assert.False(t, g.CreatedAt.IsZero())
}

func TestRecentRespectsLimit(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordAnalysis(ctx, "cv.pdf", "general_analysis", "ok"))
	}

	analyses, err := store.RecentAnalyses(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, analyses, 3)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.RecordAnalysis(context.Background(), "cv.pdf", "general_analysis", "ok"))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	analyses, err := second.RecentAnalyses(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, analyses, 1, "reopening must keep existing rows")
}
