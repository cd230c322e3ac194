package snapshot

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/phototrack/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileStore_SaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	store := NewFileStore(path, testLogger())
	ctx := context.Background()

	appt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	snap := model.NewSnapshot()
	snap.Jobs["1-1"] = model.Job{
		ID:              "1-1",
		OrderID:         1,
		TaskID:          1,
		SiteID:          9,
		Address:         "1 Main St, Springfield",
		Status:          model.JobStatusPending,
		AppointmentDate: &appt,
	}
	snap.Sites[9] = model.Site{Street: "1 Main St", City: "Springfield"}

	require.NoError(t, store.Save(ctx, snap))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.Sites, loaded.Sites)
	require.Contains(t, loaded.Jobs, "1-1")

	job := loaded.Jobs["1-1"]
	assert.Equal(t, model.JobStatusPending, job.Status)
	require.NotNil(t, job.AppointmentDate)
	assert.True(t, job.AppointmentDate.Equal(appt))
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	store := NewFileStore(path, testLogger())

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snap.Jobs)
	assert.NotNil(t, snap.Sites)
	assert.Empty(t, snap.Jobs)
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path, testLogger())
	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Jobs)
	assert.Empty(t, snap.Sites)
}

func TestFileStore_SaveCreatesParentDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "snapshot.json")
	store := NewFileStore(path, testLogger())

	require.NoError(t, store.Save(context.Background(), model.NewSnapshot()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_SaveLeavesNoTempFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	store := NewFileStore(path, testLogger())

	require.NoError(t, store.Save(context.Background(), model.NewSnapshot()))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestFileStore_SaveOverwritesPrevious(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	store := NewFileStore(path, testLogger())
	ctx := context.Background()

	first := model.NewSnapshot()
	first.Jobs["1-1"] = model.Job{ID: "1-1", OrderID: 1, TaskID: 1}
	require.NoError(t, store.Save(ctx, first))

	second := model.NewSnapshot()
	second.Jobs["2-2"] = model.Job{ID: "2-2", OrderID: 2, TaskID: 2}
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.NotContains(t, loaded.Jobs, "1-1")
	assert.Contains(t, loaded.Jobs, "2-2")
}
