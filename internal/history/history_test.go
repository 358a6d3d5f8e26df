// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/manuscript-press/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	cfg := types.HistoryConfig{Dir: filepath.Join(t.TempDir(), "state")}
	store, err := NewStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(input string, status types.RunStatus) types.RunRecord {
	rec := types.RunRecord{
		Input:        input,
		Output:       "out/" + input + ".docx",
		ReferenceDoc: "reference.docx",
		StartedAt:    time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC),
		Duration:     1200 * time.Millisecond,
		Status:       status,
	}
	if status == types.RunFailed {
		rec.Error = "pandoc exit status 64"
	}
	return rec
}

func TestStoreRoundTrip(t *testing.T) {
	store := testStore(t)

	id1, err := store.Record(sampleRun("a.tex", types.RunConverted))
	require.NoError(t, err)
	id2, err := store.Record(sampleRun("b.tex", types.RunFailed))
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	records, err := store.Recent(0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Most recent first.
	assert.Equal(t, "b.tex", records[0].Input)
	assert.Equal(t, types.RunFailed, records[0].Status)
	assert.Equal(t, "pandoc exit status 64", records[0].Error)

	assert.Equal(t, "a.tex", records[1].Input)
	assert.Equal(t, types.RunConverted, records[1].Status)
	assert.Equal(t, "reference.docx", records[1].ReferenceDoc)
	assert.Equal(t, 1200*time.Millisecond, records[1].Duration)
	assert.True(t, records[1].StartedAt.Equal(time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)))
}

func TestRecentLimit(t *testing.T) {
	store := testStore(t)
	for i := 0; i < 5; i++ {
		_, err := store.Record(sampleRun("paper.tex", types.RunConverted))
		require.NoError(t, err)
	}

	records, err := store.Recent(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestRecentEmptyStore(t *testing.T) {
	store := testStore(t)

	records, err := store.Recent(0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestExportYAML(t *testing.T) {
	store := testStore(t)
	_, err := store.Record(sampleRun("a.tex", types.RunConverted))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, store.ExportYAML(&buf, 0))

	var records []types.RunRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "a.tex", records[0].Input)
}

func TestExportJSON(t *testing.T) {
	store := testStore(t)
	_, err := store.Record(sampleRun("a.tex", types.RunFailed))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, store.ExportJSON(&buf, 0))

	var records []types.RunRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, types.RunFailed, records[0].Status)
}

func TestStoreReopens(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")

	store, err := NewStore(types.HistoryConfig{Dir: dir})
	require.NoError(t, err)
	_, err = store.Record(sampleRun("a.tex", types.RunConverted))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(types.HistoryConfig{Dir: dir})
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.Recent(0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
