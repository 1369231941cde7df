package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpenko/tilematch/internal/games/match"
)

func testState() match.ResumeState {
	return match.ResumeState{
		Mode:       "solo",
		Score:      7,
		MovesUsed:  4,
		TotalMoves: 15,
		Seed:       1234,
		Cells:      []int{0, 1, 2, 1, 2, 0, 2, 0, 1},
		RNGState:   987654321,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	svc, err := NewSaveService(t.TempDir())
	require.NoError(t, err)

	state := testState()
	require.NoError(t, svc.Save("morning-run", state))

	payload, err := svc.Load("morning-run")
	require.NoError(t, err)

	assert.Equal(t, PayloadVersion, payload.Version)
	assert.Equal(t, "solo", payload.Mode)
	assert.False(t, payload.SavedAt.IsZero())
	assert.Equal(t, state, payload.Game)
}

func TestSaveOverwrites(t *testing.T) {
	svc, err := NewSaveService(t.TempDir())
	require.NoError(t, err)

	first := testState()
	require.NoError(t, svc.Save("slot", first))

	second := testState()
	second.Score = 42
	require.NoError(t, svc.Save("slot", second))

	payload, err := svc.Load("slot")
	require.NoError(t, err)
	assert.Equal(t, 42, payload.Game.Score)
}

func TestLoadMissing(t *testing.T) {
	svc, err := NewSaveService(t.TempDir())
	require.NoError(t, err)

	_, err = svc.Load("nothing-here")
	assert.Error(t, err)
}

func TestLoadRejectsBadVersion(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewSaveService(dir)
	require.NoError(t, err)

	data := []byte(`{"version": 99, "mode": "solo", "game": {"mode": "solo"}}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.json"), data, 0o600))

	_, err = svc.Load("old")
	assert.ErrorContains(t, err, "unsupported version")
}

func TestLoadRejectsModeMismatch(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewSaveService(dir)
	require.NoError(t, err)

	data := []byte(`{"version": 1, "mode": "duel", "game": {"mode": "solo"}}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mixed.json"), data, 0o600))

	_, err = svc.Load("mixed")
	assert.ErrorContains(t, err, "inconsistent mode")
}

func TestListSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewSaveService(dir)
	require.NoError(t, err)

	require.NoError(t, svc.Save("good", testState()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{nope"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o600))

	infos, err := svc.List()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "good", infos[0].Name)
	assert.Equal(t, "solo", infos[0].Mode)
	assert.Equal(t, 7, infos[0].Score)
}

func TestDelete(t *testing.T) {
	svc, err := NewSaveService(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, svc.Save("temp", testState()))
	require.NoError(t, svc.Delete("temp"))

	_, err = svc.Load("temp")
	assert.Error(t, err)

	assert.Error(t, svc.Delete("temp"))
}

func TestRejectsUnsafeNames(t *testing.T) {
	svc, err := NewSaveService(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "  ", "../escape", "a/b", `a\b`, ".hidden"} {
		assert.Error(t, svc.Save(name, testState()), "name %q should be rejected", name)
	}
}
