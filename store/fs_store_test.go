package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testRun(id string) *Run {
	return NewRun(id, []float64{1.5, 2.5, 3.5}, 0.25, 9.5, 100, RunConfig{
		Source:  "problem.yaml",
		Vars:    []string{"Components[*].Shift"},
		Iters:   100,
		PopSize: 20,
		Seed:    42,
		Starts:  4,
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	run := testRun("run-1")
	require.NoError(t, fs.SaveRun(run))

	loaded, err := fs.LoadRun("run-1")
	require.NoError(t, err)
	require.Equal(t, run.ID, loaded.ID)
	require.Equal(t, run.BestVector, loaded.BestVector)
	require.Equal(t, run.BestCost, loaded.BestCost)
	require.Equal(t, run.InitialCost, loaded.InitialCost)
	require.Equal(t, run.Config, loaded.Config)
	require.WithinDuration(t, run.CreatedAt, loaded.CreatedAt, time.Second)
}

func TestSaveOverwrites(t *testing.T) {
	fs, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.SaveRun(testRun("run-1")))

	updated := testRun("run-1")
	updated.BestCost = 0.01
	require.NoError(t, fs.SaveRun(updated))

	loaded, err := fs.LoadRun("run-1")
	require.NoError(t, err)
	require.Equal(t, 0.01, loaded.BestCost)
}

func TestLoadMissingRun(t *testing.T) {
	fs, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	_, err = fs.LoadRun("nope")
	require.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "nope", nf.RunID)
}

func TestListRuns(t *testing.T) {
	fs, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	infos, err := fs.ListRuns()
	require.NoError(t, err)
	require.Empty(t, infos)

	require.NoError(t, fs.SaveRun(testRun("a")))
	require.NoError(t, fs.SaveRun(testRun("b")))

	infos, err = fs.ListRuns()
	require.NoError(t, err)
	require.Len(t, infos, 2)

	ids := []string{infos[0].ID, infos[1].ID}
	require.ElementsMatch(t, []string{"a", "b"}, ids)
	require.Equal(t, 3, infos[0].Dim)
	require.Equal(t, "problem.yaml", infos[0].Source)
}

func TestDeleteRun(t *testing.T) {
	fs, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.SaveRun(testRun("gone")))
	require.NoError(t, fs.DeleteRun("gone"))

	_, err = fs.LoadRun("gone")
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, fs.DeleteRun("gone"), ErrNotFound)
}

func TestSaveRejectsInvalid(t *testing.T) {
	fs, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	require.Error(t, fs.SaveRun(nil))
	require.Error(t, fs.SaveRun(&Run{}))
	require.Error(t, fs.SaveRun(&Run{ID: "x"}))
}

func TestRunValidate(t *testing.T) {
	run := testRun("ok")
	require.NoError(t, run.Validate())

	run.BestVector = nil
	require.Error(t, run.Validate())
}

func TestNewRunID(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	require.NotEmpty(t, a)
	require.NotEqual(t, a, b)
}
