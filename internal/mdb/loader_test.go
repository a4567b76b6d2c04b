package mdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, track string, melodyType int) Paths {
	t.Helper()

	root := t.TempDir()
	paths := Paths{
		MedleyDBPath: filepath.Join(root, "MedleyDB"),
		ContoursDir:  filepath.Join(root, "melodia_contours"),
	}

	contourPath := paths.ContourFile(track)
	require.NoError(t, os.MkdirAll(filepath.Dir(contourPath), 0755))
	contourContent := "onset,offset,duration,pitch_mean,pitch_std,salience_mean,salience_std,salience_total,vibrato_rate,vibrato_extent,vibrato_coverage,trajectory\n" +
		"0.0,1.0,1.0,220,5,0.5,0.1,50,0,0,0,0.0,220,0.5\n" +
		"2.0,2.5,0.5,330,2,0.3,0.05,20,0,0,0,2.0,330,0.3\n"
	require.NoError(t, os.WriteFile(contourPath, []byte(contourContent), 0644))

	annotPath := paths.AnnotationFile(track, melodyType)
	require.NoError(t, os.MkdirAll(filepath.Dir(annotPath), 0755))
	require.NoError(t, os.WriteFile(annotPath, []byte("0.00,220\n0.01,220\n"), 0644))

	return paths
}

func TestLoadTrack(t *testing.T) {
	paths := writeDataset(t, "MusicDelta_Rock", 1)
	loader := NewDataLoader(paths)

	cdat, adat, err := loader.LoadTrack(context.Background(), "MusicDelta_Rock", 1)
	require.NoError(t, err)

	assert.Equal(t, "MusicDelta_Rock", cdat.TrackID)
	assert.Equal(t, 2, cdat.Len())
	assert.Equal(t, 2, adat.Len())
}

func TestLoadTrackMissingContours(t *testing.T) {
	paths := writeDataset(t, "MusicDelta_Rock", 1)
	loader := NewDataLoader(paths)

	_, _, err := loader.LoadTrack(context.Background(), "MusicDelta_Reggae", 1)
	assert.Error(t, err)
}

func TestLoadTrackMissingAnnotation(t *testing.T) {
	paths := writeDataset(t, "MusicDelta_Rock", 1)
	loader := NewDataLoader(paths)

	// Contours exist for melody type 1 only; type 2's annotation is absent.
	_, _, err := loader.LoadTrack(context.Background(), "MusicDelta_Rock", 2)
	assert.Error(t, err)
}

func TestLoadTrackCancelled(t *testing.T) {
	paths := writeDataset(t, "MusicDelta_Rock", 1)
	loader := NewDataLoader(paths)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := loader.LoadTrack(ctx, "MusicDelta_Rock", 1)
	assert.ErrorIs(t, err, context.Canceled)
}
