package mdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArtistIndex(t *testing.T) {
	tempDir := t.TempDir()

	indexPath := filepath.Join(tempDir, "medley_artist_index.json")
	content := `{"MusicDelta_Rock": "MusicDelta", "AimeeNorwich_Child": "AimeeNorwich", "MusicDelta_Reggae": "MusicDelta"}`
	err := os.WriteFile(indexPath, []byte(content), 0644)
	require.NoError(t, err)

	index, err := LoadArtistIndex(indexPath)
	require.NoError(t, err)

	// Tracks come back sorted by track id.
	assert.Equal(t, 3, index.Len())
	assert.Equal(t, []string{"AimeeNorwich_Child", "MusicDelta_Reggae", "MusicDelta_Rock"}, index.TrackIDs())
	assert.Equal(t, []string{"AimeeNorwich", "MusicDelta", "MusicDelta"}, index.ArtistIDs())
}

func TestLoadArtistIndexMissingFile(t *testing.T) {
	index, err := LoadArtistIndex("non_existent_index.json")
	assert.Error(t, err)
	assert.Nil(t, index)
}

func TestLoadArtistIndexInvalidJSON(t *testing.T) {
	tempDir := t.TempDir()

	indexPath := filepath.Join(tempDir, "bad.json")
	err := os.WriteFile(indexPath, []byte(`{"track": `), 0644)
	require.NoError(t, err)

	index, err := LoadArtistIndex(indexPath)
	assert.Error(t, err)
	assert.Nil(t, index)
}

func TestLoadArtistIndexEmpty(t *testing.T) {
	tempDir := t.TempDir()

	indexPath := filepath.Join(tempDir, "empty.json")
	err := os.WriteFile(indexPath, []byte(`{}`), 0644)
	require.NoError(t, err)

	index, err := LoadArtistIndex(indexPath)
	assert.Error(t, err)
	assert.Nil(t, index)
}

func TestPaths(t *testing.T) {
	paths := Paths{MedleyDBPath: "/data/MedleyDB", ContoursDir: "contours"}

	assert.Equal(t,
		filepath.Join("contours", "MusicDelta_Rock_MIX_vamp_melodia-contours_melodia-contours_contoursall.csv"),
		paths.ContourFile("MusicDelta_Rock"),
	)

	assert.Equal(t,
		filepath.Join("/data/MedleyDB", "Annotations", "Melody_Annotations", "MELODY2", "MusicDelta_Rock_MELODY2.csv"),
		paths.AnnotationFile("MusicDelta_Rock", 2),
	)
}
