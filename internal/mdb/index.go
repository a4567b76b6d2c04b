// Package mdb knows the layout of the MedleyDB annotation dataset: the
// artist index document, the contour/annotation file naming conventions,
// and the artist-disjoint train/test splitter built on top of the index.
package mdb

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// ArtistIndex maps every track id in the dataset to its artist id. Tracks
// are kept sorted by track id so iteration order is stable across runs.
type ArtistIndex struct {
	tracks  []string
	artists []string
}

// LoadArtistIndex reads a JSON object of track id -> artist id.
func LoadArtistIndex(path string) (*ArtistIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artist index: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse artist index: %w", err)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("artist index %s contains no tracks", path)
	}

	index := &ArtistIndex{}
	for track := range raw {
		index.tracks = append(index.tracks, track)
	}
	sort.Strings(index.tracks)
	for _, track := range index.tracks {
		index.artists = append(index.artists, raw[track])
	}

	return index, nil
}

func (x *ArtistIndex) Len() int {
	return len(x.tracks)
}

// TrackIDs returns the track ids in sorted order.
func (x *ArtistIndex) TrackIDs() []string {
	out := make([]string, len(x.tracks))
	copy(out, x.tracks)
	return out
}

// ArtistIDs returns the artist ids aligned with TrackIDs.
func (x *ArtistIndex) ArtistIDs() []string {
	out := make([]string, len(x.artists))
	copy(out, x.artists)
	return out
}
