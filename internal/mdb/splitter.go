package mdb

import (
	"fmt"
	"math"
	"math/rand"
)

// Splitter produces train/test partitions of a track list that hold out
// whole artists: every track of a given artist lands on the same side, so
// no artist ever appears in both train and test.
type Splitter struct {
	// Target fraction of tracks assigned to the test side.
	TestSize float64

	// Seed for the artist shuffle, so splits are reproducible.
	RandomState int64
}

func NewSplitter(testSize float64, randomState int64) Splitter {
	return Splitter{TestSize: testSize, RandomState: randomState}
}

// Split partitions trackIDs into train and test track id lists. artistIDs
// must be aligned with trackIDs. Artists are shuffled with the configured
// seed and assigned to the test side until it holds at least
// ceil(TestSize * len(trackIDs)) tracks; the rest go to train.
func (sp Splitter) Split(trackIDs, artistIDs []string) (train, test []string, err error) {
	if len(trackIDs) == 0 {
		return nil, nil, fmt.Errorf("no tracks to split")
	}
	if len(trackIDs) != len(artistIDs) {
		return nil, nil, fmt.Errorf("got %d tracks but %d artist ids", len(trackIDs), len(artistIDs))
	}
	if sp.TestSize <= 0 || sp.TestSize >= 1 {
		return nil, nil, fmt.Errorf("test size must be in (0, 1), got %g", sp.TestSize)
	}

	byArtist := make(map[string][]string)
	var artists []string
	for i, track := range trackIDs {
		artist := artistIDs[i]
		if _, seen := byArtist[artist]; !seen {
			artists = append(artists, artist)
		}
		byArtist[artist] = append(byArtist[artist], track)
	}

	if len(artists) < 2 {
		return nil, nil, fmt.Errorf("need at least 2 distinct artists to split, got %d", len(artists))
	}

	rng := rand.New(rand.NewSource(sp.RandomState))
	rng.Shuffle(len(artists), func(i, j int) {
		artists[i], artists[j] = artists[j], artists[i]
	})

	target := int(math.Ceil(sp.TestSize * float64(len(trackIDs))))

	for i, artist := range artists {
		// Never hold out every artist; the train side must stay nonempty.
		if len(test) < target && i < len(artists)-1 {
			test = append(test, byArtist[artist]...)
		} else {
			train = append(train, byArtist[artist]...)
		}
	}

	return train, test, nil
}

// TrainValidTest first holds out a test partition, then re-splits the
// remainder with the same test fraction to carve out a validation set.
func (sp Splitter) TrainValidTest(trackIDs, artistIDs []string) (train, valid, test []string, err error) {
	artistOf := make(map[string]string, len(trackIDs))
	for i, track := range trackIDs {
		artistOf[track] = artistIDs[i]
	}

	rest, test, err := sp.Split(trackIDs, artistIDs)
	if err != nil {
		return nil, nil, nil, err
	}

	restArtists := make([]string, len(rest))
	for i, track := range rest {
		restArtists[i] = artistOf[track]
	}

	inner := Splitter{TestSize: sp.TestSize, RandomState: sp.RandomState + 1}
	train, valid, err = inner.Split(rest, restArtists)
	if err != nil {
		return nil, nil, nil, err
	}

	return train, valid, test, nil
}
