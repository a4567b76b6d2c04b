package mdb

import (
	"context"

	"github.com/jaki95/melodist/internal/contours"
	"github.com/jaki95/melodist/internal/domain"
)

// DataLoader loads the contour candidates and melody annotation for a
// track from a MedleyDB checkout.
type DataLoader struct {
	paths Paths
}

func NewDataLoader(paths Paths) *DataLoader {
	return &DataLoader{paths: paths}
}

// LoadTrack loads all data needed for a given track and melody type.
// Contour features are normalized at load time. A missing contour or
// annotation file is a fatal error; there is no retry or skip.
func (l *DataLoader) LoadTrack(ctx context.Context, track string, melodyType int) (*domain.ContourSet, *domain.Annotation, error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	cdat, err := contours.LoadContourData(l.paths.ContourFile(track), true)
	if err != nil {
		return nil, nil, err
	}
	cdat.TrackID = track

	adat, err := contours.LoadAnnotation(l.paths.AnnotationFile(track, melodyType))
	if err != nil {
		return nil, nil, err
	}

	return cdat, adat, nil
}
