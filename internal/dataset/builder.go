// Package dataset builds, labels and summarizes the per-split contour data
// used to train and evaluate a melody contour classifier.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"github.com/jaki95/melodist/internal/contours"
	"github.com/jaki95/melodist/internal/domain"
)

// Loader loads the contour candidates and melody annotation for one track.
type Loader interface {
	LoadTrack(ctx context.Context, track string, melodyType int) (*domain.ContourSet, *domain.Annotation, error)
}

// Builder loads every track of each split, computes contour overlaps and
// aggregates the results by track id. Track loads are independent, so they
// run on a bounded worker pool; aggregation is by track id, not order.
type Builder struct {
	loader     Loader
	maxWorkers int
	progress   bool
}

func NewBuilder(loader Loader, maxWorkers int) *Builder {
	return &Builder{loader: loader, maxWorkers: maxWorkers, progress: true}
}

// WithProgress toggles the terminal progress bars. Off in tests.
func (b *Builder) WithProgress(on bool) *Builder {
	b.progress = on
	return b
}

// BuildSplits loads and overlap-augments every track of the three splits.
// Validation and test splits additionally retain their raw annotations.
// A single missing or unreadable track aborts the whole build.
func (b *Builder) BuildSplits(ctx context.Context, trainTracks, validTracks, testTracks []string, melodyType int) (*domain.SplitData, error) {
	splits := domain.NewSplitData()

	slog.Info("generating training features", "tracks", len(trainTracks))
	if err := b.buildList(ctx, trainTracks, melodyType, "Generating training features...", splits.Train, nil); err != nil {
		return nil, err
	}

	slog.Info("generating validation features", "tracks", len(validTracks))
	if err := b.buildList(ctx, validTracks, melodyType, "Generating validation features...", splits.Valid, splits.ValidAnnotations); err != nil {
		return nil, err
	}

	slog.Info("generating testing features", "tracks", len(testTracks))
	if err := b.buildList(ctx, testTracks, melodyType, "Generating testing features...", splits.Test, splits.TestAnnotations); err != nil {
		return nil, err
	}

	return splits, nil
}

type trackResult struct {
	track string
	cdat  *domain.ContourSet
	adat  *domain.Annotation
}

func (b *Builder) buildList(
	ctx context.Context,
	tracks []string,
	melodyType int,
	description string,
	contourDict map[string]*domain.ContourSet,
	annotDict map[string]*domain.Annotation,
) error {
	if len(tracks) == 0 {
		return nil
	}

	bar := b.newBar(len(tracks), description)

	var wg sync.WaitGroup
	maxWorkers := b.maxWorkers
	if maxWorkers < 1 || maxWorkers > 10 {
		slog.Warn("invalid max workers, defaulting to 1", "maxWorkers", b.maxWorkers)
		maxWorkers = 1
	}
	semaphore := make(chan struct{}, maxWorkers)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	resultCh := make(chan trackResult, len(tracks))

	for _, track := range tracks {
		wg.Add(1)
		go func(track string) {
			defer func() {
				if bar != nil {
					bar.Add(1)
				}
				wg.Done()
			}()

			select {
			case <-ctx.Done():
				return
			default:
			}

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-semaphore }()

			cdat, adat, err := b.loader.LoadTrack(ctx, track, melodyType)
			if err != nil {
				select {
				case errCh <- fmt.Errorf("track %s: %w", track, err):
					cancel()
				default:
				}
				return
			}

			resultCh <- trackResult{
				track: track,
				cdat:  contours.ComputeOverlap(cdat, adat),
				adat:  adat,
			}
		}(track)
	}

	go func() {
		wg.Wait()
		close(resultCh)
		close(errCh)
	}()

	for result := range resultCh {
		contourDict[result.track] = result.cdat
		if annotDict != nil {
			annotDict[result.track] = result.adat.Copy()
		}
	}

	if err := <-errCh; err != nil {
		return err
	}

	return nil
}

func (b *Builder) newBar(length int, description string) *progressbar.ProgressBar {
	if !b.progress {
		return nil
	}
	return progressbar.NewOptions(
		length,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionFullWidth(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription(description),
	)
}
