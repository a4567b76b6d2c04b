package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jaki95/melodist/internal/dataset"
	"github.com/jaki95/melodist/internal/domain"
	"github.com/jaki95/melodist/internal/mdb"
)

var buildExport bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the overlap-augmented, labeled contour datasets and report overlap statistics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		splits, err := buildLabeledSplits(cmd.Context())
		if err != nil {
			return err
		}

		partial, zero := dataset.OverlapStats(splits.Train)

		fmt.Println("Training overlap distribution:")
		fmt.Println(renderTable(
			[]string{"Subset", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"},
			[][]string{
				describeRow("overlap > 0", partial),
				describeRow("overlap = 0", zero),
			},
		))

		if !buildExport {
			return nil
		}

		store, err := newStorage(cmd.Context())
		if err != nil {
			return err
		}

		exports := map[string]map[string]*domain.ContourSet{
			"train_contours.json": splits.Train,
			"valid_contours.json": splits.Valid,
			"test_contours.json":  splits.Test,
		}
		for name, contourDict := range exports {
			w, err := store.GetWriter(name)
			if err != nil {
				return err
			}
			if err := json.NewEncoder(w).Encode(contourDict); err != nil {
				w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildExport, "export", false, "write the labeled contour sets to storage as JSON")
	rootCmd.AddCommand(buildCmd)
}

func buildLabeledSplits(ctx context.Context) (*domain.SplitData, error) {
	train, valid, test, err := loadSplitTracks()
	if err != nil {
		return nil, err
	}

	loader := mdb.NewDataLoader(mdb.Paths{
		MedleyDBPath: cfg.Dataset.MedleyDBPath,
		ContoursDir:  cfg.Dataset.ContoursDir,
	})

	builder := dataset.NewBuilder(loader, cfg.Build.MaxWorkers)
	splits, err := builder.BuildSplits(ctx, train, valid, test, cfg.Dataset.MelodyType)
	if err != nil {
		return nil, err
	}

	if err := dataset.LabelSplits(splits, cfg.Labeling.OverlapThreshold); err != nil {
		return nil, err
	}

	return splits, nil
}

func describeRow(name string, d dataset.Description) []string {
	row := []string{name, strconv.Itoa(d.Count)}
	for _, v := range []float64{d.Mean, d.Std, d.Min, d.Q25, d.Median, d.Q75, d.Max} {
		row = append(row, fmt.Sprintf("%.4f", v))
	}
	return row
}
