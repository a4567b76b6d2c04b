package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jaki95/melodist/internal/classify"
	"github.com/jaki95/melodist/internal/domain"
	"github.com/jaki95/melodist/internal/evaluation"
	"github.com/jaki95/melodist/internal/runstore"
)

var (
	evaluatePlot  bool
	evaluateNotes string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score the validation contours and select the best melody probability threshold.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		splits, err := buildLabeledSplits(ctx)
		if err != nil {
			return err
		}

		sets := make([]*domain.ContourSet, 0, len(splits.Valid))
		for _, set := range splits.Valid {
			sets = append(sets, set)
		}
		all := domain.ConcatSets(sets...)

		scored, err := classify.ScoreContours(classify.SalienceBaseline{}, all)
		if err != nil {
			return err
		}

		refLabels := classify.Labels(scored)
		scores := classify.MelProbs(scored)

		threshold, fScore, err := evaluation.BestThreshold(refLabels, scores)
		if err != nil {
			return err
		}

		fmt.Printf("best threshold: %.4f (F-score %.4f over %d contours)\n", threshold, fScore, scored.Len())

		store, err := runstore.Open(cfg.Runs.Database)
		if err != nil {
			return err
		}
		defer store.Close()

		run, err := store.Record(ctx, runstore.Run{
			MelodyType:       cfg.Dataset.MelodyType,
			OverlapThreshold: cfg.Labeling.OverlapThreshold,
			BestThreshold:    threshold,
			FScore:           fScore,
			Notes:            evaluateNotes,
		})
		if err != nil {
			return err
		}
		slog.Info("recorded evaluation run", "id", run.ID)

		if !evaluatePlot {
			return nil
		}

		curve, err := evaluation.ROCCurve(refLabels, scores)
		if err != nil {
			return err
		}

		artifacts, err := newStorage(ctx)
		if err != nil {
			return err
		}

		w, err := artifacts.GetWriter("roc.png")
		if err != nil {
			return err
		}
		if err := curve.WritePlot(w); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	},
}

func init() {
	evaluateCmd.Flags().BoolVar(&evaluatePlot, "plot", false, "render the ROC curve to storage as roc.png")
	evaluateCmd.Flags().StringVar(&evaluateNotes, "notes", "", "free-form notes recorded with the run")
	rootCmd.AddCommand(evaluateCmd)
}
