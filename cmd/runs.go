package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaki95/melodist/internal/runstore"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded evaluation runs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := runstore.Open(cfg.Runs.Database)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.List(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(runs))
		for _, run := range runs {
			rows = append(rows, []string{
				strconv.FormatInt(run.ID, 10),
				run.CreatedAt.Format(time.RFC3339),
				strconv.Itoa(run.MelodyType),
				fmt.Sprintf("%.2f", run.OverlapThreshold),
				fmt.Sprintf("%.4f", run.BestThreshold),
				fmt.Sprintf("%.4f", run.FScore),
				run.Notes,
			})
		}

		fmt.Println(renderTable(
			[]string{"ID", "Created", "Melody Type", "Overlap Thresh", "Best Thresh", "F-score", "Notes"},
			rows,
		))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
}
