package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jaki95/melodist/internal/mdb"
)

var splitExport bool

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Partition the dataset into artist-disjoint train/validation/test splits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		train, valid, test, err := loadSplitTracks()
		if err != nil {
			return err
		}

		rows := [][]string{
			{"train", strconv.Itoa(len(train))},
			{"validation", strconv.Itoa(len(valid))},
			{"test", strconv.Itoa(len(test))},
		}
		fmt.Println(renderTable([]string{"Split", "Tracks"}, rows))

		if !splitExport {
			return nil
		}

		store, err := newStorage(cmd.Context())
		if err != nil {
			return err
		}

		w, err := store.GetWriter("splits.json")
		if err != nil {
			return err
		}
		defer w.Close()

		assignment := map[string][]string{
			"train":      train,
			"validation": valid,
			"test":       test,
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(assignment)
	},
}

func init() {
	splitCmd.Flags().BoolVar(&splitExport, "export", false, "write the split assignment to storage as splits.json")
	rootCmd.AddCommand(splitCmd)
}

func loadSplitTracks() (train, valid, test []string, err error) {
	index, err := mdb.LoadArtistIndex(cfg.Dataset.ArtistIndex)
	if err != nil {
		return nil, nil, nil, err
	}

	splitter := mdb.NewSplitter(cfg.Split.TestSize, cfg.Split.RandomState)
	return splitter.TrainValidTest(index.TrackIDs(), index.ArtistIDs())
}
