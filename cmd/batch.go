package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/lriva/percgrid/analysis"
	"github.com/lriva/percgrid/db"
	"github.com/lriva/percgrid/model"
	"github.com/lriva/percgrid/report"
	"github.com/lriva/percgrid/util"
	"github.com/spf13/cobra"
)

var batchMax int
var batchMetadata bool

func init() {
	batchCmd.Flags().IntVar(&batchMax, "max", 0, "max number of files to process (0 = all)")
	batchCmd.Flags().BoolVar(&batchMetadata, "metadata", false, "look up song metadata in DynamoDB")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Analyzes every midi file under a directory",
	Long:  `Analyzes every midi file under a directory`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		batch(args[0])
	},
}

func batch(dir string) {
	paths := util.GatherAllMidiPaths(dir, batchMax)
	if len(paths) == 0 {
		fmt.Printf("No midi files found under %v\n", dir)
		return
	}

	var metadatas map[string]model.SongMetadata
	if batchMetadata {
		metadatas = fetchAllMetadatas(paths)
	}

	runPath := report.NewRunPath()
	for i, path := range paths {
		fmt.Printf("Processing %v of %v midi files\n", i+1, len(paths))

		res, err := analysis.Run(path)
		if err == analysis.ErrNoBeats {
			fmt.Printf("Found no beats on file %v.\n", path)
			continue
		}
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}

		if meta, ok := metadatas[filepath.Base(path)]; ok {
			fmt.Printf("%v - %v (%v)\n", meta.Artist, meta.Title, meta.Year)
		}
		report.Append(runPath, res.Record())
	}
	fmt.Printf("Report written to %v\n", runPath)
}

// BatchGetItem takes at most 10 keys per call, so the lookup goes out in
// slices of 10.
func fetchAllMetadatas(paths []string) map[string]model.SongMetadata {
	res := make(map[string]model.SongMetadata)

	var names []string
	flush := func() {
		for k, v := range db.GetSongMetadatas(names) {
			res[k] = v
		}
		names = nil
	}

	for _, path := range paths {
		names = append(names, filepath.Base(path))
		if len(names) == 10 {
			flush()
		}
	}
	if len(names) > 0 {
		flush()
	}
	return res
}
