package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "percgrid",
	Short: "Percussion grid analyzer",
	Long:  `Extracts percussion timelines from midi files and renders them as TUBS grids with concurrency statistics.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
