package cmd

import (
	"fmt"
	"time"

	"github.com/lriva/percgrid/analysis"
	"github.com/lriva/percgrid/report"
	"github.com/spf13/cobra"
)

const runTimeLayout = "2006_01_02___15_04_05"

var processReportPath string

func init() {
	processCmd.Flags().StringVar(&processReportPath, "report", "", "report file to append to (default: a fresh run file)")
	rootCmd.AddCommand(processCmd)
}

var processCmd = &cobra.Command{
	Use:   "process <file>",
	Short: "Analyzes one midi file",
	Long:  `Analyzes one midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		process(args[0])
	},
}

func process(path string) {
	fmt.Printf("Begin: %v\n", time.Now().Format(runTimeLayout))

	res, err := analysis.Run(path)
	if err == analysis.ErrNoBeats {
		fmt.Printf("Found no beats on file %v.\n", path)
		fmt.Printf("End: %v\n", time.Now().Format(runTimeLayout))
		return
	}
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return
	}

	printAnalysis(res)

	reportPath := processReportPath
	if reportPath == "" {
		reportPath = report.NewRunPath()
	}
	report.Append(reportPath, res.Record())
	fmt.Printf("\nReport record appended to %v\n", reportPath)
	fmt.Printf("End: %v\n", time.Now().Format(runTimeLayout))
}

func printAnalysis(res *analysis.Result) {
	fmt.Printf("ticksPerBeat: %v, time signature: %v/%v, max track length: %v\n",
		res.Meta.TicksPerBeat, res.Meta.Numerator, res.Meta.Denominator, res.Meta.MaxTrackLen)
	if res.Meta.BPM > 0 {
		fmt.Printf("tempo: %v bpm\n", res.Meta.BPM)
	}

	fmt.Printf("\nINSTRUMENTS:\n")
	for _, g := range res.Grids {
		fmt.Println(g.Name)
		fmt.Printf("%v\t%v-%v\n", g.Grid.Symbols, g.Grid.StartSlot, g.Grid.EndSlot)
		fmt.Printf("[Length: %v]\n", len(g.Grid.Symbols))
	}

	fmt.Printf("\nArithmetic mean over %v instruments: %v\n",
		res.Summary.Arithmetic.Instruments, res.Summary.Arithmetic.Value)
	fmt.Printf("Binary mean over %v instruments: %v\n",
		res.Summary.Binary.Instruments, res.Summary.Binary.Value)
	fmt.Printf("Concurrency min/max: %v/%v\n", res.Summary.MinAtOnce, res.Summary.MaxAtOnce)
}
