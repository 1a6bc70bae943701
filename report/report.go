package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/lriva/percgrid/model"
)

const runTimeLayout = "2006_01_02___15_04_05"

// FormatRecord builds the tab-separated report line for one file. The
// double-tab separators are load-bearing for downstream aggregation, do not
// touch them.
func FormatRecord(filename string, meta model.FileMetadata, numInstruments int) string {
	return fmt.Sprintf("%v\t\t%v\t\t%v\t\t%v/%v\t\t%v\n",
		filename, meta.MaxTrackLen, numInstruments,
		meta.Numerator, meta.Denominator, meta.TicksPerBeat)
}

func GetReportDir() string {
	path := os.Getenv("REPORT_PATH")
	if path != "" {
		return path
	}
	return "./reports"
}

// NewRunPath names a report file for one run: timestamp for humans, a uuid
// fragment so two runs in the same second don't collide.
func NewRunPath() string {
	name := fmt.Sprintf("run_%v_%v.tsv",
		time.Now().Format(runTimeLayout), uuid.New().String()[:8])
	return filepath.Join(GetReportDir(), name)
}

// Append writes one record to the report file, creating it on first use.
func Append(path string, record string) {
	os.MkdirAll(filepath.Dir(path), 0777)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0777)
	if err != nil {
		panic("Could not open report file because: " + err.Error())
	}
	defer f.Close()

	if _, err = f.WriteString(record); err != nil {
		panic("Could not write report record because: " + err.Error())
	}
}
