package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lriva/percgrid/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatRecordIsByteExact(t *testing.T) {
	meta := model.FileMetadata{
		TicksPerBeat: 480,
		Numerator:    4,
		Denominator:  4,
		MaxTrackLen:  1440,
	}

	record := FormatRecord("song.mid", meta, 3)

	assert.Equal(t, "song.mid\t\t1440\t\t3\t\t4/4\t\t480\n", record)
}

func TestAppendAccumulatesRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.tsv")

	Append(path, "a.mid\t\t100\t\t1\t\t4/4\t\t480\n")
	Append(path, "b.mid\t\t200\t\t2\t\t3/4\t\t960\n")

	data, err := os.ReadFile(path)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("a.mid\t\t100\t\t1\t\t4/4\t\t480\nb.mid\t\t200\t\t2\t\t3/4\t\t960\n", string(data))
}

func TestNewRunPathUsesReportDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("REPORT_PATH", dir)

	path := NewRunPath()

	assert := assert.New(t)
	assert.True(strings.HasPrefix(path, dir))
	assert.True(strings.HasSuffix(path, ".tsv"))
	assert.NotEqual(path, NewRunPath())
}
