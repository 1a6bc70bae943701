package util

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte{}, 0666); err != nil {
		t.Fatal(err)
	}
}

func TestGatherAllMidiPaths(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "nested"), 0777)
	touch(t, filepath.Join(dir, "a.mid"))
	touch(t, filepath.Join(dir, "nested", "b.midi"))
	touch(t, filepath.Join(dir, "notes.txt"))

	paths := GatherAllMidiPaths(dir, 0)

	assert.Len(t, paths, 2)
}

func TestGatherAllMidiPathsRespectsMax(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.mid"))
	touch(t, filepath.Join(dir, "b.mid"))
	touch(t, filepath.Join(dir, "c.mid"))

	paths := GatherAllMidiPaths(dir, 2)

	assert.Len(t, paths, 2)
}

func TestGetKeys(t *testing.T) {
	m := map[int64]string{3: "c", 1: "a", 2: "b"}

	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	assert.Equal(t, []int64{1, 2, 3}, keys)
}
