package beat

import (
	"sort"

	"github.com/lriva/percgrid/model"
	"github.com/lriva/percgrid/util"
)

// Entry is one beat: every attack that landed on a single absolute tick.
type Entry struct {
	Tick   int64
	Events []model.AttackEvent
}

// Index is the beats of a file in ascending tick order.
type Index []Entry

// Build sorts the scanner's tick map once into a total order. Iterating the
// result is the canonical beat order for everything downstream.
func Build(beats map[int64][]model.AttackEvent) Index {
	ticks := util.GetKeys(beats)
	sort.Slice(ticks, func(i, j int) bool {
		return ticks[i] < ticks[j]
	})

	res := make(Index, 0, len(ticks))
	for _, tick := range ticks {
		res = append(res, Entry{Tick: tick, Events: beats[tick]})
	}
	return res
}
