package cmd

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/lriva/percgrid/percussion"
	"github.com/lriva/percgrid/scanner"
	"github.com/lriva/percgrid/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenSeconds int

func init() {
	listenCmd.Flags().IntVar(&listenSeconds, "seconds", 30, "how long to listen")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Tallies live percussion hits from a midi in port",
	Long:  `Tallies live percussion hits from a midi in port`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

// hitTally counts hits arriving on the driver's reader goroutine while the
// debounced renderer reads on a timer goroutine, so both sides go through
// the mutex.
type hitTally struct {
	mu     sync.Mutex
	counts map[uint8]int
}

func newHitTally() *hitTally {
	return &hitTally{counts: make(map[uint8]int)}
}

func (h *hitTally) Add(note uint8) {
	h.mu.Lock()
	h.counts[note]++
	h.mu.Unlock()
}

// Snapshot returns a copy safe to iterate while hits keep arriving.
func (h *hitTally) Snapshot() map[uint8]int {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make(map[uint8]int, len(h.counts))
	for note, count := range h.counts {
		res[note] = count
	}
	return res
}

func printTally(counts map[uint8]int) {
	notes := util.GetKeys(counts)
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	fmt.Println("---")
	for _, note := range notes {
		fmt.Printf("%v: %v\n", percussion.Name(note), counts[note])
	}
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi in port")
		return
	}

	tally := newHitTally()

	// hits arrive in bursts, re-render only once a burst settles
	render := debounce.New(250 * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			if ch == scanner.PercussionChannel {
				tally.Add(key)
				render(func() { printTally(tally.Snapshot()) })
			}
		default:
			// ignore
		}
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	time.Sleep(time.Duration(listenSeconds) * time.Second)
	stop()
	printTally(tally.Snapshot())
}
