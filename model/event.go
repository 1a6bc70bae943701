package model

// AttackEvent is one qualifying percussion note-on, pinned to the
// absolute tick it occurred at within its track.
type AttackEvent struct {
	AbsTick  int64
	Note     uint8
	Channel  uint8
	Velocity uint8
}
