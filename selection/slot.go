package selection

// Slot holds the encoded selection of one season.
// Only the Synchronizer writes it; callers read.
type Slot struct {
	key   string
	value string
}

// NewSlot returns an empty slot for season.
func NewSlot(season Season) *Slot {
	return &Slot{key: SlotKey(season)}
}

// Key returns the form field name of the slot.
func (s *Slot) Key() string {
	return s.key
}

// Value returns the last encoded selection.
func (s *Slot) Value() string {
	return s.value
}

func (s *Slot) write(value string) {
	s.value = value
}
