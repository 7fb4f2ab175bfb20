package chart

import "sync"

// Slot owns the single rendered image bound to one dashboard canvas.
// Generation tokens discard renders that lost a race to a newer one, so a
// slow fetch can never overwrite a fresher chart.
type Slot struct {
	mu  sync.Mutex
	gen uint64
	img []byte
}

// Begin marks the start of a render and returns its generation token. Any
// render begun earlier becomes stale immediately.
func (s *Slot) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// Commit installs the rendered image, replacing whatever the slot held,
// unless a newer render has begun since gen was issued. Reports whether the
// image was installed.
func (s *Slot) Commit(gen uint64, img []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.img = img
	return true
}

// Current returns the image the slot holds, or nil when it is empty.
func (s *Slot) Current() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img
}

// Clear tears the chart down and invalidates any render still in flight.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.img = nil
}

// SlotSet hands out one slot per canvas key.
type SlotSet struct {
	mu    sync.Mutex
	slots map[string]*Slot
}

func NewSlotSet() *SlotSet {
	return &SlotSet{slots: make(map[string]*Slot)}
}

func (ss *SlotSet) Get(key string) *Slot {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	slot, ok := ss.slots[key]
	if !ok {
		slot = &Slot{}
		ss.slots[key] = slot
	}
	return slot
}

// Len reports how many canvases currently have a slot.
func (ss *SlotSet) Len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.slots)
}
