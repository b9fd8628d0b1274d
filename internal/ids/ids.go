package ids

import "sync/atomic"

// Sequence hands out increasing integer ids. Values are never reused, even
// after the record holding them is deleted.
type Sequence struct {
	next atomic.Int64
}

func NewSequence(start int) *Sequence {
	s := &Sequence{}
	s.next.Store(int64(start))
	return s
}

func (s *Sequence) Next() int {
	return int(s.next.Add(1) - 1)
}
