package library

import "sync/atomic"

// Holder publishes the current library to concurrent readers and lets a
// reload swap it in one step.
type Holder struct {
	p atomic.Pointer[Library]
}

func NewHolder(l *Library) *Holder {
	h := &Holder{}
	h.p.Store(l)
	return h
}

func (h *Holder) Load() *Library { return h.p.Load() }

func (h *Holder) Store(l *Library) { h.p.Store(l) }
