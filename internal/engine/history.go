package engine

import "goxviet/internal/buffer"

const historySize = 10

type snapshot struct {
	buf buffer.Composition
	raw buffer.Raw
}

// history keeps the last committed words so a backspace over the trailing
// space can resume editing them.
type history struct {
	items [historySize]snapshot
	head  int
	n     int
}

func (h *history) push(buf *buffer.Composition, raw *buffer.Raw) {
	h.items[h.head] = snapshot{buf: *buf, raw: *raw}
	h.head = (h.head + 1) % historySize
	if h.n < historySize {
		h.n++
	}
}

func (h *history) pop() (snapshot, bool) {
	if h.n == 0 {
		return snapshot{}, false
	}
	h.head = (h.head - 1 + historySize) % historySize
	h.n--
	return h.items[h.head], true
}

func (h *history) clear() {
	h.head = 0
	h.n = 0
}

func (h *history) len() int { return h.n }
