package core

// KeyBuffer is a channel-backed InputSource fed by a frontend goroutine.
// Push never blocks; when the buffer is full the key is dropped.
type KeyBuffer struct {
	ch chan rune
}

// NewKeyBuffer creates a buffer holding up to size pending keys.
func NewKeyBuffer(size int) *KeyBuffer {
	if size <= 0 {
		size = 64
	}
	return &KeyBuffer{ch: make(chan rune, size)}
}

// Push queues a key press.
func (b *KeyBuffer) Push(r rune) {
	select {
	case b.ch <- r:
	default:
	}
}

// PollChar drains every pending key and returns the most recent one.
func (b *KeyBuffer) PollChar() (rune, bool) {
	var (
		last rune
		ok   bool
	)
	for {
		select {
		case r := <-b.ch:
			last, ok = r, true
		default:
			return last, ok
		}
	}
}
