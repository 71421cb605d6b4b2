package core

import "testing"

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key      rune
		expected Action
	}{
		{'w', ActionUp},
		{'W', ActionUp},
		{'a', ActionLeft},
		{'A', ActionLeft},
		{'s', ActionDown},
		{'S', ActionDown},
		{'d', ActionRight},
		{'D', ActionRight},
		{'\r', ActionConfirm},
		{'\n', ActionConfirm},
		{'n', ActionNext},
		{'N', ActionNext},
		{'r', ActionReplay},
		{'R', ActionReplay},
		{'m', ActionMenu},
		{'M', ActionMenu},
		{'x', ActionNone},
		{' ', ActionNone},
	}

	for _, tc := range tests {
		if got := ActionForKey(tc.key); got != tc.expected {
			t.Errorf("ActionForKey(%q) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}

func TestFrameForKey(t *testing.T) {
	f := FrameForKey('d', true)
	if !f.Has(ActionRight) {
		t.Error("FrameForKey('d') should set ActionRight")
	}

	empty := FrameForKey('d', false)
	if empty.Has(ActionRight) {
		t.Error("FrameForKey without a key should be empty")
	}

	unknown := FrameForKey('x', true)
	if len(unknown.Actions) != 0 {
		t.Errorf("unmapped key should not set actions, got %v", unknown.Actions)
	}
}

func TestZeroInputFrame(t *testing.T) {
	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should report no actions")
	}
}

func TestKeyBufferReturnsMostRecent(t *testing.T) {
	b := NewKeyBuffer(8)

	if _, ok := b.PollChar(); ok {
		t.Fatal("empty buffer should report no key")
	}

	b.Push('a')
	b.Push('d')
	b.Push('w')

	r, ok := b.PollChar()
	if !ok || r != 'w' {
		t.Errorf("PollChar() = (%q, %v), expected ('w', true)", r, ok)
	}

	if _, ok := b.PollChar(); ok {
		t.Error("keys should be consumed by the previous poll")
	}
}

func TestKeyBufferDropsWhenFull(t *testing.T) {
	b := NewKeyBuffer(2)
	b.Push('a')
	b.Push('b')
	b.Push('c') // dropped, must not block

	r, ok := b.PollChar()
	if !ok || r != 'b' {
		t.Errorf("PollChar() = (%q, %v), expected ('b', true)", r, ok)
	}
}
