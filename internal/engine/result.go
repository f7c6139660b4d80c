package engine

// Result is the edit the host applies after a key.
//
// When Consumed is false the host handles the key itself. When it is true
// the host deletes Backspace characters before the cursor and types Chars,
// and the key itself is swallowed. Chars aliases engine memory and is only
// valid until the next call into the engine.
type Result struct {
	Consumed  bool
	Backspace int
	Chars     []rune
}

func (r Result) Text() string { return string(r.Chars) }

func (r Result) Empty() bool {
	return !r.Consumed && r.Backspace == 0 && len(r.Chars) == 0
}
