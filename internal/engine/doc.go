/*
Package engine turns keystrokes into Vietnamese text.

An Engine keeps the word being typed as composed chars plus the literal keys
behind them. Each OnKey call returns a Result telling the host how many
characters to delete and what to type in their place. Plain letters are left
to the host; modifier keys (tones, marks, the d stroke) rewrite the smallest
tail of the word that changed.

The engine does no I/O and does not log on the key path; rare events such as
restores and recovered faults go to the "goxviet.engine" trace.
*/
package engine

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("goxviet.engine")
}
