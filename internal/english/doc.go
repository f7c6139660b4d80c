// Package english keeps Latin words from being rewritten by Vietnamese
// modifier keys.
package english

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("goxviet.english")
}
