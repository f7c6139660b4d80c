/*
Package shortcut keeps the user's text-expansion table.

A shortcut maps a short trigger ("btw") to a longer replacement ("by the
way"). Triggers are indexed in a prefix trie; they fire on a word boundary or,
for immediate shortcuts, as soon as the trigger is typed. Tables can be read
from and written to JSON, TOML or YAML files.
*/
package shortcut

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("goxviet.shortcut")
}
