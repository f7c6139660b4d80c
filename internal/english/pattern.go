package english

import "bytes"

// Letter patterns that no Telex or VNI key sequence for a Vietnamese
// syllable contains. Tone keys (s f r x j), w and d are left out: their
// doubled or trailing forms are legitimate Vietnamese input.
var (
	foreignInitials = []byte("fjz")
	onsetClusters   = [][]byte{
		[]byte("bl"), []byte("br"), []byte("cl"), []byte("cr"), []byte("dr"),
		[]byte("fl"), []byte("fr"), []byte("gl"), []byte("gr"), []byte("pl"),
		[]byte("pr"), []byte("sc"), []byte("sh"), []byte("sk"), []byte("sl"),
		[]byte("sm"), []byte("sn"), []byte("sp"), []byte("st"),
	}
	// Consonants that never end a Vietnamese syllable directly after its
	// vowel. Finals ch, nh and ng keep h and g behind another consonant.
	closingConsonants = []byte("bdghklqv")
	doubledConsonants = []byte("bcghklmnptv")
	clusters          = [][]byte{
		[]byte("nd"), []byte("nt"), []byte("nk"), []byte("mp"), []byte("mb"),
		[]byte("ct"), []byte("pt"), []byte("ck"), []byte("ea"), []byte("ing"),
		[]byte("tion"), []byte("exc"), []byte("exp"), []byte("ext"),
	}
)

// LooksEnglish reports whether a lower-case raw key sequence follows a
// spelling that no Vietnamese word typed in Telex or VNI has. It does not
// allocate.
func LooksEnglish(raw []byte) bool {
	if len(raw) < 2 {
		return false
	}
	if bytes.IndexByte(foreignInitials, raw[0]) >= 0 {
		return true
	}
	for _, onset := range onsetClusters {
		if bytes.HasPrefix(raw, onset) {
			return true
		}
	}
	for i := 1; i < len(raw); i++ {
		prev, cur := raw[i-1], raw[i]
		if isVowelKey(prev) && bytes.IndexByte(closingConsonants, cur) >= 0 {
			return true
		}
		if prev == cur && bytes.IndexByte(doubledConsonants, cur) >= 0 {
			return true
		}
	}
	for _, c := range clusters {
		if bytes.Contains(raw, c) {
			return true
		}
	}
	return false
}

func isVowelKey(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
