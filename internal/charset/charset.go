// Package charset converts composed text into the output encodings a host
// may need: precomposed Unicode, decomposed Unicode and Windows-1258.
package charset

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"goxviet/internal/vn"
)

type Encoding int

const (
	Unicode Encoding = iota
	Decomposed
	CP1258
)

func (e Encoding) String() string {
	switch e {
	case Unicode:
		return "unicode"
	case Decomposed:
		return "nfd"
	case CP1258:
		return "cp1258"
	default:
		return "unknown"
	}
}

func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unicode", "utf8", "utf-8", "nfc":
		return Unicode, nil
	case "nfd", "decomposed", "unicode-nfd":
		return Decomposed, nil
	case "cp1258", "windows-1258", "windows1258":
		return CP1258, nil
	}
	return Unicode, fmt.Errorf("unknown output encoding %q", name)
}

// Transformer returns the UTF-8 to e transform.
func (e Encoding) Transformer() transform.Transformer {
	switch e {
	case Decomposed:
		return norm.NFD
	case CP1258:
		return transform.Chain(norm.NFC, toneSplitter{}, charmap.Windows1258.NewEncoder())
	default:
		return norm.NFC
	}
}

// Encode converts s into e.
func Encode(s string, e Encoding) ([]byte, error) {
	out, _, err := transform.Bytes(e.Transformer(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e, err)
	}
	return out, nil
}

// Decode converts bytes in e back to precomposed UTF-8.
func Decode(b []byte, e Encoding) (string, error) {
	var t transform.Transformer = norm.NFC
	if e == CP1258 {
		t = transform.Chain(charmap.Windows1258.NewDecoder(), norm.NFC)
	}
	out, _, err := transform.Bytes(t, b)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", e, err)
	}
	return string(out), nil
}

// NewWriter wraps w so that UTF-8 written to it reaches w in e. Close
// flushes any partial sequence.
func NewWriter(w io.Writer, e Encoding) io.WriteCloser {
	return transform.NewWriter(w, e.Transformer())
}

// toneSplitter rewrites toned Vietnamese vowels as the toneless letter
// followed by a combining tone mark. Windows-1258 has the marked letters
// (ă, ơ, ư, ...) and the five tone marks but not their combinations.
type toneSplitter struct{ transform.NopResetter }

func (toneSplitter) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !utf8.FullRune(src[nSrc:]) && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		var buf [2 * utf8.UTFMax]byte
		n := 0
		if l, ok := vn.Decompose(r); ok && l.Tone != vn.ToneNone {
			tone := l.Tone
			l.Tone = vn.ToneNone
			n = utf8.EncodeRune(buf[:], vn.Compose(l))
			n += utf8.EncodeRune(buf[n:], vn.CombiningTone(tone))
		} else {
			n = copy(buf[:], src[nSrc:nSrc+size])
		}
		if nDst+n > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], buf[:n])
		nSrc += size
	}
	return nDst, nSrc, nil
}
