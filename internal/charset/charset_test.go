package charset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		in   string
		want Encoding
	}{
		{"", Unicode},
		{"UTF-8", Unicode},
		{"nfd", Decomposed},
		{"Windows-1258", CP1258},
	}
	for _, tc := range tests {
		got, err := ParseEncoding(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	_, err := ParseEncoding("tcvn3")
	assert.Error(t, err)
}

func TestEncodeUnicodeComposes(t *testing.T) {
	out, err := Encode("viết", Unicode)
	require.NoError(t, err)
	assert.Equal(t, "viết", string(out))
}

func TestEncodeDecomposed(t *testing.T) {
	out, err := Encode("Việt", Decomposed)
	require.NoError(t, err)
	assert.True(t, norm.NFD.IsNormal(out))
	assert.Equal(t, "Việt", norm.NFC.String(string(out)))
}

func TestEncodeCP1258(t *testing.T) {
	out, err := Encode("Tiếng Việt đẹp", CP1258)
	require.NoError(t, err)
	// ê 0xEA, acute 0xEC, dot below 0xF2, đ 0xF0
	want := []byte{'T', 'i', 0xEA, 0xEC, 'n', 'g', ' ', 'V', 'i', 0xEA, 0xF2, 't', ' ', 0xF0, 'e', 0xF2, 'p'}
	assert.Equal(t, want, out)

	back, err := Decode(out, CP1258)
	require.NoError(t, err)
	assert.Equal(t, "Tiếng Việt đẹp", back)
}

func TestEncodeCP1258KeepsMarkedLetters(t *testing.T) {
	out, err := Encode("ƯƠ ă", CP1258)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDD, 0xD5, ' ', 0xE3}, out)
}

func TestWriterSplitsAcrossWrites(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, CP1258)
	word := []byte("được")
	// split inside the multi-byte ư
	_, err := w.Write(word[:3])
	require.NoError(t, err)
	_, err = w.Write(word[3:])
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, []byte{0xF0, 0xFD, 0xF5, 0xF2, 'c'}, buf.Bytes())
}
