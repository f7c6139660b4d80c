package vn

import "testing"

func TestComposeAllRows(t *testing.T) {
	cases := []struct {
		letter Letter
		want   rune
	}{
		{Letter{Base: 'a'}, 'a'},
		{Letter{Base: 'a', Tone: ToneAcute}, 'á'},
		{Letter{Base: 'a', Mark: MarkBreve, Tone: ToneDot}, 'ặ'},
		{Letter{Base: 'a', Mark: MarkCircumflex, Tone: ToneTilde}, 'ẫ'},
		{Letter{Base: 'e', Mark: MarkCircumflex, Tone: ToneAcute}, 'ế'},
		{Letter{Base: 'o', Mark: MarkHorn, Tone: ToneDot}, 'ợ'},
		{Letter{Base: 'u', Mark: MarkHorn}, 'ư'},
		{Letter{Base: 'u', Mark: MarkHorn, Upper: true}, 'Ư'},
		{Letter{Base: 'y', Tone: ToneHook}, 'ỷ'},
		{Letter{Base: 'd', Stroke: true}, 'đ'},
		{Letter{Base: 'd', Stroke: true, Upper: true}, 'Đ'},
		{Letter{Base: 'i', Tone: ToneGrave, Upper: true}, 'Ì'},
	}
	for _, tc := range cases {
		if got := Compose(tc.letter); got != tc.want {
			t.Fatalf("compose %+v: expected %q, got %q", tc.letter, tc.want, got)
		}
	}
}

func TestComposeDropsImpossibleCombinations(t *testing.T) {
	if got := Compose(Letter{Base: 'i', Mark: MarkHorn}); got != 'i' {
		t.Fatalf("expected horn on i to be dropped, got %q", got)
	}
	if got := Compose(Letter{Base: 'n', Tone: ToneAcute}); got != 'n' {
		t.Fatalf("expected consonant to ignore tone, got %q", got)
	}
}

func TestDecomposeRoundTrip(t *testing.T) {
	for _, r := range "aáàảãạăắằẳẵặâấầẩẫậeéèẻẽẹêếềểễệiíìỉĩịoóòỏõọôốồổỗộơớờởỡợuúùủũụưứừửữựyýỳỷỹỵđĐƯỢ" {
		l, ok := Decompose(r)
		if !ok {
			t.Fatalf("expected %q to decompose", r)
		}
		if got := Compose(l); got != r {
			t.Fatalf("expected %q after round trip, got %q", r, got)
		}
	}
	if _, ok := Decompose('ß'); ok {
		t.Fatalf("expected foreign letter to be rejected")
	}
}

func TestStripTone(t *testing.T) {
	if got := StripTone('ự'); got != 'ư' {
		t.Fatalf("expected 'ư', got %q", got)
	}
	if got := StripTone('Ấ'); got != 'Â' {
		t.Fatalf("expected 'Â', got %q", got)
	}
}

func TestHasVietnamese(t *testing.T) {
	if HasVietnamese("hello") {
		t.Fatalf("expected plain ASCII to report false")
	}
	if !HasVietnamese("xin chào") {
		t.Fatalf("expected composed text to report true")
	}
}
