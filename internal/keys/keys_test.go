package keys

import "testing"

func TestClassifyLetters(t *testing.T) {
	class, r := Classify(Keystroke{Code: KeyA})
	if class != ClassLetter || r != 'a' {
		t.Fatalf("expected letter 'a', got %v %q", class, r)
	}
	class, r = Classify(Keystroke{Code: KeyW, Shift: true})
	if class != ClassLetter || r != 'w' {
		t.Fatalf("expected letter 'w' for shifted key, got %v %q", class, r)
	}
}

func TestClassifyControlPassesThrough(t *testing.T) {
	class, _ := Classify(Keystroke{Code: KeyA, Ctrl: true})
	if class != ClassPassThrough {
		t.Fatalf("expected pass-through with control held, got %v", class)
	}
	class, _ = Classify(Keystroke{Code: KeyLeftShift})
	if class != ClassPassThrough {
		t.Fatalf("expected bare modifier to pass through, got %v", class)
	}
}

func TestClassifyDigitsAndShiftedDigits(t *testing.T) {
	class, r := Classify(Keystroke{Code: Key6})
	if class != ClassDigit || r != '6' {
		t.Fatalf("expected digit '6', got %v %q", class, r)
	}
	class, r = Classify(Keystroke{Code: Key6, Shift: true})
	if class != ClassBreak || r != '^' {
		t.Fatalf("expected shifted 6 to break with '^', got %v %q", class, r)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		code  Code
		class Class
	}{
		{KeySpace, ClassSpace},
		{KeyBackspace, ClassBackspace},
		{KeyEsc, ClassEscape},
		{KeyDot, ClassBreak},
		{KeyEnter, ClassBreak},
		{KeyLeft, ClassBreak},
		{KeyDelete, ClassBreak},
		{Code(250), ClassBreak},
	}
	for _, tc := range cases {
		class, _ := Classify(Keystroke{Code: tc.code})
		if class != tc.class {
			t.Fatalf("code %d: expected %v, got %v", tc.code, tc.class, class)
		}
	}
}

func TestUpperHonoursCapsLock(t *testing.T) {
	if !(Keystroke{Shift: true}).Upper() {
		t.Fatalf("expected shift to produce upper case")
	}
	if (Keystroke{Shift: true, Caps: true}).Upper() {
		t.Fatalf("expected shift with caps lock to produce lower case")
	}
	if got := Printable(Keystroke{Code: KeyD, Caps: true}); got != 'D' {
		t.Fatalf("expected 'D', got %q", got)
	}
}

func TestFromRuneRoundTrip(t *testing.T) {
	for _, r := range "aZ9?, \n" {
		k, ok := FromRune(r)
		if !ok {
			t.Fatalf("expected a key for %q", r)
		}
		if got := Printable(k); r != '\n' && got != r {
			t.Fatalf("expected %q back, got %q", r, got)
		}
	}
	if _, ok := FromRune('ư'); ok {
		t.Fatalf("expected no key for a composed letter")
	}
}
