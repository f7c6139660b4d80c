package types

import "testing"

func TestParseInputMethod(t *testing.T) {
	m, err := ParseInputMethod(" VNI ")
	if err != nil || m != MethodVNI {
		t.Fatalf("expected vni, got %v (%v)", m, err)
	}
	if _, err := ParseInputMethod("qwerty"); err == nil {
		t.Fatalf("expected error for unknown method")
	}
	if MethodTelex.String() != "telex" {
		t.Fatalf("expected telex string, got %q", MethodTelex.String())
	}
}

func TestParseToneStyle(t *testing.T) {
	s, err := ParseToneStyle("old")
	if err != nil || s != ToneTraditional {
		t.Fatalf("expected traditional, got %v (%v)", s, err)
	}
	if _, err := ParseToneStyle("sideways"); err == nil {
		t.Fatalf("expected error for unknown style")
	}
}
