package core

import "testing"

func TestKeyNamesRoundTrip(t *testing.T) {
	for _, k := range Keys() {
		parsed, err := ParseKey(k.String())
		if err != nil {
			t.Fatalf("ParseKey(%q) failed: %v", k.String(), err)
		}
		if parsed != k {
			t.Errorf("ParseKey(%q) = %v, expected %v", k.String(), parsed, k)
		}
	}
}

func TestParseKeyUnknown(t *testing.T) {
	if _, err := ParseKey("jump"); err == nil {
		t.Error("ParseKey(\"jump\") should fail")
	}
	if KeyNone.String() != "none" {
		t.Errorf("KeyNone.String() = %q, expected \"none\"", KeyNone.String())
	}
}

func TestInputEventPredicates(t *testing.T) {
	down := Press(KeyLeft)
	up := Release(KeyLeft)

	if !down.IsPress(KeyLeft) {
		t.Error("Press(KeyLeft) should report IsPress(KeyLeft)")
	}
	if down.IsRelease(KeyLeft) {
		t.Error("Press(KeyLeft) should not report IsRelease(KeyLeft)")
	}
	if !up.IsRelease(KeyLeft) {
		t.Error("Release(KeyLeft) should report IsRelease(KeyLeft)")
	}
	if down.IsPress(KeyRight) {
		t.Error("Press(KeyLeft) should not match KeyRight")
	}
}
