package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("no-such-theme").Name; got != FlexokiDark.Name {
		t.Errorf("ByName fallback = %q, want %q", got, FlexokiDark.Name)
	}
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %q", got)
	}
}

func TestNamesAndValid(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("Names() returned %d names, want %d", len(names), len(All))
	}
	for _, n := range names {
		if !Valid(n) {
			t.Errorf("Valid(%q) = false", n)
		}
	}
	if Valid("") {
		t.Error("Valid(\"\") = true")
	}
}

func TestSigned(t *testing.T) {
	if FlexokiDark.Signed(-0.01) != FlexokiDark.Red {
		t.Error("negative amount should use the loss color")
	}
	if FlexokiDark.Signed(0) != FlexokiDark.Green {
		t.Error("zero should use the gain color")
	}
}
