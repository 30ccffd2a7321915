package sim

import "testing"

// TestColorRGB verifies the palette components and the invisible
// fallback.
func TestColorRGB(t *testing.T) {
	if r, g, b := White.RGB(); r != 1 || g != 1 || b != 1 {
		t.Errorf("white = (%g, %g, %g), want (1, 1, 1)", r, g, b)
	}
	if r, g, b := Red.RGB(); r != 1 || g != 0.3 || b != 0.3 {
		t.Errorf("red = (%g, %g, %g), want (1, 0.3, 0.3)", r, g, b)
	}
	if r, g, b := Blue.RGB(); r != 0.3 || g != 0.3 || b != 1 {
		t.Errorf("blue = (%g, %g, %g), want (0.3, 0.3, 1)", r, g, b)
	}
	if r, g, b := Invisible.RGB(); r != 0 || g != 0 || b != 0 {
		t.Errorf("invisible = (%g, %g, %g), want black", r, g, b)
	}
}

// TestColorString verifies the names used in the status bar.
func TestColorString(t *testing.T) {
	cases := map[ColorTag]string{
		White:        "white",
		Red:          "red",
		Yellow:       "yellow",
		Green:        "green",
		Cyan:         "cyan",
		Blue:         "blue",
		Magenta:      "magenta",
		Invisible:    "invisible",
		ColorTag(42): "unknown",
	}
	for tag, want := range cases {
		if got := tag.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", tag, got, want)
		}
	}
}
