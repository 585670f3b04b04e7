package grapheme

import "testing"

func TestSplit_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "世" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
}

func TestWidth_WideAndCombining(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"é", 1},
		{"世界", 4},
	}
	for _, tc := range cases {
		if got := Width(tc.text); got != tc.want {
			t.Fatalf("Width(%q)=%d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestTruncate_DoesNotSplitWideCluster(t *testing.T) {
	if got, want := Truncate("a世b", 2), "a"; got != want {
		t.Fatalf("truncate=%q, want %q", got, want)
	}
	if got, want := Truncate("abc", 5), "abc"; got != want {
		t.Fatalf("truncate=%q, want %q", got, want)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Fatalf("truncate=%q, want empty", got)
	}
}

func TestPadRight(t *testing.T) {
	if got, want := PadRight("ab", 4), "ab  "; got != want {
		t.Fatalf("pad=%q, want %q", got, want)
	}
	if got, want := PadRight("世世", 3), "世 "; got != want {
		t.Fatalf("pad=%q, want %q", got, want)
	}
}
