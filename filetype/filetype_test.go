package filetype

import "testing"

func checkDetect(t *testing.T, r Result, wantProfile string, wantMethod Method) {
	t.Helper()
	if r.Profile == nil {
		t.Fatalf("no profile, want %q", wantProfile)
	}
	if r.Profile.Name != wantProfile {
		t.Fatalf("profile=%q, want %q", r.Profile.Name, wantProfile)
	}
	if r.Method != wantMethod {
		t.Fatalf("method=%q, want %q", r.Method, wantMethod)
	}
}

func TestDetect_BuiltinPattern(t *testing.T) {
	checkDetect(t, Detect("main.go", nil), "go", MethodPattern)
}

func TestDetect_ChromaFallback(t *testing.T) {
	// .bash is not in the built-in patterns but chroma knows it.
	checkDetect(t, Detect("profile.bash", nil), "bash", MethodChroma)
}

func TestDetect_Shebang(t *testing.T) {
	checkDetect(t, Detect("runme", []byte("#!/usr/bin/env python3\nprint(1)\n")), "python", MethodShebang)
}

func TestDetect_Unknown(t *testing.T) {
	r := Detect("notes.unknownext", []byte("plain words\n"))
	if r.Profile != nil || r.Method != MethodNone {
		t.Fatalf("result=%+v, want none", r)
	}

	if r := Detect("", nil); r.Profile != nil {
		t.Fatalf("empty name detected %q", r.Profile.Name)
	}
}

func TestProfileFor(t *testing.T) {
	cases := map[string]string{
		"JavaScript": "js",
		"Shell":      "bash",
	}
	for lang, want := range cases {
		p, ok := ProfileFor(lang)
		if !ok || p.Name != want {
			t.Fatalf("ProfileFor(%q)=%v,%v, want %q", lang, p, ok, want)
		}
	}
	if _, ok := ProfileFor("Haskell"); ok {
		t.Fatalf("ProfileFor(Haskell) found a profile")
	}
}
