package pitch

import (
	"errors"
	"testing"
)

func TestParseCrossFormAgreement(t *testing.T) {
	// Whichever form resolves, the result must be the same table entry.
	for _, sym := range Symbols() {
		byR, err := Parse(sym.Romaji)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", sym.Romaji, err)
		}
		byK, err := Parse(sym.Kana)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", sym.Kana, err)
		}
		byP, err := Parse(sym.Pitch)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", sym.Pitch, err)
		}
		if byR.Kana != byK.Kana || byK.Kana != byP.Kana {
			t.Errorf("%s: cross-form kana mismatch: %q %q %q",
				sym.Romaji, byR.Kana, byK.Kana, byP.Kana)
		}
		if byR != byK || byK != byP {
			t.Errorf("%s: forms resolved to different entries", sym.Romaji)
		}
	}
}

func TestParseCaseInsensitiveRomaji(t *testing.T) {
	for _, input := range []string{"ro", "RO", "Ro"} {
		sym, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		if sym.Romaji != "ro" {
			t.Errorf("Parse(%q).Romaji = %q, want ro", input, sym.Romaji)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	for _, input := range []string{"", "xyz", "ホ", "C9", "do"} {
		_, err := Parse(input)
		if !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("Parse(%q) error = %v, want ErrUnknownSymbol", input, err)
		}
	}
}

func TestSymbolTableConsistency(t *testing.T) {
	syms := Symbols()
	if len(syms) != 7 {
		t.Fatalf("Symbols() returned %d entries, want 7", len(syms))
	}
	kana := make(map[string]bool)
	pitches := make(map[string]bool)
	for _, s := range syms {
		if kana[s.Kana] {
			t.Errorf("duplicate kana %q", s.Kana)
		}
		kana[s.Kana] = true
		if pitches[s.Pitch] {
			t.Errorf("duplicate reference pitch %q", s.Pitch)
		}
		pitches[s.Pitch] = true
		if s.DefaultOctave != RegisterOtsu {
			t.Errorf("%s: default octave = %v, want otsu", s.Romaji, s.DefaultOctave)
		}
		if s.Unicode != []rune(s.Kana)[0] {
			t.Errorf("%s: unicode %q does not match kana %q", s.Romaji, s.Unicode, s.Kana)
		}
	}
}

func TestRegisterString(t *testing.T) {
	if RegisterOtsu.String() != "otsu" {
		t.Errorf("otsu name = %q", RegisterOtsu.String())
	}
	if RegisterKan.String() != "kan" {
		t.Errorf("kan name = %q", RegisterKan.String())
	}
	if RegisterDaikan.String() != "daikan" {
		t.Errorf("daikan name = %q", RegisterDaikan.String())
	}
	if Register(7).String() != "unknown" {
		t.Errorf("out-of-range register name = %q", Register(7).String())
	}
}
