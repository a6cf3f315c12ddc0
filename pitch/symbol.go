package pitch

import "strings"

// Register identifies one of the three shakuhachi octave registers.
// Each register sounds exactly 12 semitones above the previous one.
type Register int

const (
	// RegisterOtsu is the low register.
	RegisterOtsu Register = 0
	// RegisterKan is the middle register, one octave above otsu.
	RegisterKan Register = 1
	// RegisterDaikan is the high register, two octaves above otsu.
	RegisterDaikan Register = 2
)

// registerNames maps Register values to their romanized names.
var registerNames = [...]string{
	RegisterOtsu:   "otsu",
	RegisterKan:    "kan",
	RegisterDaikan: "daikan",
}

// String returns the romanized register name.
func (r Register) String() string {
	if r >= 0 && int(r) < len(registerNames) {
		return registerNames[r]
	}
	return "unknown"
}

// Valid reports whether r is one of the three defined registers.
func (r Register) Valid() bool {
	return r >= RegisterOtsu && r <= RegisterDaikan
}

// Fingering is the open/closed state of the five finger holes, from the
// bottom hole (index 0) to the top hole (index 4). True means open.
type Fingering [5]bool

// Symbol is one of the seven base notes of Kinko-ryū notation.
// Symbols are immutable values; the package-level table is built once at
// init and never mutated.
type Symbol struct {
	// Kana is the notation glyph (katakana).
	Kana string
	// Romaji is the romanized name; the primary table key.
	Romaji string
	// Pitch is the reference Western pitch sounded in the otsu register.
	Pitch string
	// DefaultOctave is the register the bare glyph denotes.
	DefaultOctave Register
	// Fingering is the base hole pattern for the symbol.
	Fingering Fingering
	// CanAlter reports whether meri/kari alteration marks apply.
	CanAlter bool
	// Unicode is the code point of the kana glyph.
	Unicode rune
}

// baseSymbols is the canonical symbol list. The otsu reference pitches
// span C4..B4 so register arithmetic stays a pure +12 per register.
var baseSymbols = []Symbol{
	{Kana: "リ", Romaji: "ri", Pitch: "C4", DefaultOctave: RegisterOtsu, Fingering: Fingering{true, true, true, true, false}, CanAlter: true, Unicode: 'リ'},
	{Kana: "ロ", Romaji: "ro", Pitch: "D4", DefaultOctave: RegisterOtsu, Fingering: Fingering{false, false, false, false, false}, CanAlter: true, Unicode: 'ロ'},
	{Kana: "ウ", Romaji: "u", Pitch: "E4", DefaultOctave: RegisterOtsu, Fingering: Fingering{true, false, false, false, true}, CanAlter: false, Unicode: 'ウ'},
	{Kana: "ツ", Romaji: "tsu", Pitch: "F4", DefaultOctave: RegisterOtsu, Fingering: Fingering{true, false, false, false, false}, CanAlter: true, Unicode: 'ツ'},
	{Kana: "レ", Romaji: "re", Pitch: "G4", DefaultOctave: RegisterOtsu, Fingering: Fingering{true, true, false, false, false}, CanAlter: true, Unicode: 'レ'},
	{Kana: "チ", Romaji: "chi", Pitch: "A4", DefaultOctave: RegisterOtsu, Fingering: Fingering{true, true, true, false, false}, CanAlter: true, Unicode: 'チ'},
	{Kana: "ヒ", Romaji: "hi", Pitch: "B4", DefaultOctave: RegisterOtsu, Fingering: Fingering{false, true, true, true, false}, CanAlter: true, Unicode: 'ヒ'},
}

// Secondary indexes into baseSymbols. Built in init from the canonical
// slice so the three lookup forms cannot drift apart.
var (
	byRomaji = make(map[string]Symbol, len(baseSymbols))
	byKana   = make(map[string]Symbol, len(baseSymbols))
	byPitch  = make(map[string]Symbol, len(baseSymbols))
)

func init() {
	for _, s := range baseSymbols {
		key := strings.ToLower(s.Romaji)
		if _, dup := byRomaji[key]; dup {
			panic("pitch: duplicate romaji " + s.Romaji)
		}
		if _, dup := byKana[s.Kana]; dup {
			panic("pitch: duplicate kana " + s.Kana)
		}
		if _, dup := byPitch[s.Pitch]; dup {
			panic("pitch: duplicate reference pitch " + s.Pitch)
		}
		byRomaji[key] = s
		byKana[s.Kana] = s
		byPitch[s.Pitch] = s
	}
}

// Symbols returns a copy of the base symbol table in canonical order.
func Symbols() []Symbol {
	out := make([]Symbol, len(baseSymbols))
	copy(out, baseSymbols)
	return out
}
