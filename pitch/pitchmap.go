package pitch

import "fmt"

// Mapping is one fingering instruction from the extended pitch map: which
// base symbol to play, in which register, at which meri depth. Meri depths
// are mutually exclusive; ChuMeri is the quarter-tone depth and is never
// produced by the 12-TET table, but scores notated with it round-trip
// through the same type.
type Mapping struct {
	Step    string
	Octave  Register
	Meri    bool
	ChuMeri bool
	DaiMeri bool
}

// pcMapping is the per-pitch-class fingering template. The shakuhachi
// vocabulary repeats identically in every register, so one 12-entry
// template generates the whole table.
type pcMapping struct {
	step    string
	meri    bool
	daiMeri bool
}

// pcTemplate maps pitch class 0..11 (C..B) to its fingering. Altered
// pitches are reached by lowering the next natural's symbol: meri lowers
// one semitone, dai-meri two.
var pcTemplate = [12]pcMapping{
	0:  {step: "ri"},
	1:  {step: "ro", meri: true},
	2:  {step: "ro"},
	3:  {step: "tsu", daiMeri: true},
	4:  {step: "u"},
	5:  {step: "tsu"},
	6:  {step: "re", meri: true},
	7:  {step: "re"},
	8:  {step: "chi", meri: true},
	9:  {step: "chi"},
	10: {step: "hi", meri: true},
	11: {step: "hi"},
}

// spellings lists every accepted pitch-class spelling. Enharmonic pairs
// share a pitch class, so C#5 and Db5 resolve to the same Mapping by
// construction.
var spellings = map[string]int{
	"C": 0, "C#": 1, "Db": 1, "D": 2, "D#": 3, "Eb": 3, "E": 4,
	"F": 5, "F#": 6, "Gb": 6, "G": 7, "G#": 8, "Ab": 8, "A": 9,
	"A#": 10, "Bb": 10, "B": 11,
}

// Mapped octave range. Octave 4 is otsu, 5 kan, 6 daikan.
const (
	mapOctaveLow  = 4
	mapOctaveHigh = 6
)

// kinkoPitchMap is the extended register table: a total function from
// Western pitch string over C4..B6 to a Mapping. Built once at init from
// pcTemplate and never mutated.
var kinkoPitchMap = make(map[string]Mapping, 17*3)

func init() {
	for octave := mapOctaveLow; octave <= mapOctaveHigh; octave++ {
		for spelling, pc := range spellings {
			t := pcTemplate[pc]
			kinkoPitchMap[fmt.Sprintf("%s%d", spelling, octave)] = Mapping{
				Step:    t.step,
				Octave:  Register(octave - mapOctaveLow),
				Meri:    t.meri,
				DaiMeri: t.daiMeri,
			}
		}
	}
}

// Map resolves a Western pitch string to its shakuhachi fingering
// instruction. Malformed strings fail with ErrInvalidPitch; well-formed
// pitches outside C4..B6 fail with ErrPitchOutOfRange. The table never
// clamps to its edges.
func Map(pitch string) (Mapping, error) {
	if m, ok := kinkoPitchMap[pitch]; ok {
		return m, nil
	}
	if _, _, _, err := parsePitch(pitch); err != nil {
		return Mapping{}, err
	}
	return Mapping{}, fmt.Errorf("%w: %q (mapped range C4..B6)", ErrPitchOutOfRange, pitch)
}
