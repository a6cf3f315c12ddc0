package pitch

import "fmt"

// pitchClasses maps the note letter to its semitone offset within an octave.
var pitchClasses = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// parsePitch splits a Western pitch string into letter, accidental offset,
// and octave. The accepted form is letter A-G, optional # or b, and a
// decimal octave. Anything else fails with ErrInvalidPitch.
func parsePitch(pitch string) (class, accidental, octave int, err error) {
	if len(pitch) < 2 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidPitch, pitch)
	}
	pc, ok := pitchClasses[pitch[0]]
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidPitch, pitch)
	}
	rest := pitch[1:]
	switch rest[0] {
	case '#':
		accidental = 1
		rest = rest[1:]
	case 'b':
		accidental = -1
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidPitch, pitch)
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidPitch, pitch)
		}
		octave = octave*10 + int(rest[i]-'0')
	}
	return pc, accidental, octave, nil
}

// ToMIDI converts a Western pitch string to its MIDI note number:
// (octave+1)*12 + pitchClass + accidental. C4 is 60.
func ToMIDI(pitch string) (int, error) {
	class, accidental, octave, err := parsePitch(pitch)
	if err != nil {
		return 0, err
	}
	return (octave+1)*12 + class + accidental, nil
}

// NoteMIDI returns the MIDI note number of a base symbol played in the
// given register: the reference pitch plus exactly 12 semitones per
// register step. Unknown romaji fails with ErrUnknownNote.
func NoteMIDI(romaji string, register Register) (int, error) {
	s, err := Parse(romaji)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, romaji)
	}
	base, err := ToMIDI(s.Pitch)
	if err != nil {
		// Reference pitches come from the canonical table; a parse
		// failure here is a table defect, not caller input.
		return 0, err
	}
	return base + 12*int(register), nil
}
