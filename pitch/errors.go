package pitch

import "errors"

var (
	// ErrUnknownSymbol indicates an input that matches no romaji, kana, or
	// reference pitch in the base symbol table.
	ErrUnknownSymbol = errors.New("pitch: unknown symbol")

	// ErrInvalidPitch indicates a string that is not a Western pitch of the
	// form letter A-G, optional # or b, decimal octave.
	ErrInvalidPitch = errors.New("pitch: invalid pitch format")

	// ErrUnknownNote indicates a romaji name absent from the symbol table.
	ErrUnknownNote = errors.New("pitch: unknown note name")

	// ErrPitchOutOfRange indicates a well-formed pitch outside the mapped
	// C4..B6 range.
	ErrPitchOutOfRange = errors.New("pitch: pitch out of mapped range")
)
