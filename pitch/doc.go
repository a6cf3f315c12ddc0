// Package pitch maps between Western pitch notation and the Kinko-ryū
// shakuhachi symbol vocabulary.
//
// # Overview
//
// Kinko-ryū notation names notes with seven kana symbols (ロ ツ レ チ リ
// ウ ヒ) rather than staff positions. The same seven symbols repeat in each
// of the three registers, otsu (low), kan (middle), and daikan (high), with
// small alteration marks (meri, kari) standing in for accidentals. Pitch is
// therefore not a linear transform of a Western note name; this package
// encodes the register-repeating structure once so no caller re-derives it.
//
// # Symbol table
//
// The seven base symbols are immutable values keyed by romaji, and indexed
// by kana and by reference pitch as well. The three indexes are built from
// one canonical slice and are mutually consistent by construction.
//
//	sym, err := pitch.Parse("ro")   // romaji
//	sym, err = pitch.Parse("ロ")    // kana
//	sym, err = pitch.Parse("D4")    // reference pitch
//
// # MIDI conversion
//
//	midi, err := pitch.ToMIDI("C#4")          // 61
//	midi, err = pitch.NoteMIDI("ro", pitch.RegisterKan) // 74
//
// Register arithmetic is exactly +12 semitones per register, nothing else.
//
// # Extended pitch map
//
// Map resolves any Western pitch in C4..B6 (both enharmonic spellings) to a
// fingering instruction: base symbol, register, and meri depth. Lookups
// outside the range fail with ErrPitchOutOfRange; the table never clamps.
package pitch
