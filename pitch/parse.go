package pitch

import (
	"fmt"
	"strings"
)

// Parse resolves an input string to a base symbol. It tries, in priority
// order: romaji (case-insensitive), kana (exact), reference Western pitch
// (exact). Whichever form matches, the returned Symbol carries the other
// two representations from the same canonical table entry.
//
// Parse fails with ErrUnknownSymbol when no form matches. Callers that want
// a drawable fallback for arbitrary glyphs handle that themselves; the
// mapper never guesses.
func Parse(input string) (Symbol, error) {
	if s, ok := byRomaji[strings.ToLower(input)]; ok {
		return s, nil
	}
	if s, ok := byKana[input]; ok {
		return s, nil
	}
	if s, ok := byPitch[input]; ok {
		return s, nil
	}
	return Symbol{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, input)
}
