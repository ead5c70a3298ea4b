// Package palette turns user-supplied color lists into coloring.Palette values.
//
// Tokens are opaque to the engine. Hex tokens ("#rgb" or "#rrggbb", any case)
// are canonicalised to lowercase "#rrggbb" so that "#F00" and "#ff0000" are
// recognised as the same color; every other token (e.g. "red") is kept as is.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/chroma/coloring"
)

// ErrBadHex is returned for a token that starts with '#' but is not a hex color.
var ErrBadHex = errors.New("palette: malformed hex color")

// Canonical returns the canonical form of a single color token.
func Canonical(token string) (string, error) {
	token = strings.TrimSpace(token)
	if !strings.HasPrefix(token, "#") {
		return token, nil
	}
	if len(token) != 4 && len(token) != 7 {
		return "", fmt.Errorf("%w: %q", ErrBadHex, token)
	}
	c, err := colorful.Hex(token)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrBadHex, token, err)
	}

	return c.Hex(), nil
}

// FromList canonicalises tokens and validates the resulting palette.
// Duplicates after canonicalisation yield coloring.ErrInvalidPalette.
func FromList(tokens []string) (coloring.Palette, error) {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		c, err := Canonical(t)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return coloring.NewPalette(out...)
}

// Parse splits a comma-separated list and delegates to FromList.
// Blank input is an empty palette.
func Parse(s string) (coloring.Palette, error) {
	if strings.TrimSpace(s) == "" {
		return coloring.NewPalette()
	}

	return FromList(strings.Split(s, ","))
}
