package coloring

import "fmt"

// Palette is an ordered sequence of distinct color tokens.
// Order is the try-order at every vertex.
type Palette []string

// NewPalette copies colors into a validated Palette.
func NewPalette(colors ...string) (Palette, error) {
	p := make(Palette, len(colors))
	copy(p, colors)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate reports ErrEmptyPalette or ErrInvalidPalette.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPalette
	}
	seen := make(map[string]int, len(p))
	for i, c := range p {
		if c == "" {
			return fmt.Errorf("%w: empty token at index %d", ErrInvalidPalette, i)
		}
		if j, dup := seen[c]; dup {
			return fmt.Errorf("%w: %q repeated at indexes %d and %d", ErrInvalidPalette, c, j, i)
		}
		seen[c] = i
	}

	return nil
}

// Index returns the position of color in p, or -1.
func (p Palette) Index(color string) int {
	for i, c := range p {
		if c == color {
			return i
		}
	}

	return -1
}

// Contains reports whether color is part of p.
func (p Palette) Contains(color string) bool {
	return p.Index(color) >= 0
}
