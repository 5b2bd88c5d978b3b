package ctok

import "fmt"

// Delim is one of the three bracket families that define group nesting.
type Delim int

const (
	Paren Delim = iota
	Brace
	Bracket
)

func (d Delim) String() string {
	switch d {
	case Brace:
		return "{"
	case Bracket:
		return "["
	}
	return "("
}

// Close returns the closing spelling of the delimiter.
func (d Delim) Close() string {
	switch d {
	case Brace:
		return "}"
	case Bracket:
		return "]"
	}
	return ")"
}

// Display returns the opening spelling used in diagnostics.
func (d Delim) Display() string {
	return d.String()
}

// Peek reports whether the cursor's current node is a group of this kind.
func (d Delim) Peek(c Cursor) bool {
	got, _, ok := c.Delim()
	return ok && got == d
}

// ParseInner consumes a group of this delimiter kind and returns its
// nested stream. On mismatch it fails without consuming anything: the
// check and the advance run inside the speculative-advance primitive.
func (d Delim) ParseInner(ps *ParseStream) (*TokenStream, error) {
	var inner *TokenStream
	err := ps.Step(func(c Cursor) (Cursor, error) {
		entries, rest, ok := c.Group(d)
		if !ok {
			return c, ps.Error(fmt.Sprintf("expected %s", d.Display()))
		}
		inner = entries
		return rest, nil
	})
	if err != nil {
		return nil, err
	}
	return inner, nil
}
