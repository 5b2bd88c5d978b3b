package ctok

// Punct enumerates the full C punctuator set, including the digraph
// spellings. One closed enum plus the punctText table stands in for a
// nominal type per lexeme; matching, display, and emission all dispatch
// on the variant.
type Punct int

const (
	Dot Punct = iota
	Arrow
	PlusPlus
	MinusMinus
	Amp
	Star
	Plus
	Minus
	Tilde
	Bang
	Slash
	Percent
	Shl
	Shr
	Lt
	Gt
	Le
	Ge
	EqEq
	Ne
	Caret
	Pipe
	AndAnd
	OrOr
	Question
	Colon
	Semi
	Ellipsis
	Eq
	StarEq
	SlashEq
	PercentEq
	PlusEq
	MinusEq
	ShlEq
	ShrEq
	AmpEq
	CaretEq
	PipeEq
	Comma
	Pound
	PoundPound
	LtColon
	ColonGt
	LtPercent
	PercentGt
	PercentColon
	DoublePercentColon
)

// punctText maps a variant to its canonical spelling. The table drives
// maximal-munch matching, display, and emission.
var punctText = [...]string{
	Dot:                ".",
	Arrow:              "->",
	PlusPlus:           "++",
	MinusMinus:         "--",
	Amp:                "&",
	Star:               "*",
	Plus:               "+",
	Minus:              "-",
	Tilde:              "~",
	Bang:               "!",
	Slash:              "/",
	Percent:            "%",
	Shl:                "<<",
	Shr:                ">>",
	Lt:                 "<",
	Gt:                 ">",
	Le:                 "<=",
	Ge:                 ">=",
	EqEq:               "==",
	Ne:                 "!=",
	Caret:              "^",
	Pipe:               "|",
	AndAnd:             "&&",
	OrOr:               "||",
	Question:           "?",
	Colon:              ":",
	Semi:               ";",
	Ellipsis:           "...",
	Eq:                 "=",
	StarEq:             "*=",
	SlashEq:            "/=",
	PercentEq:          "%=",
	PlusEq:             "+=",
	MinusEq:            "-=",
	ShlEq:              "<<=",
	ShrEq:              ">>=",
	AmpEq:              "&=",
	CaretEq:            "^=",
	PipeEq:             "|=",
	Comma:              ",",
	Pound:              "#",
	PoundPound:         "##",
	LtColon:            "<:",
	ColonGt:            ":>",
	LtPercent:          "<%",
	PercentGt:          "%>",
	PercentColon:       "%:",
	DoublePercentColon: "%:%:",
}

func (p Punct) String() string {
	if p < 0 || int(p) >= len(punctText) {
		return "?"
	}
	return punctText[p]
}

// Display returns the canonical spelling used in diagnostics.
func (p Punct) Display() string {
	return p.String()
}

// Peek reports whether the cursor's current node is this punctuator.
func (p Punct) Peek(c Cursor) bool {
	got, _, ok := c.Punct()
	return ok && got == p
}

// Parse consumes this punctuator or fails without consuming.
func (p Punct) Parse(ps *ParseStream) error {
	return parseToken(ps, p)
}

// ToTokens appends this punctuator to the output stream.
func (p Punct) ToTokens(ts *TokenStream) {
	ts.ExtendOne(PunctTree(p))
}

// punctMatch classifies a candidate string against the punctuator table.
type punctMatch int

const (
	punctMatched punctMatch = iota // exact table entry
	punctPartial                   // strict prefix of at least one entry
	punctNone                      // no entry has the candidate as a prefix
)

// matchPunct implements the deterministic table lookup of the maximal-munch
// matcher: exact match wins, otherwise any extendable prefix is Partial.
func matchPunct(s string) (Punct, punctMatch) {
	found := false
	for i, text := range punctText {
		if text == s {
			return Punct(i), punctMatched
		}
		if len(text) > len(s) && text[:len(s)] == s {
			found = true
		}
	}
	if found {
		return 0, punctPartial
	}
	return 0, punctNone
}
