package ctok

// Kind discriminates the variants of a TokenTree.
type Kind int

const (
	KindUnknown Kind = iota

	KindIdent // identifier text (keywords are not split out by the lexer)
	KindLit   // integer, float, or string literal
	KindPunct // one of the fixed punctuator set
	KindGroup // delimited group owning a nested stream
)

func (k Kind) String() string {
	switch k {
	case KindIdent:
		return "Ident"
	case KindLit:
		return "Lit"
	case KindPunct:
		return "Punct"
	case KindGroup:
		return "Group"
	}
	return "Unknown"
}

// LitKind discriminates the variants of a Literal.
type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitStr
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "Int"
	case LitFloat:
		return "Float"
	case LitStr:
		return "Str"
	}
	return "Unknown"
}
