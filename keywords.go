package ctok

// Keyword enumerates the C keywords. The lexer never produces keyword
// tokens: a keyword is an identifier whose text happens to match the
// table, resolved at the grammar level by Peek against the literal text.
// Tokenizing "intx" therefore yields the single identifier "intx".
type Keyword int

const (
	KwAuto Keyword = iota
	KwBreak
	KwCase
	KwChar
	KwConst
	KwContinue
	KwDefault
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExtern
	KwFloat
	KwFor
	KwGoto
	KwIf
	KwInline
	KwInt
	KwLong
	KwRegister
	KwRestrict
	KwReturn
	KwShort
	KwSigned
	KwSizeof
	KwStatic
	KwStruct
	KwSwitch
	KwTypedef
	KwUnion
	KwUnsigned
	KwVoid
	KwVolatile
	KwWhile
	KwAlignas
	KwAlignof
	KwAtomic
	KwBool
	KwComplex
	KwGeneric
	KwImaginary
	KwNoreturn
	KwStaticAssert
	KwThreadLocal
)

var keywordText = [...]string{
	KwAuto:         "auto",
	KwBreak:        "break",
	KwCase:         "case",
	KwChar:         "char",
	KwConst:        "const",
	KwContinue:     "continue",
	KwDefault:      "default",
	KwDo:           "do",
	KwDouble:       "double",
	KwElse:         "else",
	KwEnum:         "enum",
	KwExtern:       "extern",
	KwFloat:        "float",
	KwFor:          "for",
	KwGoto:         "goto",
	KwIf:           "if",
	KwInline:       "inline",
	KwInt:          "int",
	KwLong:         "long",
	KwRegister:     "register",
	KwRestrict:     "restrict",
	KwReturn:       "return",
	KwShort:        "short",
	KwSigned:       "signed",
	KwSizeof:       "sizeof",
	KwStatic:       "static",
	KwStruct:       "struct",
	KwSwitch:       "switch",
	KwTypedef:      "typedef",
	KwUnion:        "union",
	KwUnsigned:     "unsigned",
	KwVoid:         "void",
	KwVolatile:     "volatile",
	KwWhile:        "while",
	KwAlignas:      "_Alignas",
	KwAlignof:      "_Alignof",
	KwAtomic:       "_Atomic",
	KwBool:         "_Bool",
	KwComplex:      "_Complex",
	KwGeneric:      "_Generic",
	KwImaginary:    "_Imaginary",
	KwNoreturn:     "_Noreturn",
	KwStaticAssert: "_Static_assert",
	KwThreadLocal:  "_Thread_local",
}

func (kw Keyword) String() string {
	if kw < 0 || int(kw) >= len(keywordText) {
		return "?"
	}
	return keywordText[kw]
}

// Display returns the keyword text used in diagnostics.
func (kw Keyword) Display() string {
	return kw.String()
}

// Peek reports whether the cursor's current node is an identifier whose
// text equals this keyword.
func (kw Keyword) Peek(c Cursor) bool {
	ident, _, ok := c.Ident()
	return ok && ident == kw.String()
}

// Parse consumes this keyword or fails without consuming.
func (kw Keyword) Parse(ps *ParseStream) error {
	return parseToken(ps, kw)
}

// ToTokens appends this keyword as an identifier node.
func (kw Keyword) ToTokens(ts *TokenStream) {
	ts.ExtendOne(IdentTree(kw.String()))
}

// IsKeyword reports whether s is a reserved word.
func IsKeyword(s string) bool {
	for _, text := range keywordText {
		if text == s {
			return true
		}
	}
	return false
}
