package ctok

// ToTokens is the emission contract, the inverse of parsing: a value
// appends its canonical token representation to the output stream.
// Keywords, punctuators, and TokenTree itself implement it; client
// syntax types compose those with the helpers below.
type ToTokens interface {
	ToTokens(ts *TokenStream)
}

// Emit builds a fresh stream from a value's emission. A nil value
// emits nothing, which lets optional fields vanish cleanly.
func Emit(v ToTokens) *TokenStream {
	ts := NewTokenStream()
	if v != nil {
		v.ToTokens(ts)
	}
	return ts
}

// ToTokens appends the node itself, so a TokenTree can be spliced into
// an emission directly.
func (tt TokenTree) ToTokens(ts *TokenStream) {
	ts.ExtendOne(tt)
}

// ToTokens splices every cell of the stream into the output.
func (src *TokenStream) ToTokens(ts *TokenStream) {
	ts.Extend(src)
}

// Delimited is a pending group emission built by Parenthesized,
// Bracketed, or Braced.
type Delimited struct {
	tt TokenTree
}

func (d Delimited) ToTokens(ts *TokenStream) {
	ts.ExtendOne(d.tt)
}

// delimited emits inner into a fresh stream and wraps it in a group.
// The group's position is synthetic (nil), since it is generated
// rather than lexed.
func delimited(inner ToTokens, delim Delim) Delimited {
	return Delimited{tt: GroupTree(delim, Emit(inner))}
}

// Parenthesized wraps an emission in ( ).
func Parenthesized(inner ToTokens) Delimited {
	return delimited(inner, Paren)
}

// Bracketed wraps an emission in [ ].
func Bracketed(inner ToTokens) Delimited {
	return delimited(inner, Bracket)
}

// Braced wraps an emission in { }.
func Braced(inner ToTokens) Delimited {
	return delimited(inner, Brace)
}

// Multiple builds a composite emission from a procedure that appends
// any number of values in order.
type MultipleTokens struct {
	ts *TokenStream
}

func (m MultipleTokens) ToTokens(ts *TokenStream) {
	ts.Extend(m.ts)
}

func Multiple(f func(ts *TokenStream)) MultipleTokens {
	ts := NewTokenStream()
	f(ts)
	return MultipleTokens{ts: ts}
}
