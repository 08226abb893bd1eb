package token

// Delim identifies a bracket pair.
type Delim uint8

const (
	DelimParen   Delim = iota // ( )
	DelimBracket              // [ ]
	DelimBrace                // { }
)

// Open returns the opening kind of d.
func (d Delim) Open() Kind {
	switch d {
	case DelimParen:
		return LParen
	case DelimBracket:
		return LBracket
	default:
		return LBrace
	}
}

// Close returns the closing kind of d.
func (d Delim) Close() Kind {
	switch d {
	case DelimParen:
		return RParen
	case DelimBracket:
		return RBracket
	default:
		return RBrace
	}
}

func (d Delim) String() string {
	return d.Open().Text() + d.Close().Text()
}

// OpenDelim reports whether k opens a delimited group.
func OpenDelim(k Kind) (Delim, bool) {
	switch k {
	case LParen:
		return DelimParen, true
	case LBracket:
		return DelimBracket, true
	case LBrace:
		return DelimBrace, true
	}
	return 0, false
}

// CloseDelim reports whether k closes a delimited group.
func CloseDelim(k Kind) (Delim, bool) {
	switch k {
	case RParen:
		return DelimParen, true
	case RBracket:
		return DelimBracket, true
	case RBrace:
		return DelimBrace, true
	}
	return 0, false
}
