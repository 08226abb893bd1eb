package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Lifetime represents a lifetime token such as 'a.
	Lifetime
	// DocComment represents a sugared documentation comment.
	DocComment

	// LitStr is a string literal, cooked ("..") or raw (r#".."#).
	LitStr
	// LitByteStr is a byte string literal (b"..", br"..").
	LitByteStr
	// LitChar is a character literal ('x').
	LitChar
	// LitByte is a byte literal (b'x').
	LitByte
	// LitInt is an integer literal, possibly suffixed (10u8).
	LitInt
	// LitFloat is a floating point literal, possibly suffixed (1.5f32).
	LitFloat

	kwStart
	KwAs       // as
	KwBox      // box
	KwBreak    // break
	KwConst    // const
	KwContinue // continue
	KwCrate    // crate
	KwElse     // else
	KwEnum     // enum
	KwExtern   // extern
	KwFalse    // false
	KwFn       // fn
	KwFor      // for
	KwIf       // if
	KwImpl     // impl
	KwIn       // in
	KwLet      // let
	KwLoop     // loop
	KwMatch    // match
	KwMod      // mod
	KwMove     // move
	KwMut      // mut
	KwPub      // pub
	KwRef      // ref
	KwReturn   // return
	KwSelf     // self
	KwSelfType // Self
	KwStatic   // static
	KwStruct   // struct
	KwSuper    // super
	KwTrait    // trait
	KwTrue     // true
	KwType     // type
	KwUnsafe   // unsafe
	KwUse      // use
	KwWhere    // where
	KwWhile    // while
	kwEnd

	punctStart
	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	Percent    // %
	Caret      // ^
	Bang       // !
	Amp        // &
	Pipe       // |
	AndAnd     // &&
	OrOr       // ||
	Shl        // <<
	Shr        // >>
	PlusEq     // +=
	MinusEq    // -=
	StarEq     // *=
	SlashEq    // /=
	PercentEq  // %=
	CaretEq    // ^=
	AmpEq      // &=
	PipeEq     // |=
	ShlEq      // <<=
	ShrEq      // >>=
	Eq         // =
	EqEq       // ==
	Ne         // !=
	Lt         // <
	Le         // <=
	Gt         // >
	Ge         // >=
	At         // @
	Underscore // _
	Dot        // .
	DotDot     // ..
	DotDotDot  // ...
	DotDotEq   // ..=
	Comma      // ,
	Semi       // ;
	Colon      // :
	ColonColon // ::
	RArrow     // ->
	FatArrow   // =>
	Pound      // #
	Dollar     // $
	Question   // ?
	LParen     // (
	RParen     // )
	LBracket   // [
	RBracket   // ]
	LBrace     // {
	RBrace     // }
	punctEnd
)

var kindText = [...]string{
	KwAs: "as", KwBox: "box", KwBreak: "break", KwConst: "const", KwContinue: "continue",
	KwCrate: "crate", KwElse: "else", KwEnum: "enum", KwExtern: "extern", KwFalse: "false",
	KwFn: "fn", KwFor: "for", KwIf: "if", KwImpl: "impl", KwIn: "in", KwLet: "let",
	KwLoop: "loop", KwMatch: "match", KwMod: "mod", KwMove: "move", KwMut: "mut",
	KwPub: "pub", KwRef: "ref", KwReturn: "return", KwSelf: "self", KwSelfType: "Self",
	KwStatic: "static", KwStruct: "struct", KwSuper: "super", KwTrait: "trait",
	KwTrue: "true", KwType: "type", KwUnsafe: "unsafe", KwUse: "use", KwWhere: "where",
	KwWhile: "while",

	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%", Caret: "^", Bang: "!",
	Amp: "&", Pipe: "|", AndAnd: "&&", OrOr: "||", Shl: "<<", Shr: ">>",
	PlusEq: "+=", MinusEq: "-=", StarEq: "*=", SlashEq: "/=", PercentEq: "%=",
	CaretEq: "^=", AmpEq: "&=", PipeEq: "|=", ShlEq: "<<=", ShrEq: ">>=",
	Eq: "=", EqEq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	At: "@", Underscore: "_", Dot: ".", DotDot: "..", DotDotDot: "...", DotDotEq: "..=",
	Comma: ",", Semi: ";", Colon: ":", ColonColon: "::", RArrow: "->", FatArrow: "=>",
	Pound: "#", Dollar: "$", Question: "?",
	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]", LBrace: "{", RBrace: "}",
	punctEnd: "",
}

var kindName = map[Kind]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	Lifetime:   "Lifetime",
	DocComment: "DocComment",
	LitStr:     "LitStr",
	LitByteStr: "LitByteStr",
	LitChar:    "LitChar",
	LitByte:    "LitByte",
	LitInt:     "LitInt",
	LitFloat:   "LitFloat",
}

// Text returns the fixed spelling of keyword and punctuation kinds and ""
// for kinds whose text varies (identifiers, literals, lifetimes).
func (k Kind) Text() string {
	if int(k) < len(kindText) {
		return kindText[k]
	}
	return ""
}

func (k Kind) String() string {
	if name, ok := kindName[k]; ok {
		return name
	}
	if t := k.Text(); t != "" {
		if k.IsKeyword() {
			return "Kw(" + t + ")"
		}
		return "'" + t + "'"
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k > kwStart && k < kwEnd }

// IsPunct reports whether k is an operator, punctuation or delimiter.
func (k Kind) IsPunct() bool { return k > punctStart && k < punctEnd }

// IsLiteral reports whether k is a literal kind. Boolean literals are
// keywords and are not included.
func (k Kind) IsLiteral() bool { return k >= LitStr && k <= LitFloat }
