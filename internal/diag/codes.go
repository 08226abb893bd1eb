package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005
	LexUnterminatedChar         Code = 1006
	LexBadEscape                Code = 1007
	LexBadRawString             Code = 1008

	// Парсерные
	SynInfo                Code = 2000
	SynUnexpectedToken     Code = 2001
	SynUnclosedDelimiter   Code = 2002
	SynUnbalancedDelimiter Code = 2003
	SynExpectSemicolon     Code = 2004
	SynExpectIdentifier    Code = 2005
	SynExpectType          Code = 2006
	SynExpectLifetime      Code = 2007
	SynExpectColon         Code = 2008
	SynExpectItem          Code = 2009
	SynExpectLiteral       Code = 2010
	SynExpectPath          Code = 2011
	SynExpectGt            Code = 2012
	SynExpectBound         Code = 2013
	SynExpectBody          Code = 2014
	SynTrailingInput       Code = 2015
	SynLifetimeAfterType   Code = 2016
	SynMisplacedInnerAttr  Code = 2017
	SynBadVisibility       Code = 2018
	SynBadAbi              Code = 2019

	// Конструкции вне поддерживаемой грамматики
	SynUnsupportedInfo         Code = 2300
	SynUnsupportedDyn          Code = 2301
	SynUnsupportedAsync        Code = 2302
	SynUnsupportedUnion        Code = 2303
	SynUnsupportedConstGeneric Code = 2304
	SynUnsupportedItem         Code = 2305

	// Ошибки I/O
	IOLoadFileError Code = 4001
	IOReadDirError  Code = 4002

	// Round-trip verification
	RtInfo          Code = 5000
	RtParseFailed   Code = 5001
	RtReparseFailed Code = 5002
	RtMismatch      Code = 5003
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number",
	LexTokenTooLong:             "Token too long",
	LexUnterminatedChar:         "Unterminated character literal",
	LexBadEscape:                "Invalid escape sequence",
	LexBadRawString:             "Malformed raw string",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedDelimiter:        "Unclosed delimiter",
	SynUnbalancedDelimiter:      "Unbalanced closing delimiter",
	SynExpectSemicolon:          "Expect semicolon",
	SynExpectIdentifier:         "Expect identifier",
	SynExpectType:               "Expect type",
	SynExpectLifetime:           "Expect lifetime",
	SynExpectColon:              "Expect colon",
	SynExpectItem:               "Expect item",
	SynExpectLiteral:            "Expect literal",
	SynExpectPath:               "Expect path",
	SynExpectGt:                 "Expect '>'",
	SynExpectBound:              "Expect bound",
	SynExpectBody:               "Expect body",
	SynTrailingInput:            "Unexpected trailing input",
	SynLifetimeAfterType:        "Lifetime parameters must be declared before type parameters",
	SynMisplacedInnerAttr:       "Inner attribute is not permitted here",
	SynBadVisibility:            "Malformed visibility qualifier",
	SynBadAbi:                   "Malformed ABI string",
	SynUnsupportedInfo:          "Unsupported construct",
	SynUnsupportedDyn:           "'dyn' trait objects are not supported",
	SynUnsupportedAsync:         "'async' is not supported",
	SynUnsupportedUnion:         "union items are not supported",
	SynUnsupportedConstGeneric:  "const generic parameters are not supported",
	SynUnsupportedItem:          "item form is not supported",
	IOLoadFileError:             "I/O load file error",
	IOReadDirError:              "I/O read directory error",
	RtInfo:                      "Round-trip information",
	RtParseFailed:               "Round-trip: source does not parse",
	RtReparseFailed:             "Round-trip: rendered output does not reparse",
	RtMismatch:                  "Round-trip: trees differ after re-parse",
}

// IsUnsupported reports whether c belongs to the unsupported-construct range.
func (c Code) IsUnsupported() bool {
	return c >= SynUnsupportedInfo && c < SynUnsupportedInfo+100
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("RTP%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
