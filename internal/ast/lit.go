package ast

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"rsyn/internal/source"
)

type LitKind uint8

const (
	LitStr LitKind = iota
	LitByteStr
	LitByte
	LitChar
	LitInt
	LitFloat
	LitBool
)

func (k LitKind) String() string {
	switch k {
	case LitStr:
		return "Str"
	case LitByteStr:
		return "ByteStr"
	case LitByte:
		return "Byte"
	case LitChar:
		return "Char"
	case LitInt:
		return "Int"
	case LitFloat:
		return "Float"
	case LitBool:
		return "Bool"
	}
	return "Lit(?)"
}

// Lit is a literal kept in its source spelling: `"a\n"`, `r#"x"#`, `10u8`, `true`.
type Lit struct {
	Kind LitKind
	Text string
	Span source.Span
}

// StrLit builds a cooked string literal holding value.
func StrLit(value string) Lit {
	return Lit{Kind: LitStr, Text: quoteStr(value)}
}

// IntLit builds an integer literal; suffix may be empty.
func IntLit(v uint64, suffix string) Lit {
	return Lit{Kind: LitInt, Text: strconv.FormatUint(v, 10) + suffix}
}

// BoolLit builds `true` or `false`.
func BoolLit(v bool) Lit {
	return Lit{Kind: LitBool, Text: strconv.FormatBool(v)}
}

func quoteStr(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u{%x}`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// StrValue decodes a string or byte string literal, raw forms included.
func (l Lit) StrValue() (string, error) {
	text := l.Text
	if l.Kind != LitStr && l.Kind != LitByteStr {
		return "", fmt.Errorf("literal %s is not a string", l.Text)
	}
	text = strings.TrimPrefix(text, "b")
	if strings.HasPrefix(text, "r") {
		body := strings.TrimLeft(text[1:], "#")
		hashes := len(text) - 1 - len(body)
		if len(body) < 2+hashes {
			return "", fmt.Errorf("malformed raw string %s", l.Text)
		}
		return body[1 : len(body)-1-hashes], nil
	}
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", fmt.Errorf("malformed string %s", l.Text)
	}
	return unescape(text[1 : len(text)-1])
}

// CharValue decodes a char or byte literal.
func (l Lit) CharValue() (rune, error) {
	if l.Kind != LitChar && l.Kind != LitByte {
		return 0, fmt.Errorf("literal %s is not a character", l.Text)
	}
	text := strings.TrimPrefix(l.Text, "b")
	if len(text) < 3 {
		return 0, fmt.Errorf("malformed character %s", l.Text)
	}
	s, err := unescape(text[1 : len(text)-1])
	if err != nil {
		return 0, err
	}
	r, n := utf8.DecodeRuneInString(s)
	if n != len(s) {
		return 0, fmt.Errorf("character literal %s holds more than one character", l.Text)
	}
	return r, nil
}

// IntValue parses an integer literal, ignoring '_' separators and the suffix.
func (l Lit) IntValue() (uint64, error) {
	if l.Kind != LitInt {
		return 0, fmt.Errorf("literal %s is not an integer", l.Text)
	}
	digits, _ := l.splitSuffix()
	digits = strings.ReplaceAll(digits, "_", "")
	base := 10
	if len(digits) > 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 10 {
			digits = digits[2:]
		}
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("integer literal %s: %w", l.Text, err)
	}
	return v, nil
}

// Suffix returns the type suffix of a numeric literal ("u8", "f64") or "".
func (l Lit) Suffix() string {
	if l.Kind != LitInt && l.Kind != LitFloat {
		return ""
	}
	_, suffix := l.splitSuffix()
	return suffix
}

func (l Lit) splitSuffix() (digits, suffix string) {
	text := l.Text
	hex := strings.HasPrefix(text, "0x")
	for i := range len(text) {
		c := text[i]
		if c == 'u' || c == 'i' || (c == 'f' && !hex) {
			return text[:i], text[i:]
		}
	}
	return text, ""
}

func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("trailing backslash")
		}
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '0':
			b.WriteByte(0)
		case '\\', '\'', '"':
			b.WriteByte(s[i])
		case '\n':
			for i+1 < len(s) && strings.IndexByte(" \t\n\r", s[i+1]) >= 0 {
				i++
			}
		case 'x':
			if i+2 >= len(s) {
				return "", fmt.Errorf("short \\x escape")
			}
			v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return "", fmt.Errorf("bad \\x escape: %w", err)
			}
			b.WriteByte(byte(v))
			i += 2
		case 'u':
			end := strings.IndexByte(s[i:], '}')
			if end < 0 || i+1 >= len(s) || s[i+1] != '{' {
				return "", fmt.Errorf("bad \\u escape")
			}
			v, err := strconv.ParseUint(strings.ReplaceAll(s[i+2:i+end], "_", ""), 16, 32)
			if err != nil {
				return "", fmt.Errorf("bad \\u escape: %w", err)
			}
			b.WriteRune(rune(v))
			i += end
		default:
			return "", fmt.Errorf("unknown escape \\%c", s[i])
		}
	}
	return b.String(), nil
}
