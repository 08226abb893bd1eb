// Package token defines lexical token kinds, delimiters and trivia.
// Invariants:
//   - Token.Text is the exact source spelling of the token; non-ASCII
//     identifiers are NFC-normalised.
//   - Token.Span matches Text exactly (Start..End), except for tokens the
//     parser synthesises by splitting a compound operator.
//   - Lifetimes ('a, 'static) are single tokens of kind Lifetime; the
//     quote character is part of Text.
//   - Sugared doc comments (///, //!, /** */, /*! */) are significant
//     tokens of kind DocComment; ordinary comments are Leading trivia.
//   - Primitive type names (u8, i32, str, ...) are identifiers.
package token
