// Package diag defines the diagnostic model shared by the lexer, the parser
// and the round-trip verifier.
//
// Producers emit through a Reporter; BagReporter collects into a Bag, which
// supports limits, sorting and deduplication. Rendering lives in
// internal/diagfmt. Codes are grouped by phase:
//
//   - LEX1000..  lexical errors
//   - SYN2000..  syntax errors; SYN2300.. are constructs outside the
//     supported grammar (see Code.IsUnsupported)
//   - IO4000..   file system errors
//   - RTP5000..  round-trip verification verdicts
package diag
