package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) inside one file.
// The zero Span is the canonical "no position" value.
type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// NoSpan is the canonical empty position used by normalisation passes.
var NoSpan = Span{}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) IsZero() bool {
	return s == NoSpan
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
// Spans from different files are not merged; a zero span is absorbed.
func (s Span) Cover(other Span) Span {
	if s.IsZero() {
		return other
	}
	if other.IsZero() || s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// ZeroideToEnd returns an empty span positioned at the end of s.
func (s Span) ZeroideToEnd() Span {
	return Span{File: s.File, Start: s.End, End: s.End}
}

// Head returns the first n bytes of s (clamped).
func (s Span) Head(n uint32) Span {
	if n > s.Len() {
		n = s.Len()
	}
	return Span{File: s.File, Start: s.Start, End: s.Start + n}
}

// Tail returns s without its first n bytes (clamped).
func (s Span) Tail(n uint32) Span {
	if n > s.Len() {
		n = s.Len()
	}
	return Span{File: s.File, Start: s.Start + n, End: s.End}
}
