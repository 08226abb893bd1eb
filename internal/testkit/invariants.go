package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"rsyn/internal/ast"
	"rsyn/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed crate:
// 1) every item span is non-empty, points at sf and lies within its content
// 2) item spans follow source order and do not overlap
// 3) outer attributes and the item name lie inside the item span
func CheckSpanInvariants(crate *ast.Crate, sf *source.File) error {
	if crate == nil || sf == nil {
		return fmt.Errorf("nil crate or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, item := range crate.Items {
		sp := item.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("item %d: empty span %v", i, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("item %d: span points to different file id: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("item %d: span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("item %d: span %v overlaps previous item ending at %d", i, sp, prevEnd)
		}
		prevEnd = sp.End

		for j, attr := range item.Attrs {
			if attr.Style == ast.AttrOuter && !contains(sp, attr.Span) {
				return fmt.Errorf("item %d: attribute %d span %v outside item %v", i, j, attr.Span, sp)
			}
		}
		if !item.Ident.Span.IsZero() && !contains(sp, item.Ident.Span) {
			return fmt.Errorf("item %d: name %q span %v outside item %v", i, item.Ident.Name, item.Ident.Span, sp)
		}
	}
	return nil
}

func contains(outer, inner source.Span) bool {
	return inner.File == outer.File && inner.Start >= outer.Start && inner.End <= outer.End
}
