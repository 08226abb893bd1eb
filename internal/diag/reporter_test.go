package diag

import (
	"testing"

	"rsyn/internal/source"
)

func TestDedupReporterForwardsUniqueOnly(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{File: 1, Start: 4, End: 5}

	r.Report(SynUnexpectedToken, SevError, sp, "x", nil, nil)
	r.Report(SynUnexpectedToken, SevError, sp, "x", nil, nil)
	r.Report(SynUnexpectedToken, SevError, sp, "y", nil, nil)
	r.Report(SynUnexpectedToken, SevWarning, sp, "x", nil, nil)

	if bag.Len() != 3 {
		t.Fatalf("expected 3 forwarded diagnostics, got %d", bag.Len())
	}
	var nilReporter *DedupReporter
	nilReporter.Report(SynUnexpectedToken, SevError, sp, "x", nil, nil)
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	sp := source.Span{File: 1, Start: 0, End: 1}
	b := ReportError(BagReporter{Bag: bag}, SynExpectType, sp, "expected type").
		WithNote(source.Span{File: 1, Start: 2, End: 3}, "here")
	b.Emit()
	b.Emit()

	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("expected single diagnostic, got %d", len(items))
	}
	if items[0].Severity != SevError || len(items[0].Notes) != 1 || items[0].Notes[0].Msg != "here" {
		t.Fatalf("unexpected diagnostic: %+v", items[0])
	}

	var nilBuilder *ReportBuilder
	nilBuilder.WithNote(sp, "ignored").Emit()
}
