package roundtrip

import "time"

// Stage is the step a file is currently in.
type Stage string

const (
	StageQueued  Stage = "queued"
	StageParse   Stage = "parse"
	StageRender  Stage = "render"
	StageReparse Stage = "reparse"
	StageDone    Stage = "done"
)

// Event reports progress for one file. Verdict is set only with StageDone.
type Event struct {
	File    string
	Stage   Stage
	Verdict Status
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Runner calls it from worker goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}
