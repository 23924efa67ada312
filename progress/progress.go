package progress

import (
	"sync"

	"github.com/skillsenselab/eafgen/logger"
)

// Sink receives progress updates from a long-running operation.
// Implementations must tolerate Advance/Done without a prior Start.
// A Sink shared by multiple goroutines must be safe for concurrent use;
// callers that want per-operation phase tracking should give each
// operation its own Sink instead of sharing one.
type Sink interface {
	// Start announces a new phase with a total number of steps.
	Start(total int, desc string)
	// Advance reports n completed steps.
	Advance(n int)
	// Done marks the current phase as finished.
	Done()
}

// Noop is a Sink that discards all updates.
type Noop struct{}

func (Noop) Start(total int, desc string) {}
func (Noop) Advance(n int)                {}
func (Noop) Done()                        {}

// OrNoop returns s, or a Noop sink when s is nil.
func OrNoop(s Sink) Sink {
	if s == nil {
		return Noop{}
	}
	return s
}

// LogSink reports progress phases through the structured logger at debug
// level. Per-step updates are counted but only summarized on Done, so
// large inputs do not flood the log. Safe for concurrent use, though
// interleaved Start calls from different goroutines fold into one shared
// phase; use one LogSink per operation for distinct phases.
type LogSink struct {
	log *logger.Logger

	mu    sync.Mutex
	desc  string
	total int
	done  int
}

// NewLogSink creates a LogSink writing to the given logger.
func NewLogSink(log *logger.Logger) *LogSink {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &LogSink{log: log.WithComponent("progress")}
}

func (s *LogSink) Start(total int, desc string) {
	s.mu.Lock()
	s.desc = desc
	s.total = total
	s.done = 0
	s.mu.Unlock()
	s.log.Debug("phase started", logger.Fields(
		logger.FieldOperation, desc,
		"total", total,
	))
}

func (s *LogSink) Advance(n int) {
	s.mu.Lock()
	s.done += n
	s.mu.Unlock()
}

func (s *LogSink) Done() {
	s.mu.Lock()
	desc, done, total := s.desc, s.done, s.total
	s.mu.Unlock()
	s.log.Debug("phase finished", logger.Fields(
		logger.FieldOperation, desc,
		"completed", done,
		"total", total,
	))
}
