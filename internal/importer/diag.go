package importer

import (
	"log/slog"
	"sync"
)

// Sink receives import diagnostics. Row numbers are 1-based over the data
// rows of the source (the header is row 0). Info messages are run-level
// and carry row 0.
type Sink interface {
	Info(msg string)
	Warn(row int, msg string)
	Error(row int, msg string)
}

// LogSink adapts a slog.Logger to the Sink interface.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink wraps a structured logger.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Info(msg string) {
	s.log.Info(msg)
}

func (s *LogSink) Warn(row int, msg string) {
	s.log.Warn(msg, "row", row)
}

func (s *LogSink) Error(row int, msg string) {
	s.log.Error(msg, "row", row)
}

// DiagLevel classifies a captured diagnostic.
type DiagLevel int

const (
	LevelInfo DiagLevel = iota
	LevelWarn
	LevelError
)

// Diag is one captured diagnostic entry.
type Diag struct {
	Level DiagLevel
	Row   int
	Msg   string
}

// MemorySink captures diagnostics in memory for inspection in tests.
type MemorySink struct {
	mu      sync.Mutex
	Entries []Diag
}

func (s *MemorySink) Info(msg string) {
	s.append(Diag{Level: LevelInfo, Msg: msg})
}

func (s *MemorySink) Warn(row int, msg string) {
	s.append(Diag{Level: LevelWarn, Row: row, Msg: msg})
}

func (s *MemorySink) Error(row int, msg string) {
	s.append(Diag{Level: LevelError, Row: row, Msg: msg})
}

func (s *MemorySink) append(d Diag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Entries = append(s.Entries, d)
}
