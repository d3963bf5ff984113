package host

import (
	"fmt"
	"io"
	"sync"

	clog "github.com/charmbracelet/log"
)

// MessageSink reports warnings and errors to the user. Calls never block on
// the user.
type MessageSink interface {
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// LogSink writes messages with charmbracelet/log.
type LogSink struct {
	Logger *clog.Logger
}

var _ MessageSink = (*LogSink)(nil)

// NewLogSink returns a sink writing to w without timestamps.
func NewLogSink(w io.Writer) *LogSink {
	return &LogSink{Logger: clog.NewWithOptions(w, clog.Options{
		Prefix: "outliner",
	})}
}

func (s *LogSink) Info(msg string, keyvals ...any)  { s.Logger.Info(msg, keyvals...) }
func (s *LogSink) Warn(msg string, keyvals ...any)  { s.Logger.Warn(msg, keyvals...) }
func (s *LogSink) Error(msg string, keyvals ...any) { s.Logger.Error(msg, keyvals...) }

// Message is one entry collected by a RecordingSink.
type Message struct {
	Level string
	Text  string
}

func (m Message) String() string { return fmt.Sprintf("%s: %s", m.Level, m.Text) }

// RecordingSink keeps every message. Key/value pairs are dropped.
type RecordingSink struct {
	mu       sync.Mutex
	Messages []Message
}

var _ MessageSink = (*RecordingSink)(nil)

func (s *RecordingSink) add(level, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, Message{Level: level, Text: msg})
}

func (s *RecordingSink) Info(msg string, _ ...any)  { s.add("info", msg) }
func (s *RecordingSink) Warn(msg string, _ ...any)  { s.add("warn", msg) }
func (s *RecordingSink) Error(msg string, _ ...any) { s.add("error", msg) }

// Levels returns the level of each message in order.
func (s *RecordingSink) Levels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.Messages))
	for _, m := range s.Messages {
		out = append(out, m.Level)
	}
	return out
}
