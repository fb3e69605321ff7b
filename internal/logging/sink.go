// Package logging provides the file log sink shared by every pipeline
// component. The sink is constructed once and passed down explicitly; there
// is no package-level logger.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const timeLayout = "2006-01-02 15:04:05.000000"

// Sink is a slog.Handler appending one "<timestamp>: <message> k=v ..."
// line per record. A single mutex serializes writes, so records from
// concurrent tasks never interleave mid-line.
type Sink struct {
	mu    *sync.Mutex
	file  *os.File
	attrs []slog.Attr
}

// NewSink creates the log file (and its directory, if absent) and opens it
// for appending. Call Close when done.
func NewSink(path string) (*Sink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Sink{mu: &sync.Mutex{}, file: f}, nil
}

func (s *Sink) Close() error { return s.file.Close() }

func (s *Sink) Enabled(context.Context, slog.Level) bool { return true }

func (s *Sink) Handle(_ context.Context, rec slog.Record) error {
	var b strings.Builder
	b.WriteString(rec.Time.Format(timeLayout))
	b.WriteString(": ")
	b.WriteString(rec.Message)

	for _, attr := range s.attrs {
		writeAttr(&b, attr)
	}
	rec.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, attr)
		return true
	})
	b.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.file.WriteString(b.String())
	return err
}

func (s *Sink) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *s
	clone.attrs = append(s.attrs[:len(s.attrs):len(s.attrs)], attrs...)
	return &clone
}

// WithGroup is a no-op: the sink's line format is flat.
func (s *Sink) WithGroup(string) slog.Handler { return s }

func writeAttr(b *strings.Builder, attr slog.Attr) {
	b.WriteByte(' ')
	b.WriteString(attr.Key)
	b.WriteByte('=')
	b.WriteString(attr.Value.String())
}
