package logging

import (
	"strings"
	"sync/atomic"
)

// PaneWriter turns log output into lines for the UI. Writes never block;
// lines that do not fit in the buffer are dropped.
type PaneWriter struct {
	lines   chan string
	dropped atomic.Int64
}

func NewPaneWriter(buffer int) *PaneWriter {
	return &PaneWriter{lines: make(chan string, buffer)}
}

func (w *PaneWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		select {
		case w.lines <- line:
		default:
			w.dropped.Add(1)
		}
	}
	return len(p), nil
}

func (w *PaneWriter) Sync() error { return nil }

func (w *PaneWriter) Lines() <-chan string { return w.lines }

func (w *PaneWriter) Dropped() int64 { return w.dropped.Load() }
