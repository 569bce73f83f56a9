package debug

import "slices"

// DefaultMaxLines is the capacity of a Log created by NewLog
const DefaultMaxLines = 10

// Log keeps the most recent lines, oldest first
type Log struct {
	MaxLines int
	lines    []string
}

func NewLog(maxLines int) *Log {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}

	return &Log{MaxLines: maxLines}
}

// Log appends a line and drops the oldest ones past MaxLines
func (l *Log) Log(message string) {
	l.lines = append(l.lines, message)

	if excess := len(l.lines) - max(l.MaxLines, 0); excess > 0 {
		l.lines = slices.Delete(l.lines, 0, excess)
	}
}

func (l *Log) Lines() []string {
	return slices.Clone(l.lines)
}

func (l *Log) Len() int {
	return len(l.lines)
}

func (l *Log) Clear() {
	l.lines = l.lines[:0]
}
