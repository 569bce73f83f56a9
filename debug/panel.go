// Package debug is the textual debug surface fed by the collision engine:
// a stat panel and a bounded event log.
package debug

import (
	"fmt"
	"io"
)

// Panel stores stats in first insertion order and renders them with the log
type Panel struct {
	keys    []string
	stats   map[string]string
	log     *Log
	visible bool
}

// NewPanel creates a visible panel rendering log, which may be nil
func NewPanel(log *Log) *Panel {
	return &Panel{
		stats:   make(map[string]string),
		log:     log,
		visible: true,
	}
}

// SetStat inserts or overwrites a stat. Its signature matches impact.StatSink.
func (p *Panel) SetStat(key, value string) {
	if _, ok := p.stats[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.stats[key] = value
}

func (p *Panel) Stat(key string) (string, bool) {
	value, ok := p.stats[key]

	return value, ok
}

func (p *Panel) Toggle() {
	p.visible = !p.visible
}

func (p *Panel) Visible() bool {
	return p.visible
}

// Render writes the overlay: the header, one "key: value" line per stat,
// then the log lines under "Logs:" if there are any. Hidden panels write nothing.
func (p *Panel) Render(w io.Writer) error {
	if !p.visible {
		return nil
	}

	if _, err := fmt.Fprintln(w, "Debug"); err != nil {
		return err
	}

	for _, key := range p.keys {
		if _, err := fmt.Fprintf(w, "%s: %s\n", key, p.stats[key]); err != nil {
			return err
		}
	}

	if p.log == nil || p.log.Len() == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, "Logs:"); err != nil {
		return err
	}
	for _, line := range p.log.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
