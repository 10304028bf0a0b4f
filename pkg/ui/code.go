package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/vanderheijden86/tsguide/pkg/debug"
	"github.com/vanderheijden86/tsguide/pkg/lesson"
)

// CodeRenderer highlights lesson code samples by rendering them as fenced
// markdown through Glamour. Output is cached per lesson for the current
// width.
type CodeRenderer struct {
	width    int
	renderer *glamour.TermRenderer
	cache    map[int]string
}

// NewCodeRenderer creates a renderer that wraps at width cells.
func NewCodeRenderer(width int) *CodeRenderer {
	c := &CodeRenderer{cache: make(map[int]string)}
	c.SetWidth(width)
	return c
}

// SetWidth rebuilds the underlying renderer when the width changes.
func (c *CodeRenderer) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	if width == c.width && c.renderer != nil {
		return
	}
	c.width = width
	c.cache = make(map[int]string)

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		debug.Log("code: glamour renderer unavailable: %v", err)
		c.renderer = nil
		return
	}
	c.renderer = r
}

// Width returns the wrap width.
func (c *CodeRenderer) Width() int { return c.width }

// Render returns the highlighted sample, falling back to the raw text if
// Glamour fails.
func (c *CodeRenderer) Render(l lesson.Lesson) string {
	out, ok := c.cache[l.ID]
	debug.LogIf(ok, "code: cache hit for lesson %d", l.ID)
	if ok {
		return out
	}

	out = l.Code
	if c.renderer != nil {
		md := fmt.Sprintf("```%s\n%s\n```\n", l.Lang, l.Code)
		start := time.Now()
		rendered, err := c.renderer.Render(md)
		debug.LogTiming(fmt.Sprintf("glamour lesson %d", l.ID), time.Since(start))
		if err != nil {
			debug.Log("code: rendering lesson %d: %v", l.ID, err)
		} else {
			out = trimRendered(rendered)
		}
	}

	c.cache[l.ID] = out
	return out
}

// Lines returns the rendered sample split for scrolling.
func (c *CodeRenderer) Lines(l lesson.Lesson) []string {
	return compressBlankLines(strings.Split(c.Render(l), "\n"))
}

// trimRendered drops Glamour's blank margin lines and the trailing padding
// it adds to every line.
func trimRendered(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
