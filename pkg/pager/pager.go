// Package pager implements the lesson carousel: a single cursor over a fixed
// lesson collection that wraps around in both directions.
package pager

import (
	"errors"

	"github.com/vanderheijden86/tsguide/pkg/debug"
	"github.com/vanderheijden86/tsguide/pkg/lesson"
)

// ErrNoLessons is returned when a pager is built over an empty collection.
var ErrNoLessons = errors.New("pager: no lessons")

// Pager tracks the current lesson. The cursor always satisfies
// 0 <= cursor < Len().
type Pager struct {
	lessons []lesson.Lesson
	cursor  int
}

// New returns a pager positioned on the first lesson.
func New(lessons []lesson.Lesson) (*Pager, error) {
	if len(lessons) == 0 {
		return nil, ErrNoLessons
	}
	return &Pager{lessons: lessons}, nil
}

// Default returns a pager over the built-in lessons.
func Default() *Pager {
	p, _ := New(lesson.Lessons())
	return p
}

// Advance moves to the next lesson, wrapping from the last to the first.
func (p *Pager) Advance() {
	if p.cursor >= len(p.lessons)-1 {
		p.cursor = 0
	} else {
		p.cursor++
	}
	debug.Log("pager: advance -> %d", p.cursor)
}

// Retreat moves to the previous lesson, wrapping from the first to the last.
func (p *Pager) Retreat() {
	if p.cursor <= 0 {
		p.cursor = len(p.lessons) - 1
	} else {
		p.cursor--
	}
	debug.Log("pager: retreat -> %d", p.cursor)
}

// JumpTo moves to index i. Out-of-range values wrap modulo Len.
func (p *Pager) JumpTo(i int) {
	n := len(p.lessons)
	p.cursor = ((i % n) + n) % n
	debug.Log("pager: jump -> %d", p.cursor)
}

// Index returns the cursor.
func (p *Pager) Index() int { return p.cursor }

// Len returns the number of lessons.
func (p *Pager) Len() int { return len(p.lessons) }

// Current returns the lesson under the cursor.
func (p *Pager) Current() lesson.Lesson {
	return p.lessons[p.cursor]
}

// Lessons returns the underlying collection.
func (p *Pager) Lessons() []lesson.Lesson { return p.lessons }

// Difficulty returns the badge for the current lesson.
func (p *Pager) Difficulty() lesson.Difficulty {
	return lesson.DifficultyFor(p.cursor)
}

// ProgressFraction returns (cursor+1)/Len, which is always in (0, 1].
func (p *Pager) ProgressFraction() float64 {
	return float64(p.cursor+1) / float64(len(p.lessons))
}
