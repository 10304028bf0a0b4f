// Package lesson holds the built-in tutorial lessons and the difficulty
// mapping shown next to each one.
package lesson

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Lesson is a single tutorial section. Lessons are never mutated after
// Lessons returns them.
type Lesson struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
	Lang        string `json:"lang"` // Fence language for highlighting
}

// Difficulty is an ordered badge category.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Advanced
)

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// MarshalText lets Difficulty encode as its label in JSON and YAML.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DifficultyFor maps a lesson index to its badge. The boundaries are fixed
// for the six built-in lessons.
func DifficultyFor(index int) Difficulty {
	switch {
	case index < 2:
		return Beginner
	case index < 3:
		return Intermediate
	default:
		return Advanced
	}
}

// Find returns the lesson with the given ID.
func Find(id int) (Lesson, bool) {
	for _, l := range Lessons() {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// catalogEntry is the --dump-lessons shape.
type catalogEntry struct {
	Lesson
	Index      int        `json:"index"`
	Difficulty Difficulty `json:"difficulty"`
}

// MarshalCatalog encodes every lesson with its derived difficulty.
func MarshalCatalog() ([]byte, error) {
	lessons := Lessons()
	entries := make([]catalogEntry, len(lessons))
	for i, l := range lessons {
		entries[i] = catalogEntry{Lesson: l, Index: i, Difficulty: DifficultyFor(i)}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling lessons: %w", err)
	}
	return data, nil
}
