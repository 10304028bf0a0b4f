// Package profile implements the two example user components shown next to
// the tutorial. Each owns a small profile record that is replaced once,
// shortly after it is first displayed, as if fetched from a service.
package profile

import (
	"fmt"
	"maps"

	"github.com/vanderheijden86/tsguide/pkg/debug"
)

// DefaultArea is used when a component is built without an area.
const DefaultArea = "chicago"

// Hobby is the nested sub-record of the function-style example.
type Hobby struct {
	ID    int
	Title string
}

// Profile is an example user record. Email is optional; an empty string
// means it was never set.
type Profile struct {
	Name     string
	Email    string
	Age      int
	LoggedIn bool
	Hobby    *Hobby
	Meta     map[string]any
}

// Clone returns a deep copy so callers cannot alias component state.
func (p Profile) Clone() Profile {
	out := p
	if p.Hobby != nil {
		h := *p.Hobby
		out.Hobby = &h
	}
	if p.Meta != nil {
		out.Meta = maps.Clone(p.Meta)
	}
	return out
}

// MetaString returns Meta[key] formatted for display, or "" if unset.
func (p Profile) MetaString(key string) string {
	v, ok := p.Meta[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Component is a state-holding example: it renders its record and applies
// a single replacement after first display.
type Component interface {
	// Title names the authoring style being demonstrated.
	Title() string
	// Area is the display-only location prop.
	Area() string
	// Profile returns a copy of the current record.
	Profile() Profile
	// Mounted reports whether the replacement has been applied.
	Mounted() bool
	// Mount applies the replacement. Only the first call has an effect; it
	// returns false for every later call.
	Mount() bool
	// Lines maps the current record to display text.
	Lines() []string
}

// base carries the state shared by both styles.
type base struct {
	area    string
	current Profile
	mounted bool
}

func newBase(area string, initial Profile) base {
	if area == "" {
		area = DefaultArea
	}
	return base{area: area, current: initial}
}

func (b *base) Area() string     { return b.area }
func (b *base) Profile() Profile { return b.current.Clone() }
func (b *base) Mounted() bool    { return b.mounted }

// once runs apply the first time it is called. Later calls are no-ops even
// though the replaced record differs from the initial one.
func (b *base) once(name string, apply func()) bool {
	if b.mounted {
		debug.Log("profile: %s already mounted, skipping refresh", name)
		return false
	}
	apply()
	b.mounted = true
	debug.Log("profile: %s mounted, name=%q", name, b.current.Name)
	return true
}
