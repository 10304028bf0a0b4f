package profile

import "fmt"

// Functional is the closure-and-hook style example. Its record is replaced
// wholesale on mount.
type Functional struct {
	base
}

// NewFunctional returns the function-style example for area.
func NewFunctional(area string) *Functional {
	return &Functional{base: newBase(area, functionalInitial())}
}

func functionalInitial() Profile {
	return Profile{
		Name:     "Johnny",
		Email:    "john@test.com",
		Age:      23,
		LoggedIn: true,
		Hobby:    &Hobby{ID: 2, Title: "fishing"},
		Meta:     map[string]any{"favoriteFood": "pizza"},
	}
}

func functionalFetched() Profile {
	return Profile{
		Name:     "kano",
		Email:    "kano@yahoo.com",
		Age:      12,
		LoggedIn: false,
		Hobby:    &Hobby{ID: 4, Title: "logging"},
		Meta:     map[string]any{"favoriteFood": "Pasta"},
	}
}

func (f *Functional) Title() string { return "Function Component" }

func (f *Functional) Mount() bool {
	return f.once("functional", func() {
		f.current = functionalFetched()
	})
}

func (f *Functional) Lines() []string {
	return []string{
		"Testing User Component",
		fmt.Sprintf("User Name: %s", f.current.Name),
		fmt.Sprintf("User Email: %s", f.current.Email),
		fmt.Sprintf("User Area: %s", f.area),
		fmt.Sprintf("User Favorite Food: %s", f.current.MetaString("favoriteFood")),
	}
}
