package profile

import "fmt"

// Classic is the method-override style example. Mount applies two partial
// updates in order: the user fields first, then the meta mapping. Each
// update replaces only the parts it names.
type Classic struct {
	base
}

// NewClassic returns the class-style example for area.
func NewClassic(area string) *Classic {
	return &Classic{base: newBase(area, classicInitial())}
}

func classicInitial() Profile {
	return Profile{
		Name:     "diana",
		Age:      32,
		LoggedIn: true,
		Meta:     map[string]any{"role": "editor", "subscribed": true},
	}
}

func (c *Classic) Title() string { return "Class Component" }

func (c *Classic) Mount() bool {
	return c.once("classic", func() {
		c.setUser("sonya blade", "sonya@gmail.com", 72, true)
		c.setMeta(map[string]any{"role": "admin", "subscribed": false})
	})
}

// setUser spreads the previous record and swaps the user fields.
func (c *Classic) setUser(name, email string, age int, loggedIn bool) {
	next := c.current.Clone()
	next.Name = name
	next.Email = email
	next.Age = age
	next.LoggedIn = loggedIn
	c.current = next
}

// setMeta swaps the meta mapping and keeps the user fields.
func (c *Classic) setMeta(meta map[string]any) {
	next := c.current.Clone()
	next.Meta = meta
	c.current = next
}

func (c *Classic) Lines() []string {
	return []string{
		"Hello World",
		fmt.Sprintf("Name: %s", c.current.Name),
		fmt.Sprintf("Email: %s", c.current.Email),
		"Meta Info",
		fmt.Sprintf("Role: %s", c.current.MetaString("role")),
	}
}
