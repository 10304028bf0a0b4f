package profile

import (
	"strings"
	"testing"
)

func assertLine(t *testing.T, lines []string, want string) {
	t.Helper()
	for _, l := range lines {
		if l == want {
			return
		}
	}
	t.Errorf("expected line %q in:\n%s", want, strings.Join(lines, "\n"))
}

func TestComponentsSatisfyInterface(t *testing.T) {
	var _ Component = NewFunctional("")
	var _ Component = NewClassic("")
}

func TestDefaultArea(t *testing.T) {
	if a := NewFunctional("").Area(); a != DefaultArea {
		t.Errorf("expected %q, got %q", DefaultArea, a)
	}
	if a := NewClassic("boston").Area(); a != "boston" {
		t.Errorf("expected boston, got %q", a)
	}
}

func TestFunctionalInitialDisplay(t *testing.T) {
	f := NewFunctional("")
	if f.Mounted() {
		t.Fatal("new component must not be mounted")
	}
	lines := f.Lines()
	assertLine(t, lines, "Testing User Component")
	assertLine(t, lines, "User Name: Johnny")
	assertLine(t, lines, "User Email: john@test.com")
	assertLine(t, lines, "User Area: chicago")
	assertLine(t, lines, "User Favorite Food: pizza")
}

func TestFunctionalMountReplacesWholeRecord(t *testing.T) {
	f := NewFunctional("")
	if !f.Mount() {
		t.Fatal("first Mount should apply the replacement")
	}

	p := f.Profile()
	if p.Name != "kano" || p.Email != "kano@yahoo.com" || p.Age != 12 || p.LoggedIn {
		t.Errorf("unexpected record after mount: %+v", p)
	}
	if p.Hobby == nil || p.Hobby.ID != 4 || p.Hobby.Title != "logging" {
		t.Errorf("unexpected hobby after mount: %+v", p.Hobby)
	}
	assertLine(t, f.Lines(), "User Name: kano")
	assertLine(t, f.Lines(), "User Favorite Food: Pasta")
}

func TestMountFiresOnce(t *testing.T) {
	for _, c := range []Component{NewFunctional(""), NewClassic("")} {
		t.Run(c.Title(), func(t *testing.T) {
			if !c.Mount() {
				t.Fatal("first Mount returned false")
			}
			after := c.Profile()
			for i := 0; i < 3; i++ {
				if c.Mount() {
					t.Fatalf("Mount call %d re-applied the replacement", i+2)
				}
			}
			if c.Profile().Name != after.Name {
				t.Errorf("record changed on repeated Mount")
			}
			if !c.Mounted() {
				t.Error("expected Mounted after Mount")
			}
		})
	}
}

func TestClassicInitialDisplay(t *testing.T) {
	c := NewClassic("")
	lines := c.Lines()
	assertLine(t, lines, "Hello World")
	assertLine(t, lines, "Name: diana")
	assertLine(t, lines, "Email: ")
	assertLine(t, lines, "Meta Info")
	assertLine(t, lines, "Role: editor")
}

func TestClassicMountMergesUserAndMeta(t *testing.T) {
	c := NewClassic("")
	c.Mount()

	p := c.Profile()
	if p.Name != "sonya blade" || p.Email != "sonya@gmail.com" || p.Age != 72 || !p.LoggedIn {
		t.Errorf("user fields not replaced: %+v", p)
	}
	if p.MetaString("role") != "admin" || p.MetaString("subscribed") != "false" {
		t.Errorf("meta not replaced: %+v", p.Meta)
	}
	assertLine(t, c.Lines(), "Name: sonya blade")
	assertLine(t, c.Lines(), "Role: admin")
}

func TestProfileReturnsCopy(t *testing.T) {
	f := NewFunctional("")
	p := f.Profile()
	p.Meta["favoriteFood"] = "sushi"
	p.Hobby.Title = "chess"

	again := f.Profile()
	if again.MetaString("favoriteFood") != "pizza" {
		t.Error("meta aliased component state")
	}
	if again.Hobby.Title != "fishing" {
		t.Error("hobby aliased component state")
	}
}

func TestMetaString(t *testing.T) {
	p := Profile{Meta: map[string]any{"n": 3, "s": "x", "nil": nil}}
	tests := map[string]string{"n": "3", "s": "x", "nil": "", "missing": ""}
	for key, want := range tests {
		if got := p.MetaString(key); got != want {
			t.Errorf("MetaString(%q) = %q, want %q", key, got, want)
		}
	}
	if (Profile{}).MetaString("x") != "" {
		t.Error("nil meta should render empty")
	}
}
