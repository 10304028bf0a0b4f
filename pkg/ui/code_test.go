package ui

import (
	"strings"
	"testing"

	"github.com/vanderheijden86/tsguide/pkg/lesson"
)

func TestCodeRendererKeepsSampleText(t *testing.T) {
	c := NewCodeRenderer(60)
	l, _ := lesson.Find(3)

	out := c.Render(l)
	for _, want := range []string{"identity", "return arg;"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in rendered sample:\n%s", want, out)
		}
	}
	if strings.HasPrefix(out, "\n") || strings.HasSuffix(out, "\n") {
		t.Error("rendered sample should have no blank edges")
	}
}

func TestCodeRendererCachesPerWidth(t *testing.T) {
	c := NewCodeRenderer(60)
	l, _ := lesson.Find(1)
	c.Render(l)
	if _, ok := c.cache[l.ID]; !ok {
		t.Fatal("expected cached render")
	}

	c.SetWidth(60)
	if _, ok := c.cache[l.ID]; !ok {
		t.Error("same width must keep the cache")
	}
	c.SetWidth(70)
	if _, ok := c.cache[l.ID]; ok {
		t.Error("new width must clear the cache")
	}
}

func TestCodeRendererMinimumWidth(t *testing.T) {
	c := NewCodeRenderer(5)
	if c.Width() != 20 {
		t.Errorf("expected width floor 20, got %d", c.Width())
	}
}

func TestTrimRendered(t *testing.T) {
	in := "   \n\n  let a = 1;   \n  let b = 2;\n   \n"
	if got := trimRendered(in); got != "  let a = 1;\n  let b = 2;" {
		t.Errorf("unexpected trim %q", got)
	}
}
