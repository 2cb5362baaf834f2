package ui

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joeyjackson/fourier-series-drawer/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(rand.New(rand.NewSource(1)))
}

func TestPickerSignalSelectionReturnsMessage(t *testing.T) {
	restore := chdirTemp(t, map[string]string{})
	defer restore()

	p := NewPicker(testCatalog())

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected selection command")
	}

	msg := cmd()
	selected, ok := msg.(PickedMsg)
	if !ok {
		t.Fatalf("expected PickedMsg, got %T", msg)
	}
	if selected.Name != "circle" || selected.Path != "" {
		t.Fatalf("expected circle, got %+v", selected)
	}
}

func TestPickerPathSelectionReturnsMessage(t *testing.T) {
	restore := chdirTemp(t, map[string]string{})
	defer restore()

	p := NewPicker(testCatalog())
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !p.pathMode {
		t.Fatal("expected open item to switch to path input")
	}
	p.input.SetValue("drawings/cat.json")

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected path selection command")
	}
	selected, ok := cmd().(PickedMsg)
	if !ok {
		t.Fatalf("expected PickedMsg, got %T", cmd())
	}
	if selected.Path != "drawings/cat.json" {
		t.Fatalf("expected typed path, got %q", selected.Path)
	}
}

func TestPickerEscLeavesPathInput(t *testing.T) {
	restore := chdirTemp(t, map[string]string{})
	defer restore()

	p := NewPicker(testCatalog())
	p.pathMode = true
	p.input.SetValue("x.json")

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Fatal("expected esc in path input to stay inside the picker")
	}
	if p.pathMode || p.input.Value() != "" {
		t.Fatal("expected path input to reset")
	}
}

func TestPickerCancelReturnsMessage(t *testing.T) {
	restore := chdirTemp(t, map[string]string{})
	defer restore()

	p := NewPicker(testCatalog())

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected cancel command")
	}
	if _, ok := cmd().(PickCancelledMsg); !ok {
		t.Fatalf("expected PickCancelledMsg, got %T", cmd())
	}
}

func TestPickerListsLoadableFiles(t *testing.T) {
	restore := chdirTemp(t, map[string]string{
		"loop.wav":  "data",
		"cat.json":  "[]",
		"set.m3u":   "",
		"notes.txt": "skip",
		"track.mp3": "skip",
	})
	defer restore()

	p := NewPicker(testCatalog())

	found := map[string]bool{}
	for _, item := range p.list.Items() {
		if file, ok := item.(fileItem); ok {
			found[file.name+file.ext] = true
		}
	}
	for _, name := range []string{"loop.wav", "cat.json", "set.m3u"} {
		if !found[name] {
			t.Fatalf("expected picker to include %s", name)
		}
	}
	for _, name := range []string{"notes.txt", "track.mp3"} {
		if found[name] {
			t.Fatalf("expected picker to skip %s", name)
		}
	}
}

func TestPickerFileSelectionReturnsPath(t *testing.T) {
	restore := chdirTemp(t, map[string]string{
		"loop.wav": "data",
	})
	defer restore()

	c := testCatalog()
	p := NewPicker(c)
	// open item, then every catalog signal, then the file.
	for range c.Len() + 1 {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected selection command")
	}
	selected, ok := cmd().(PickedMsg)
	if !ok {
		t.Fatalf("expected PickedMsg, got %T", cmd())
	}
	if selected.Path != "loop.wav" {
		t.Fatalf("expected loop.wav, got %+v", selected)
	}
}

func chdirTemp(t *testing.T, files map[string]string) func() {
	t.Helper()

	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}

	dir := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir temp dir: %v", err)
	}

	return func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	}
}
