package providers

import (
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/redexp/familychart/i18n"
	"github.com/redexp/familychart/state"
	. "github.com/redexp/familychart/types"
	. "github.com/redexp/familychart/utils"
	"github.com/spf13/pflag"
)

func writeChart(t *testing.T, path string, persons int) {
	t.Helper()

	tree := state.NewFamilyTree()

	for i := range persons {
		tree.AddPerson(Pos{X: float64(i) * 100})
	}

	data, err := tree.Document().Marshal()

	if err == nil {
		err = os.WriteFile(path, data, 0o644)
	}

	if err != nil {
		t.Fatal(err)
	}
}

func personCount(t *testing.T) (count int) {
	t.Helper()

	_ = session.Read(func(tree *state.FamilyTree) error {
		count = tree.PersonCount()
		return nil
	})

	return
}

func TestSessionReload(t *testing.T) {
	setupSession(t)

	path := filepath.Join(t.TempDir(), "chart.json")
	writeChart(t, path, 1)

	if err := session.Open(ToUri(path)); err != nil {
		t.Fatal(err)
	}

	var lock sync.Mutex
	var notified []string

	session.SetNotify(func(method string, params any) {
		lock.Lock()
		defer lock.Unlock()

		notified = append(notified, method)
	})

	session.reload(path)

	lock.Lock()
	if len(notified) != 0 {
		t.Errorf("reloaded unchanged file: %v", notified)
	}
	lock.Unlock()

	writeChart(t, path, 2)
	session.reload(path)

	lock.Lock()
	if len(notified) != 1 || notified[0] != ChartReloadMethod {
		t.Errorf("notified = %v", notified)
	}
	lock.Unlock()

	if n := personCount(t); n != 2 {
		t.Errorf("persons = %d", n)
	}
}

func TestSessionAutosave(t *testing.T) {
	settings := DefaultSettings()
	settings.Autosave = 10 * time.Millisecond

	s, err := NewSession(settings)

	if err != nil {
		t.Fatal(err)
	}

	session = s
	defer s.Close()

	path := filepath.Join(t.TempDir(), "chart.json")
	writeChart(t, path, 1)

	if err := s.Open(ToUri(path)); err != nil {
		t.Fatal(err)
	}

	_, err = s.Edit(func(tree *state.FamilyTree) (bool, error) {
		tree.AddPerson(Pos{X: 500})
		return true, nil
	})

	if err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		doc, err := readFile(path)

		if err == nil && len(doc.PersonData) == 2 {
			return
		}

		time.Sleep(20 * time.Millisecond)
	}

	t.Error("chart was not autosaved")
}

func TestSessionSaveKeepsIds(t *testing.T) {
	setupSession(t)

	path := filepath.Join(t.TempDir(), "chart.json")
	writeChart(t, path, 3)

	if err := session.Open(ToUri(path)); err != nil {
		t.Fatal(err)
	}

	_, err := session.Edit(func(tree *state.FamilyTree) (bool, error) {
		return tree.DeletePerson(0), nil
	})

	if err != nil {
		t.Fatal(err)
	}

	if err = session.Save(""); err != nil {
		t.Fatal(err)
	}

	_ = session.Read(func(tree *state.FamilyTree) error {
		if ids := tree.PersonIds(); !slices.Equal(ids, []int{1, 2}) {
			t.Errorf("live ids = %v", ids)
		}

		if _, ok := tree.Person(2); !ok {
			t.Error("person 2 was renumbered")
		}

		return nil
	})

	doc, err := readFile(path)

	if err != nil {
		t.Fatal(err)
	}

	if len(doc.PersonData) != 2 || doc.PersonData[0].Id != 0 || doc.PersonData[1].Id != 1 {
		t.Errorf("saved persons = %+v", doc.PersonData)
	}
}

func TestSessionAutosaveKeepsIds(t *testing.T) {
	settings := DefaultSettings()
	settings.Autosave = 10 * time.Millisecond

	s, err := NewSession(settings)

	if err != nil {
		t.Fatal(err)
	}

	session = s
	defer s.Close()

	path := filepath.Join(t.TempDir(), "chart.json")
	writeChart(t, path, 3)

	if err := s.Open(ToUri(path)); err != nil {
		t.Fatal(err)
	}

	_, err = s.Edit(func(tree *state.FamilyTree) (bool, error) {
		return tree.DeletePerson(0), nil
	})

	if err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		doc, err := readFile(path)

		if err == nil && len(doc.PersonData) == 2 {
			break
		}

		time.Sleep(20 * time.Millisecond)
	}

	_ = s.Read(func(tree *state.FamilyTree) error {
		if ids := tree.PersonIds(); !slices.Equal(ids, []int{1, 2}) {
			t.Errorf("live ids after autosave = %v", ids)
		}

		return nil
	})
}

func TestSessionHistoryLimit(t *testing.T) {
	settings := DefaultSettings()
	settings.History = 3
	settings.Autosave = 0

	s, err := NewSession(settings)

	if err != nil {
		t.Fatal(err)
	}

	for range 5 {
		_, _ = s.Edit(func(tree *state.FamilyTree) (bool, error) {
			tree.AddPerson(Pos{})
			return true, nil
		})
	}

	undo := 0

	for s.Undo() {
		undo++
	}

	if undo != 2 {
		t.Errorf("undo steps = %d", undo)
	}
}

func TestParseSettings(t *testing.T) {
	settings := DefaultSettings()

	err := ParseSettings([]byte(`
locale: ja
history: 10
autosave: 500ms
style:
  margin: 30
  nameFont:
    size: 12
`), &settings)

	if err != nil {
		t.Fatal(err)
	}

	if settings.Locale != "ja" || settings.History != 10 || settings.Autosave != 500*time.Millisecond {
		t.Errorf("settings = %+v", settings)
	}

	s, err := NewSession(settings)

	if err != nil {
		t.Fatal(err)
	}

	style := s.Style()

	if style.Margin != 30 || style.NameFont.Size != 12 || style.Offset != 7 {
		t.Errorf("style = %+v", style)
	}

	if err := ParseSettings([]byte("history: [1"), &settings); err == nil {
		t.Error("broken yaml accepted")
	}
}

func TestSetup(t *testing.T) {
	defer i18n.SetLocale("en")

	path := filepath.Join(t.TempDir(), "settings.yaml")
	err := os.WriteFile(path, []byte("locale: uk\nhistory: 5\n"), 0o644)

	if err != nil {
		t.Fatal(err)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	DefineFlags(flags)

	err = flags.Parse([]string{"--settings", path, "--history", "7", "--autosave", "0s"})

	if err != nil {
		t.Fatal(err)
	}

	err = Setup(flags)

	if err != nil {
		t.Fatal(err)
	}

	defer StopServer()

	if i18n.Locale != "uk" {
		t.Errorf("locale = %s", i18n.Locale)
	}

	if session.autosave != nil || session.history.Size() != 7 {
		t.Errorf("session settings not applied")
	}
}
