package providers

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/redexp/familychart/i18n"
	"github.com/redexp/familychart/layout"
	"github.com/redexp/familychart/state"
	. "github.com/redexp/familychart/types"
	. "github.com/redexp/familychart/utils"
	"github.com/tliron/glsp"
	"go.uber.org/multierr"
)

const ChartReloadMethod = "chart/reload"

type ChartReloadParams struct {
	URI Uri `json:"uri"`
}

// Session owns the chart being edited. Every exported method holds the lock
// for its whole duration.
type Session struct {
	lock sync.Mutex

	tree    *state.FamilyTree
	history *state.History[*state.FamilyTree]
	uri     Uri
	dirty   bool
	written []byte

	style   layout.Style
	labeler *layout.Labeler

	autosave func(func())
	watcher  *fsnotify.Watcher
	notify   glsp.NotifyFunc
}

func NewSession(settings Settings) (s *Session, err error) {
	style := layout.DefaultStyle()

	if settings.Style != nil {
		err = layout.DecodeStyle(settings.Style, &style)

		if err != nil {
			return nil, fmt.Errorf("settings style: %w", err)
		}
	}

	size := max(settings.History, 2)

	s = &Session{
		tree:    state.NewFamilyTree(),
		history: state.NewHistory(size, state.NewFamilyTree, copyTree),
		style:   style,
		labeler: layout.NewLabeler(style, nil),
	}

	if settings.Autosave > 0 {
		s.autosave = debounce.New(settings.Autosave)
	}

	s.history.Reset(s.tree)

	return
}

func copyTree(dst, src *state.FamilyTree) {
	dst.Load(src)
}

// SetNotify sets where chart/reload notifications go.
func (s *Session) SetNotify(notify glsp.NotifyFunc) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.notify = notify
}

// Read runs fn with the current tree. fn must not keep the tree.
func (s *Session) Read(fn func(tree *state.FamilyTree) error) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return fn(s.tree)
}

// Edit runs fn and records a history step when fn reports a change.
func (s *Session) Edit(fn func(tree *state.FamilyTree) (changed bool, err error)) (changed bool, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	changed, err = fn(s.tree)

	if err != nil || !changed {
		return
	}

	s.commit()

	return
}

func (s *Session) commit() {
	s.tree.Resize(s.labeler)
	s.history.Save(s.tree)
	s.dirty = true

	if s.autosave != nil && s.uri != "" {
		s.autosave(s.autosaveNow)
	}
}

func (s *Session) autosaveNow() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.dirty || s.uri == "" {
		return
	}

	err := s.save(s.uri)

	if err != nil {
		log.Errorf("autosave %s: %s", s.uri, err)
	}
}

func (s *Session) Uri() Uri {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.uri
}

func (s *Session) Style() layout.Style {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.style
}

func (s *Session) Labeler() *layout.Labeler {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.labeler
}

func (s *Session) SetStyle(style layout.Style) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.style = style
	s.labeler = layout.NewLabeler(style, s.labeler.Measurer)
	s.tree.Resize(s.labeler)
}

func (s *Session) CanUndo() bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.history.CanUndo()
}

func (s *Session) CanRedo() bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.history.CanRedo()
}

// New replaces the chart with an empty one that has no file yet.
func (s *Session) New(title string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	tree := state.NewFamilyTree()

	if title != "" {
		tree.SetTitle(title)
	}

	s.replace(tree, "")

	return s.unwatch()
}

func (s *Session) Open(uri Uri) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	tree, data, err := readChart(uri)

	if err != nil {
		return err
	}

	s.replace(tree, uri)
	s.written = data

	log.Infof("opened %s", uri)

	return s.watch(uri)
}

func (s *Session) replace(tree *state.FamilyTree, uri Uri) {
	tree.Resize(s.labeler)

	s.tree = tree
	s.uri = uri
	s.dirty = false
	s.written = nil
	s.history.Reset(s.tree)
}

func readChart(uri Uri) (tree *state.FamilyTree, data []byte, err error) {
	path, err := UriToPath(uri)

	if err != nil {
		return
	}

	data, err = os.ReadFile(path)

	if err != nil {
		return nil, nil, fmt.Errorf("open chart: %w", err)
	}

	doc, err := state.ParseDocument(data)

	if err != nil {
		return nil, nil, err
	}

	if doc.Title == "" {
		doc.Title = TitleFromUri(uri)
	}

	tree, err = state.FromDocument(doc)

	return
}

// Save writes a normalized copy of the chart to uri, or to the current file
// when uri is empty.
func (s *Session) Save(uri Uri) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if uri == "" {
		uri = s.uri
	}

	if uri == "" {
		return fmt.Errorf("%s", i18n.L("no_file"))
	}

	err := s.save(uri)

	if err != nil {
		return err
	}

	if uri != s.uri {
		s.uri = uri
		err = s.watch(uri)
	}

	return err
}

func (s *Session) save(uri Uri) error {
	path, err := UriToPath(uri)

	if err != nil {
		return err
	}

	s.tree.Resize(s.labeler)

	// ids of the live tree stay stable, only the written copy is compacted
	doc := s.tree.Clone()
	doc.Normalize()

	data, err := doc.Document().Marshal()

	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), 0o755)

	if err == nil {
		err = os.WriteFile(path, data, 0o644)
	}

	if err != nil {
		return fmt.Errorf("save chart: %w", err)
	}

	s.written = data
	s.dirty = false

	log.Infof("saved %s", uri)

	return nil
}

// Merge loads another chart file and adds it next to the current one.
func (s *Session) Merge(uri Uri, offset Pos) error {
	other, _, err := readChart(uri)

	if err != nil {
		return err
	}

	_, err = s.Edit(func(tree *state.FamilyTree) (bool, error) {
		tree.Merge(other, offset)
		return true, nil
	})

	return err
}

func (s *Session) Undo() bool {
	return s.travel(s.history.Undo)
}

func (s *Session) Redo() bool {
	return s.travel(s.history.Redo)
}

func (s *Session) travel(step func() (*state.FamilyTree, bool)) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	snapshot, ok := step()

	if !ok {
		return false
	}

	s.tree.Load(snapshot)
	s.tree.Resize(s.labeler)
	s.dirty = true

	return true
}

func (s *Session) watch(uri Uri) (err error) {
	err = s.unwatch()

	if err != nil {
		return
	}

	path, err := UriToPath(uri)

	if err != nil {
		return
	}

	watcher, err := fsnotify.NewWatcher()

	if err != nil {
		return
	}

	err = watcher.Add(filepath.Dir(path))

	if err != nil {
		return multierr.Append(err, watcher.Close())
	}

	s.watcher = watcher

	go s.watchLoop(watcher, path)

	return
}

func (s *Session) unwatch() (err error) {
	if s.watcher != nil {
		err = s.watcher.Close()
		s.watcher = nil
	}

	return
}

func (s *Session) watchLoop(watcher *fsnotify.Watcher, path string) {
	reload := debounce.New(200 * time.Millisecond)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != filepath.Clean(path) || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}

			reload(func() {
				s.reload(path)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			log.Errorf("watch %s: %s", path, err)
		}
	}
}

// reload picks up changes made to the open file by other programs.
func (s *Session) reload(path string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	uri := ToUri(path)

	if s.uri != uri {
		return
	}

	data, err := os.ReadFile(path)

	if err != nil || bytes.Equal(data, s.written) {
		return
	}

	tree, data, err := readChart(uri)

	if err != nil {
		log.Errorf("reload %s: %s", uri, err)
		return
	}

	s.replace(tree, uri)
	s.written = data

	log.Infof("reloaded %s", uri)

	if s.notify != nil {
		s.notify(ChartReloadMethod, ChartReloadParams{URI: uri})
	}
}

// Close stops watching and writes pending edits.
func (s *Session) Close() (err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	err = s.unwatch()

	if s.dirty && s.uri != "" {
		err = multierr.Append(err, s.save(s.uri))
	}

	return
}
