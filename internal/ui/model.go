// Package ui is the Bubbletea front-end: it steps an animation.Session on
// frame ticks and draws it into a terminal visualizer.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joeyjackson/fourier-series-drawer/internal/animation"
	"github.com/joeyjackson/fourier-series-drawer/internal/catalog"
	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
	applog "github.com/joeyjackson/fourier-series-drawer/internal/log"
	"github.com/joeyjackson/fourier-series-drawer/internal/media"
	"github.com/joeyjackson/fourier-series-drawer/internal/player"
	"github.com/joeyjackson/fourier-series-drawer/internal/util"
	"github.com/joeyjackson/fourier-series-drawer/internal/visualizer"
)

// chromeLines is the number of view lines around the canvas.
const chromeLines = 9

const statusTTL = 5 * time.Second

// Options configures the TUI.
type Options struct {
	Animation animation.Options
	FPS       int
	// Visualizer names the initial canvas ("braille" or "dense").
	Visualizer string
	// Store persists signals opened from files; nil disables saving.
	Store *catalog.Store
	// Read controls how files opened from the picker are decoded.
	Read media.ReadOptions
	// Tone configures the audio preview.
	Tone player.ToneOptions
	// Unsaved names catalog signals that were loaded from files and are
	// not in the store yet.
	Unsaved []string
}

// Model is the Bubbletea model for the epicycle TUI.
type Model struct {
	catalog *catalog.Catalog
	queue   *catalog.Queue
	store   *catalog.Store
	read    media.ReadOptions
	log     *slog.Logger

	base    animation.Options
	limit   int
	signal  catalog.Signal
	session *animation.Session
	unsaved map[string]bool

	canvases []visualizer.Visualizer
	canvas   int
	fps      int

	paused   bool
	lastTick time.Time
	width    int
	height   int
	quitting bool

	progress progress.Model
	picker   *Picker
	tone     player.ToneOptions
	audio    *player.Player

	statusMsg  string
	statusErr  bool
	statusTime time.Time
}

// New creates a Model showing the queue's current signal.
func New(c *catalog.Catalog, q *catalog.Queue, opts Options) (Model, error) {
	canvases := visualizer.Modes(opts.FPS)
	idx := 0
	for i, v := range canvases {
		if v.Name() == opts.Visualizer {
			idx = i
		}
	}
	m := Model{
		catalog:  c,
		queue:    q,
		store:    opts.Store,
		read:     opts.Read,
		log:      applog.WithComponent("ui"),
		base:     opts.Animation,
		limit:    opts.Animation.MaxEpicycles,
		unsaved:  make(map[string]bool),
		canvases: canvases,
		canvas:   idx,
		fps:      opts.FPS,
		width:    80,
		height:   24,
		progress: newProgress(),
		tone:     opts.Tone,
	}
	for _, name := range opts.Unsaved {
		m.unsaved[name] = true
	}
	m.resize()
	if err := m.load(q.Current()); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.fps), m.titleCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return m.handleFrame(time.Time(msg))

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		if m.picker != nil {
			m.picker.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case PickedMsg:
		m.picker = nil
		return m.open(msg)

	case PickCancelledMsg:
		m.picker = nil
		return m, m.titleCmd()

	case signalSavedMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("save %s: %w", msg.name, msg.err))
			return m, nil
		}
		delete(m.unsaved, msg.name)
		m.setStatus(fmt.Sprintf("Saved %s to library", msg.name))
		return m, nil
	}

	if m.picker != nil {
		p, cmd := m.picker.Update(msg)
		m.picker = &p
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		if m.audio != nil {
			m.audio.Close()
		}
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}
	switch msg.String() {
	case " ":
		m.paused = !m.paused
		return m, m.titleCmd()
	case "r":
		m.session.Restart()
	case "m":
		prev := m.base.Mode
		m.base.Mode = m.base.Mode.Next()
		if err := m.rebuild(); err != nil {
			m.base.Mode = prev
			m.setError(err)
			return m, nil
		}
		m.setStatus("mode " + m.base.Mode.String())
	case "+", "=":
		m.setLimit(nextLimit(m.limit, m.session.N(), true))
	case "-", "_":
		m.setLimit(nextLimit(m.limit, m.session.N(), false))
	case "v":
		m.canvas = (m.canvas + 1) % len(m.canvases)
		m.setStatus("visualizer " + m.visualizer().Name())
	case "n":
		return m.show(m.queue.Next())
	case "p":
		return m.show(m.queue.Previous())
	case "R":
		return m.show(m.queue.Random())
	case "s":
		if m.queue.IsShuffled() {
			m.queue.DisableShuffle()
		} else {
			m.queue.EnableShuffle()
		}
	case "a":
		m.toggleAudio()
	case "/":
		p := NewPicker(m.catalog)
		p.SetSize(m.width, m.height)
		m.picker = &p
		return m, p.Init()
	case "w":
		if m.canSave() {
			store, sig := m.store, m.signal
			return m, func() tea.Msg {
				return signalSavedMsg{name: sig.Name, err: store.Save(context.Background(), sig)}
			}
		}
	}
	return m, nil
}

func (m Model) handleFrame(now time.Time) (Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() && !m.paused {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now
	m.session.StepFrame(elapsed, m.visualizer())
	if m.statusMsg != "" && now.Sub(m.statusTime) > statusTTL {
		m.statusMsg = ""
	}
	return m, frameCmd(m.fps)
}

// show loads name and reports failures on the status line.
func (m Model) show(name string) (Model, tea.Cmd) {
	if err := m.load(name); err != nil {
		m.setError(err)
		return m, nil
	}
	return m, m.titleCmd()
}

func (m Model) open(msg PickedMsg) (Model, tea.Cmd) {
	if msg.Name != "" {
		m.queue.Append(msg.Name)
		m.queue.Select(msg.Name)
		return m.show(msg.Name)
	}

	sigs, err := media.LoadAll([]string{msg.Path}, m.read)
	if err != nil {
		m.setError(err)
		return m, m.titleCmd()
	}
	var added []string
	for _, sig := range sigs {
		if err := m.catalog.Add(sig); err != nil {
			m.log.Warn("skip signal", slog.String("name", sig.Name), slog.Any("err", err))
			continue
		}
		m.queue.Append(sig.Name)
		m.unsaved[sig.Name] = true
		added = append(added, sig.Name)
	}
	if len(added) == 0 {
		m.setError(fmt.Errorf("%s: nothing to draw", msg.Path))
		return m, m.titleCmd()
	}
	m.queue.Select(added[0])
	if err := m.load(added[0]); err != nil {
		m.setError(err)
		return m, m.titleCmd()
	}
	m.setStatus(fmt.Sprintf("Opened %s", util.Plural(len(added), "signal")))
	return m, m.titleCmd()
}

// load makes name the current signal, keeping the old one on failure.
func (m *Model) load(name string) error {
	sig, err := m.catalog.Get(name)
	if err != nil {
		return err
	}
	s, err := m.build(sig.Path)
	if err != nil {
		return fmt.Errorf("%s: %w", sig.Name, err)
	}
	m.signal, m.session = sig, s
	m.frame()
	m.retune()
	m.log.Debug("signal loaded",
		slog.String("name", sig.Name),
		slog.Int("samples", s.N()),
		slog.Int("epicycles", s.Epicycles()),
		slog.String("mode", s.Mode().String()))
	return nil
}

func (m *Model) rebuild() error {
	s, err := m.build(m.signal.Path)
	if err != nil {
		return err
	}
	m.session = s
	m.frame()
	m.retune()
	return nil
}

// toggleAudio starts or stops playing the reconstruction as sound.
func (m *Model) toggleAudio() {
	if m.audio != nil {
		m.audio.Close()
		m.audio = nil
		m.setStatus("audio off")
		return
	}
	p, err := player.New(m.session.Reconstruct(), m.tone)
	if err != nil {
		m.setError(fmt.Errorf("audio: %w", err))
		return
	}
	m.audio = p
	m.setStatus("audio on")
}

// retune points the audio preview at the current reconstruction.
func (m *Model) retune() {
	if m.audio == nil {
		return
	}
	if err := m.audio.SetPath(m.session.Reconstruct()); err != nil {
		m.log.Warn("retune audio", slog.Any("err", err))
	}
}

func (m *Model) build(path []fourier.Point) (*animation.Session, error) {
	opts := m.base
	opts.MaxEpicycles = m.limit
	return animation.NewSession(path, animation.Arrange(opts, path))
}

func (m *Model) setLimit(limit int) {
	prev := m.limit
	m.limit = limit
	if err := m.rebuild(); err != nil {
		m.limit = prev
		m.setError(err)
		return
	}
	m.setStatus("epicycle limit " + util.FormatLimit(limit))
}

func (m *Model) frame() {
	bounds := m.session.Bounds()
	for _, v := range m.canvases {
		v.Frame(bounds)
	}
}

func (m *Model) resize() {
	cols := max(m.width-4, 10)
	rows := max(m.height-chromeLines, 4)
	for _, v := range m.canvases {
		v.Resize(cols, rows)
	}
	m.progress.Width = max(cols-20, 10)
}

func (m Model) visualizer() visualizer.Visualizer { return m.canvases[m.canvas] }

func (m Model) canSave() bool { return m.store != nil && m.unsaved[m.signal.Name] }

func (m *Model) setStatus(s string) {
	m.statusMsg, m.statusErr, m.statusTime = s, false, time.Now()
}

func (m *Model) setError(err error) {
	m.log.Warn("ui error", slog.Any("err", err))
	m.statusMsg, m.statusErr, m.statusTime = err.Error(), true, time.Now()
}

func (m Model) titleCmd() tea.Cmd {
	return tea.SetWindowTitle(windowTitle(m.signal.Name, m.paused))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.picker != nil {
		return m.picker.View()
	}

	w := m.width
	if w < 30 {
		w = 60
	}

	header := brandStyle.Render("fourier") + "  " + signalStyle.Render(m.signal.Name)
	info := detailStyle.Render(fmt.Sprintf("%s  %s (limit %s)  %s",
		m.session.Mode(),
		util.Plural(m.session.Epicycles(), "epicycle"),
		util.FormatLimit(m.limit),
		util.Plural(m.session.N(), "sample")))

	period := m.session.Options().Duration
	t := m.session.Time()
	elapsed := util.FormatDuration(time.Duration(t * float64(period)))
	total := util.FormatDuration(period)
	progressLine := fmt.Sprintf("%s %s %s",
		clockStyle.Render(elapsed), m.progress.ViewAs(t), clockStyle.Render(total))

	icon, state := "▶", "drawing"
	if m.paused {
		icon, state = "❚❚", "paused"
	}
	leftText := fmt.Sprintf("%s  %s  %s", icon, state, modeIcon(m.session.Mode()))
	if s := shuffleIcon(m.queue.IsShuffled()); s != "" {
		leftText += "  " + s
	}
	if m.audio != nil {
		leftText += "  [audio]"
	}
	rightText := fmt.Sprintf("%d/%d  %s", m.queue.CurrentIndex()+1, m.queue.Len(), m.visualizer().Name())
	gap := w - len([]rune(leftText)) - len(rightText) - 4
	statusLine := statusStyle.Render(leftText) + spaces(max(gap, 2)) + statusStyle.Render(rightText)

	lines := []string{
		"",
		"  " + header,
		"  " + info,
		"",
		indentBlock(m.visualizer().View(), "  "),
		"",
		"  " + progressLine,
		"  " + statusLine,
	}
	if m.statusMsg != "" {
		style := keysStyle
		if m.statusErr {
			style = errorStyle
		}
		lines = append(lines, "  "+style.Render(m.statusMsg))
	}
	lines = append(lines, "  "+keysStyle.Render(helpText(m.queue.Len() > 1, m.canSave())))
	return strings.Join(lines, "\n")
}

func windowTitle(name string, paused bool) string {
	if paused {
		return "⏸ " + name + " - fourier"
	}
	return "▶ " + name + " - fourier"
}
