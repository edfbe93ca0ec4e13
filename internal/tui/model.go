package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/lorenz/internal/interact"
	"github.com/san-kum/lorenz/internal/trajectory"
	"github.com/san-kum/lorenz/internal/viz"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	defaultFPS    = 60
	// chrome is the panel border plus the overlay line.
	chrome = 3
)

type tickMsg time.Time

// Options configures a viewer session.
type Options struct {
	State      *interact.State
	Trajectory trajectory.Config
	// Dim is the half-size of the orthographic view box.
	Dim  float64
	FPS  int
	Seed int64
	Log  *logrus.Entry
	// Now replaces the wall clock, mainly for tests.
	Now func() time.Time
}

// Model is a Bubble Tea model for one viewer session. It is used through a
// pointer: the frame is rebuilt in Update and View only returns it.
type Model struct {
	state   *interact.State
	traj    trajectory.Config
	dim     float64
	fps     int
	keys    keyMap
	help    help.Model
	canvas  *viz.Canvas
	rng     *rand.Rand
	log     *logrus.Entry
	now     func() time.Time
	start   time.Time
	verts   []viz.Vec3
	frame   string
	width   int
	height  int
	redraws int
}

func NewModel(opts Options) *Model {
	if opts.State == nil {
		opts.State = interact.New()
	}
	if opts.Trajectory.Steps == 0 && opts.Trajectory.Dt == 0 {
		opts.Trajectory = trajectory.DefaultConfig()
	}
	if len(opts.Trajectory.Initial) == 0 {
		opts.Trajectory.Initial = trajectory.DefaultConfig().Initial
	}
	if opts.Dim <= 0 {
		opts.Dim = viz.DefaultDim
	}
	if opts.FPS <= 0 {
		opts.FPS = defaultFPS
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Log == nil {
		opts.Log = logrus.WithField("component", "tui")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := &Model{
		state: opts.State,
		traj:  opts.Trajectory,
		dim:   opts.Dim,
		fps:   opts.FPS,
		keys:  newKeyMap(),
		help:  help.New(),
		rng:   rand.New(rand.NewSource(opts.Seed)),
		log:   opts.Log,
		now:   opts.Now,
	}
	m.start = m.now()
	m.reshape(defaultWidth, defaultHeight)
	return m
}

// State exposes the session state.
func (m *Model) State() *interact.State { return m.state }

// Redraws counts frames rendered so far.
func (m *Model) Redraws() int { return m.redraws }

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.reshape(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		if m.state.Animate(m.now().Sub(m.start)) {
			m.redraw()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.reshape(m.width, m.height)
		return nil
	}

	ev, _ := interact.Lookup(msg.String())
	if m.state.Apply(ev) == interact.OutcomeQuit {
		return tea.Quit
	}
	if ev.Special() {
		m.errCheck("special")
	} else {
		m.errCheck("key")
	}
	m.log.WithField("event", ev).Debug("key")
	m.redraw()
	return nil
}

// reshape sizes the canvas to the terminal minus chrome and help.
func (m *Model) reshape(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	helpLines := lipgloss.Height(m.help.View(m.keys))
	m.canvas = viz.NewCanvas(width-2, height-chrome-helpLines)
	m.errCheck("reshape")
	m.redraw()
}

func (m *Model) redraw() {
	tr := trajectory.Generate(&m.state.Params, m.traj)
	m.verts = vertices(tr, m.verts)

	pw, ph := m.canvas.PixelSize()
	proj := viz.NewProjection(m.state.View.Th, m.state.View.Ph, m.dim, pw, ph)
	viz.Scene{
		Strip:     m.verts,
		W:         m.state.View.W,
		LineColor: viz.RandomColor(m.rng),
		AxisColor: viz.CurrentTheme.Axes,
	}.Draw(m.canvas, proj)
	m.errCheck("display")

	m.frame = m.compose()
	m.redraws++
}

func (m *Model) compose() string {
	overlay := lipgloss.NewStyle().Foreground(viz.CurrentTheme.Text).Render(m.state.Overlay())
	return lipgloss.JoinVertical(lipgloss.Left,
		viz.Panel(m.canvas.Render()),
		overlay+"  "+viz.Status(m.state.Animating),
		m.help.View(m.keys),
	)
}

func (m *Model) View() string {
	return m.frame
}

// errCheck logs any fault the canvas recorded. Faults never stop the viewer.
func (m *Model) errCheck(where string) {
	if err := m.canvas.Err(); err != nil {
		m.log.WithField("where", where).WithError(err).Warn("render fault")
	}
}

func vertices(tr trajectory.Trajectory, buf []viz.Vec3) []viz.Vec3 {
	buf = buf[:0]
	for _, p := range tr {
		buf = append(buf, viz.Vec3(p))
	}
	return buf
}
