package gui

import (
	"errors"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/lorenz/internal/interact"
	"github.com/san-kum/lorenz/internal/trajectory"
	"github.com/san-kum/lorenz/internal/viz"
)

var (
	ColBg   = rl.NewColor(0, 0, 0, 255)
	ColAxes = rl.NewColor(255, 255, 255, 255)
	ColText = rl.NewColor(255, 255, 255, 255)
)

const fontSize = 18

// ErrWindowNotReady is logged when raylib loses or never gets its window.
var ErrWindowNotReady = errors.New("gui: window not ready")

type Options struct {
	State      *interact.State
	Trajectory trajectory.Config
	Dim        float64
	Width      int
	Height     int
	FPS        int
	Title      string
	Seed       int64
	Log        *logrus.Entry
}

type segment struct {
	From, To rl.Vector2
}

type label struct {
	Pos  rl.Vector2
	Text string
}

type App struct {
	State *interact.State
	Traj  trajectory.Config
	Dim   float64

	width, height int
	rng           *rand.Rand
	log           *logrus.Entry
	verts         []viz.Vec3
	strip         []segment
	axes          []segment
	labels        []label
	lineColor     rl.Color
	fault         error
	dirty         bool
}

type arrow struct {
	key  int32
	name string
}

var arrows = []arrow{
	{rl.KeyRight, "right"},
	{rl.KeyLeft, "left"},
	{rl.KeyUp, "up"},
	{rl.KeyDown, "down"},
}

func initWindow(opts Options) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return ErrWindowNotReady
	}
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(0)
	return nil
}

func NewApp(opts Options) *App {
	if opts.State == nil {
		opts.State = interact.New()
	}
	if opts.Dim <= 0 {
		opts.Dim = viz.DefaultDim
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Log == nil {
		opts.Log = logrus.WithField("component", "gui")
	}
	return &App{
		State:  opts.State,
		Traj:   opts.Trajectory,
		Dim:    opts.Dim,
		width:  opts.Width,
		height: opts.Height,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		log:    opts.Log,
		dirty:  true,
	}
}

// Run opens the window and blocks until the viewer quits or the window is
// closed.
func Run(opts Options) error {
	if err := initWindow(opts); err != nil {
		return err
	}
	defer rl.CloseWindow()
	app := NewApp(opts)
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update() {
			return
		}
		a.Draw()
	}
}

// Update polls input and the animation clock. It reports true when the
// viewer should exit.
func (a *App) Update() bool {
	if rl.IsWindowResized() {
		a.reshape(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
	}

	if rl.IsKeyPressed(rl.KeyEscape) && a.handle("esc", "key") {
		return true
	}
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if a.handle(string(rune(ch)), "key") {
			return true
		}
	}
	for _, k := range arrows {
		if rl.IsKeyPressed(k.key) || rl.IsKeyPressedRepeat(k.key) {
			a.handle(k.name, "special")
		}
	}

	elapsed := time.Duration(rl.GetTime() * float64(time.Second))
	if a.State.Animate(elapsed) {
		a.dirty = true
	}
	return false
}

func (a *App) handle(key, where string) bool {
	ev, _ := interact.Lookup(key)
	if a.State.Apply(ev) == interact.OutcomeQuit {
		return true
	}
	a.errCheck(where)
	a.dirty = true
	return false
}

func (a *App) reshape(width, height int) {
	a.width, a.height = width, height
	a.dirty = true
	a.errCheck("reshape")
}

// rebuild regenerates the trajectory and reprojects the whole scene. It runs
// once per requested redraw, so the line colour changes with every redraw.
func (a *App) rebuild() {
	tr := trajectory.Generate(&a.State.Params, a.Traj)
	a.verts = a.verts[:0]
	for _, p := range tr {
		a.verts = append(a.verts, viz.Vec3(p))
	}

	w, h := float64(a.width), float64(a.height)
	proj := viz.NewProjection(a.State.View.Th, a.State.View.Ph, a.Dim, a.width, a.height)
	toScreen := func(dst *[]segment) func(p, q viz.Vec3) {
		return func(p, q viz.Vec3) {
			x0, y0 := viz.ToScreen(p, w, h)
			x1, y1 := viz.ToScreen(q, w, h)
			*dst = append(*dst, segment{
				From: rl.NewVector2(float32(x0), float32(y0)),
				To:   rl.NewVector2(float32(x1), float32(y1)),
			})
		}
	}

	a.strip = a.strip[:0]
	_, a.fault = viz.Segments(proj, a.verts, a.State.View.W, toScreen(&a.strip))

	a.axes = a.axes[:0]
	a.labels = a.labels[:0]
	for _, tip := range []struct {
		v    viz.Vec3
		name string
	}{
		{viz.Vec3{X: viz.AxisLength}, "X"},
		{viz.Vec3{Y: viz.AxisLength}, "Y"},
		{viz.Vec3{Z: viz.AxisLength}, "Z"},
	} {
		viz.Segments(proj, []viz.Vec3{{}, tip.v}, 1, toScreen(&a.axes))
		if n, ok := proj.Anchor(tip.v); ok {
			x, y := viz.ToScreen(n, w, h)
			a.labels = append(a.labels, label{rl.NewVector2(float32(x), float32(y)), tip.name})
		}
	}

	a.lineColor = rl.NewColor(uint8(a.rng.Intn(255)), uint8(a.rng.Intn(255)), uint8(a.rng.Intn(255)), 255)
	a.dirty = false
}

func (a *App) Draw() {
	if a.dirty {
		a.rebuild()
	}

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	for _, s := range a.strip {
		rl.DrawLineV(s.From, s.To, a.lineColor)
	}
	for _, s := range a.axes {
		rl.DrawLineV(s.From, s.To, ColAxes)
	}
	for _, l := range a.labels {
		rl.DrawText(l.Text, int32(l.Pos.X), int32(l.Pos.Y), fontSize, ColText)
	}
	rl.DrawText(a.State.Overlay(), 5, int32(a.height-5-fontSize), fontSize, ColText)

	rl.EndDrawing()
	a.errCheck("display")
}

// errCheck logs a pending fault with the step that found it. Faults never
// stop the viewer.
func (a *App) errCheck(where string) {
	err := a.fault
	a.fault = nil
	if err == nil && !rl.IsWindowReady() {
		err = ErrWindowNotReady
	}
	if err != nil {
		a.log.WithField("where", where).WithError(err).Warn("render fault")
	}
}
