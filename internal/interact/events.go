package interact

type Event int

const (
	EventNone Event = iota
	EventQuit
	EventReset
	EventZoomOut
	EventZoomIn
	EventSInc
	EventSDec
	EventBInc
	EventBDec
	EventRInc
	EventRDec
	EventToggleAnimation
	EventViewX
	EventViewY
	EventViewZ
	EventRight
	EventLeft
	EventUp
	EventDown
)

var eventNames = map[Event]string{
	EventNone:            "none",
	EventQuit:            "quit",
	EventReset:           "reset",
	EventZoomOut:         "zoom-out",
	EventZoomIn:          "zoom-in",
	EventSInc:            "s-increase",
	EventSDec:            "s-decrease",
	EventBInc:            "b-increase",
	EventBDec:            "b-decrease",
	EventRInc:            "r-increase",
	EventRDec:            "r-decrease",
	EventToggleAnimation: "toggle-animation",
	EventViewX:           "view-x",
	EventViewY:           "view-y",
	EventViewZ:           "view-z",
	EventRight:           "right",
	EventLeft:            "left",
	EventUp:              "up",
	EventDown:            "down",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// Special reports whether the event comes from a special (arrow) key rather
// than a character key. Loggers use this to name the originating handler.
func (e Event) Special() bool {
	return e >= EventRight && e <= EventDown
}

// Binding ties an event to the key names that trigger it. Key names follow
// the Bubble Tea convention ("esc", "left", "+", "S").
type Binding struct {
	Event Event
	Keys  []string
	Help  string
	Desc  string
}

// Bindings is the key table shared by every renderer.
var Bindings = []Binding{
	{EventQuit, []string{"esc", "ctrl+c"}, "esc", "quit"},
	{EventReset, []string{"0"}, "0", "reset view"},
	{EventZoomIn, []string{"+"}, "+", "zoom in"},
	{EventZoomOut, []string{"-"}, "-", "zoom out"},
	{EventSInc, []string{"s"}, "s", "s +0.2"},
	{EventSDec, []string{"S"}, "S", "s -0.2"},
	{EventBInc, []string{"b"}, "b", "b +0.1"},
	{EventBDec, []string{"B"}, "B", "b -0.1"},
	{EventRInc, []string{"r"}, "r", "r +0.5"},
	{EventRDec, []string{"R"}, "R", "r -0.5"},
	{EventToggleAnimation, []string{"o"}, "o", "animate"},
	{EventViewX, []string{"x"}, "x", "view along x"},
	{EventViewY, []string{"y"}, "y", "view along y"},
	{EventViewZ, []string{"z"}, "z", "view along z"},
	{EventLeft, []string{"left"}, "←", "azimuth -5"},
	{EventRight, []string{"right"}, "→", "azimuth +5"},
	{EventUp, []string{"up"}, "↑", "elevation +5"},
	{EventDown, []string{"down"}, "↓", "elevation -5"},
}

var keyIndex = func() map[string]Event {
	idx := make(map[string]Event)
	for _, b := range Bindings {
		for _, k := range b.Keys {
			idx[k] = b.Event
		}
	}
	return idx
}()

// Lookup maps a key name to its event. Unbound keys return EventNone, false.
func Lookup(key string) (Event, bool) {
	ev, ok := keyIndex[key]
	return ev, ok
}
