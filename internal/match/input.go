package match

// EventKind distinguishes key presses from releases.
type EventKind uint8

const (
	KeyDown EventKind = iota + 1
	KeyUp
)

// Key is a logical key; the mapping from physical keys lives with the input
// collaborator.
type Key uint8

const (
	KeyUnknown Key = iota
	P1Up
	P1Down
	P2Up
	P2Down
	Confirm
	Quit
)

var keyNames = map[Key]string{
	P1Up:    "p1_up",
	P1Down:  "p1_down",
	P2Up:    "p2_up",
	P2Down:  "p2_down",
	Confirm: "confirm",
	Quit:    "quit",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "unknown"
}

// Event is one discrete input edge.
type Event struct {
	Kind EventKind
	Key  Key
}

func Down(k Key) Event { return Event{Kind: KeyDown, Key: k} }
func Up(k Key) Event   { return Event{Kind: KeyUp, Key: k} }

func pressed(events []Event, k Key) bool {
	for _, ev := range events {
		if ev.Kind == KeyDown && ev.Key == k {
			return true
		}
	}
	return false
}

// applyIntents folds key edges into paddle intents in order, so the last
// edge for a paddle wins.
func (s *State) applyIntents(events []Event) {
	for _, ev := range events {
		var idx int
		var dir float64
		switch ev.Key {
		case P1Up:
			idx, dir = 0, -1
		case P1Down:
			idx, dir = 0, 1
		case P2Up:
			idx, dir = 1, -1
		case P2Down:
			idx, dir = 1, 1
		default:
			continue
		}
		switch ev.Kind {
		case KeyDown:
			s.Paddles[idx].Intent = dir * PaddleSpeed
		case KeyUp:
			s.Paddles[idx].Intent = 0
		}
	}
}
