package sim

// EventKind identifies what an Event asks the host to do.
type EventKind int

const (
	EventAnimation  EventKind = iota + 1 // Switch or stop an animation
	EventShake                           // Shake the screen
	EventGameOver                        // Show the game over transition
	EventDifficulty                      // The difficulty level went up
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventAnimation:
		return "animation"
	case EventShake:
		return "shake"
	case EventGameOver:
		return "game_over"
	case EventDifficulty:
		return "difficulty"
	default:
		return "unknown"
	}
}

// Anim names an animation request.
type Anim string

const (
	AnimRun           Anim = "run"
	AnimJump          Anim = "jump"
	AnimCrouch        Anim = "crouch"
	AnimPlayerStop    Anim = "player_stop"
	AnimObstaclesStop Anim = "obstacles_stop"
)

// Event is a notification from the simulation to its host.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind      EventKind
	Anim      Anim    // EventAnimation
	Level     int     // EventDifficulty, EventGameOver
	Speed     float64 // EventDifficulty
	Score     int     // EventGameOver
	Duration  float64 // EventShake, milliseconds
	Intensity float64 // EventShake, fraction of viewport width
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

func (q *EventQueue) animate(a Anim) {
	q.Push(Event{Kind: EventAnimation, Anim: a})
}
