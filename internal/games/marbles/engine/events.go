package engine

// EventKind tags a sound-worthy moment in the game.
type EventKind int

const (
	EventShoot EventKind = iota
	EventHit
	EventCombo
	EventGameOver
	EventLevelUp
	EventClick
)

// String returns the event tag.
func (k EventKind) String() string {
	switch k {
	case EventShoot:
		return "shoot"
	case EventHit:
		return "hit"
	case EventCombo:
		return "combo"
	case EventGameOver:
		return "gameover"
	case EventLevelUp:
		return "levelup"
	case EventClick:
		return "click"
	default:
		return "unknown"
	}
}

// Event is emitted to the audio collaborator. Combo is the streak at the
// time of the event, used for pitch scaling.
type Event struct {
	Kind  EventKind
	Combo int
}

// EventSink plays events. Implementations own muting and failure handling;
// Play must not block the simulation.
type EventSink interface {
	Play(Event)
}

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}
