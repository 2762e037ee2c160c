package game

// EventKind identifies something a tick produced that shells may care about.
type EventKind int

const (
	EventStarted EventKind = iota
	EventLevelUp
	EventGameOver
	EventHighScore
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventHighScore:
		return "high_score"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// DeathCause records what ended a run.
type DeathCause string

const (
	CauseAsteroid    DeathCause = "asteroid"
	CauseEnemy       DeathCause = "enemy"
	CauseEnemyBullet DeathCause = "enemy_bullet"
	CauseIdle        DeathCause = "idle"
)

// Event is emitted by Tick.
type Event struct {
	Kind  EventKind
	Score int
	Level int
	Cause DeathCause // Set for EventGameOver
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}
