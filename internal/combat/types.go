package combat

// Event types emitted by a Match.
const (
	EvMatchStart   = "MatchStart"
	EvTurnStart    = "TurnStart"
	EvShotRejected = "ShotRejected"
	EvMiss         = "Miss"
	EvHit          = "Hit"
	EvSunk         = "Sunk"
	EvMatchEnd     = "MatchEnd"
)

// Turn counts changes of shooter; Shot counts accepted shots, so a hit that
// grants another shot keeps Turn and advances Shot.
type Event struct {
	Turn    int            `json:"turn"`
	Shot    int            `json:"shot,omitempty"`
	Side    string         `json:"side,omitempty"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

func outcomeEvent(o Outcome) string {
	switch o {
	case Hit:
		return EvHit
	case Sunk:
		return EvSunk
	default:
		return EvMiss
	}
}

// Rejection reasons carried in the ShotRejected payload.
const (
	RejectOutOfBounds  = "out_of_bounds"
	RejectAlreadyFired = "already_fired"
)
