package pipeline

// TurnState is the owner-driven stage of the current voice turn. Transitions
// are explicit application calls; the only automatic transition is
// waiting_response back to idle when the upstream response completes.
// Turn-taking is owner-driven rather than inferred from message content,
// because upstream event ordering relative to UI-driven turn changes is not
// guaranteed.
type TurnState string

const (
	TurnIdle             TurnState = "idle"
	TurnRecording        TurnState = "recording"
	TurnCommitting       TurnState = "committing"
	TurnWaitingUserFinal TurnState = "waiting_user_final"
	TurnWaitingResponse  TurnState = "waiting_response"
)

// TurnSnapshot is a point-in-time copy of the turn tracker.
type TurnSnapshot struct {
	State      TurnState
	TurnID     int
	EventIndex int
}

// turnTracker holds the single active turn. TurnID increments monotonically
// each time a turn completes; EventIndex counts events processed since the
// last turn boundary.
type turnTracker struct {
	state      TurnState
	turnID     int
	eventIndex int
}

func newTurnTracker() turnTracker {
	return turnTracker{state: TurnIdle}
}

func (t *turnTracker) set(state TurnState) {
	t.state = state
}

func (t *turnTracker) advance() {
	t.eventIndex++
}

// complete closes the current turn: back to idle, next turn id, fresh event
// index.
func (t *turnTracker) complete() {
	t.state = TurnIdle
	t.turnID++
	t.eventIndex = 0
}

// reset clears turn state without consuming a turn id.
func (t *turnTracker) reset() {
	t.state = TurnIdle
	t.eventIndex = 0
}

func (t *turnTracker) snapshot() TurnSnapshot {
	return TurnSnapshot{State: t.state, TurnID: t.turnID, EventIndex: t.eventIndex}
}
