package interfaces

import (
	"context"

	"github.com/user/brain-heist/internal/types"
)

// Cue is a cosmetic presentation signal (sound/animation trigger).
type Cue string

const (
	CueSuccess  Cue = "success"
	CueFail     Cue = "fail"
	CuePurchase Cue = "purchase"
)

// Notifier receives state snapshots and presentation cues from the
// controller. Implementations must not call back into the controller.
type Notifier interface {
	StateChanged(state *types.GameState)
	PlayCue(cue Cue)
}

// Store persists one GameState blob per identity.
type Store interface {
	// Load returns the stored state, or (nil, nil) when no state exists
	// for the id.
	Load(userID string) (*types.GameState, error)
	Save(userID string, state *types.GameState) error
}

// TriviaOracle generates and verifies trivia questions. Both calls may
// fail; callers treat verification failure as an incorrect answer.
type TriviaOracle interface {
	GenerateQuestion(ctx context.Context, topic string) (string, error)
	VerifyAnswer(ctx context.Context, question, answer string) (bool, error)
}

// GameController defines the operation surface exposed to the
// presentation layer.
type GameController interface {
	Attach(userID, username string) error
	Detach()
	Snapshot() (*types.GameState, error)
	CompleteTask(taskID string) error
	PurchaseItem(itemID string) (bool, error)
	PerformHack(targetID string) (string, error)
	GenerateTriviaQuestion(ctx context.Context, taskID string) (string, error)
	SubmitTriviaAnswer(ctx context.Context, taskID, question, answer string) (bool, error)
	Leaderboard() ([]*types.User, error)
}
