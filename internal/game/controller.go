package game

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/user/brain-heist/config"
	"github.com/user/brain-heist/internal/interfaces"
	"github.com/user/brain-heist/internal/types"
	"go.uber.org/zap"
)

// The oracle's placeholder when question generation fails. The caller
// may retry; the task stays open.
const msgQuestionUnavailable = "Error: Could not generate a question. Please try again."

// GameController owns the single in-memory game state for the active
// identity. Every mutating operation is one atomic
// read-modify-write-persist cycle behind the state lock, followed by a
// notification to the presentation layer.
type GameController struct {
	state     *types.GameState
	stateLock sync.RWMutex
	store     interfaces.Store
	oracle    interfaces.TriviaOracle
	notifier  interfaces.Notifier
	config    config.Config
	Logger    *zap.Logger

	diceRoller *DiceRoller
	// sampler draws the uniform sample deciding hack outcomes. Swappable
	// for deterministic tests.
	sampler func() float64

	regen         *StaminaRegenerator
	userID        string
	sessionCtx    context.Context
	sessionCancel context.CancelFunc
}

// Ensure GameController satisfies the interfaces.GameController interface
var _ interfaces.GameController = (*GameController)(nil)

// NewGameController creates a controller with no attached session
func NewGameController(cfg config.Config, store interfaces.Store) *GameController {
	dice := NewDiceRoller()
	return &GameController{
		store:      store,
		config:     cfg,
		Logger:     zap.NewNop(), // Will be set by the server
		diceRoller: dice,
		sampler:    dice.Chance,
	}
}

// SetLogger sets the controller's logger
func (gc *GameController) SetLogger(logger *zap.Logger) {
	gc.Logger = logger
}

// SetOracle sets the trivia oracle used by trivia tasks
func (gc *GameController) SetOracle(oracle interfaces.TriviaOracle) {
	gc.oracle = oracle
}

// SetNotifier sets the presentation-layer notifier
func (gc *GameController) SetNotifier(notifier interfaces.Notifier) {
	gc.notifier = notifier
}

// Attach loads or bootstraps the game state for an identity and starts
// the stamina regenerator. Attaching while another session is active
// tears the old one down first.
func (gc *GameController) Attach(userID, username string) error {
	gc.stateLock.Lock()
	defer gc.stateLock.Unlock()

	if gc.state != nil {
		gc.detachLocked()
	}

	state, err := gc.store.Load(userID)
	if err != nil {
		return fmt.Errorf("failed to load game state: %w", err)
	}

	if state == nil {
		// First load for this identity: generate a fresh world and
		// persist it immediately so early navigation away loses nothing.
		state = generateWorld(gc.config.Game, gc.diceRoller, userID, username)
		if err := gc.store.Save(userID, state); err != nil {
			return fmt.Errorf("failed to save game state: %w", err)
		}
		gc.Logger.Info("Generated new world",
			zap.String("user_id", userID),
			zap.String("username", username),
			zap.Int("tasks", len(state.Tasks)),
			zap.Int("rivals", len(state.Rivals)))
	}

	gc.state = state
	gc.userID = userID
	gc.sessionCtx, gc.sessionCancel = context.WithCancel(context.Background())

	interval := time.Duration(gc.config.Game.StaminaRegenIntervalSeconds) * time.Second
	gc.regen = newStaminaRegenerator(gc, interval)
	gc.regen.Start()

	gc.notifyLocked("")
	return nil
}

// Detach tears down the active session: the regenerator stops and
// in-flight oracle calls are canceled. No mutation happens afterwards.
func (gc *GameController) Detach() {
	gc.stateLock.Lock()
	defer gc.stateLock.Unlock()
	gc.detachLocked()
}

func (gc *GameController) detachLocked() {
	if gc.regen != nil {
		gc.regen.Stop()
		gc.regen = nil
	}
	if gc.sessionCancel != nil {
		gc.sessionCancel()
		gc.sessionCancel = nil
		gc.sessionCtx = nil
	}
	gc.state = nil
	gc.userID = ""
}

// Snapshot returns a read-only copy of the current game state
func (gc *GameController) Snapshot() (*types.GameState, error) {
	gc.stateLock.RLock()
	defer gc.stateLock.RUnlock()

	if gc.state == nil {
		return nil, ErrNoSession
	}
	return cloneState(gc.state), nil
}

// CompleteTask marks the task completed and credits its reward. The
// completed check runs against the controller's own state under the
// lock, so re-submitting a stale snapshot cannot double-grant.
func (gc *GameController) CompleteTask(taskID string) error {
	gc.stateLock.Lock()
	defer gc.stateLock.Unlock()

	if gc.state == nil {
		return ErrNoSession
	}

	task := findTask(gc.state, taskID)
	if task == nil {
		return ErrTaskNotFound
	}
	if task.IsCompleted {
		return ErrTaskAlreadyCompleted
	}

	task.IsCompleted = true
	user := gc.state.User
	user.XP += task.Reward.XP
	user.Creds += task.Reward.Creds
	prependLog(user, fmt.Sprintf("Task completed: '%s'. Gained %d XP and %d creds.", task.Title, task.Reward.XP, task.Reward.Creds), true)
	applyLevelUps(gc.config.Game, user)

	gc.persistLocked()
	gc.notifyLocked(interfaces.CueSuccess)
	return nil
}

// PurchaseItem attempts to buy the shop item. Returns false with no
// mutation when the player cannot afford it.
func (gc *GameController) PurchaseItem(itemID string) (bool, error) {
	gc.stateLock.Lock()
	defer gc.stateLock.Unlock()

	if gc.state == nil {
		return false, ErrNoSession
	}

	item := findItem(gc.state, itemID)
	if item == nil {
		return false, ErrItemNotFound
	}

	if !applyPurchase(gc.state.User, item) {
		gc.cueLocked(interfaces.CueFail)
		return false, nil
	}

	gc.persistLocked()
	gc.notifyLocked(interfaces.CuePurchase)
	return true, nil
}

// PerformHack attempts a hack against a rival agent and returns a
// human-readable result. Below the stamina cost nothing mutates and a
// fixed message is returned.
func (gc *GameController) PerformHack(targetID string) (string, error) {
	gc.stateLock.Lock()
	defer gc.stateLock.Unlock()

	if gc.state == nil {
		return "", ErrNoSession
	}

	target := findRival(gc.state, targetID)
	if target == nil {
		return "", ErrTargetNotFound
	}

	user := gc.state.User
	if user.Stamina < gc.config.Game.HackStaminaCost {
		return MsgInsufficientStamina, nil
	}

	msg, success := resolveHack(gc.config.Game, user, target, gc.sampler())
	levels := applyLevelUps(gc.config.Game, user)

	gc.persistLocked()
	if success {
		gc.notifyLocked(interfaces.CueSuccess)
	} else {
		gc.notifyLocked(interfaces.CueFail)
		if levels > 0 {
			gc.cueLocked(interfaces.CueSuccess)
		}
	}
	return msg, nil
}

// GenerateTriviaQuestion asks the oracle for a question on the task's
// topic. Oracle failure degrades to a retryable placeholder.
func (gc *GameController) GenerateTriviaQuestion(ctx context.Context, taskID string) (string, error) {
	topic, _, err := gc.triviaTask(taskID)
	if err != nil {
		return "", err
	}

	callCtx, cancel := gc.sessionScoped(ctx)
	defer cancel()

	question, err := gc.oracle.GenerateQuestion(callCtx, topic)
	if err != nil {
		gc.Logger.Warn("Oracle question generation failed",
			zap.String("task_id", taskID),
			zap.String("topic", topic),
			zap.Error(err))
		return msgQuestionUnavailable, nil
	}
	return question, nil
}

// SubmitTriviaAnswer verifies the answer with the oracle and, when
// correct, completes the task. Oracle failure is treated as an
// incorrect answer.
func (gc *GameController) SubmitTriviaAnswer(ctx context.Context, taskID, question, answer string) (bool, error) {
	_, _, err := gc.triviaTask(taskID)
	if err != nil {
		return false, err
	}

	callCtx, cancel := gc.sessionScoped(ctx)
	defer cancel()

	correct, err := gc.oracle.VerifyAnswer(callCtx, question, answer)
	if err != nil {
		// Fail closed: an unreachable oracle never completes a task.
		gc.Logger.Warn("Oracle answer verification failed",
			zap.String("task_id", taskID),
			zap.Error(err))
		return false, nil
	}
	if !correct {
		gc.stateLock.RLock()
		gc.cueLocked(interfaces.CueFail)
		gc.stateLock.RUnlock()
		return false, nil
	}

	// CompleteTask re-checks the completed flag atomically, so a task
	// finished while the oracle was thinking is still rejected.
	return true, gc.CompleteTask(taskID)
}

// Leaderboard returns the player and all rivals ordered by level, then
// creds.
func (gc *GameController) Leaderboard() ([]*types.User, error) {
	gc.stateLock.RLock()
	defer gc.stateLock.RUnlock()

	if gc.state == nil {
		return nil, ErrNoSession
	}

	snapshot := cloneState(gc.state)
	agents := append([]*types.User{snapshot.User}, snapshot.Rivals...)
	sort.Slice(agents, func(i, j int) bool {
		if agents[i].Level != agents[j].Level {
			return agents[i].Level > agents[j].Level
		}
		return agents[i].Creds > agents[j].Creds
	})
	return agents, nil
}

// regenTick applies one stamina regeneration step. At the cap it skips
// both mutation and persistence.
func (gc *GameController) regenTick() {
	gc.stateLock.Lock()
	defer gc.stateLock.Unlock()

	if gc.state == nil {
		return
	}

	user := gc.state.User
	if user.Stamina >= user.MaxStamina {
		return
	}

	user.Stamina = min(user.Stamina+gc.config.Game.StaminaRegenRate, user.MaxStamina)
	gc.persistLocked()
	gc.notifyLocked("")
}

// triviaTask resolves a task id to its oracle topic, validating the
// session, the task kind, and that an oracle is configured.
func (gc *GameController) triviaTask(taskID string) (topic string, task *types.Task, err error) {
	gc.stateLock.RLock()
	defer gc.stateLock.RUnlock()

	if gc.state == nil {
		return "", nil, ErrNoSession
	}
	if gc.oracle == nil {
		return "", nil, fmt.Errorf("trivia oracle not set")
	}

	task = findTask(gc.state, taskID)
	if task == nil {
		return "", nil, ErrTaskNotFound
	}
	if task.Kind != types.TaskTrivia {
		return "", nil, ErrNotTriviaTask
	}
	if task.IsCompleted {
		return "", nil, ErrTaskAlreadyCompleted
	}

	topic = task.Topic
	if topic == "" {
		topic = string(task.Category)
	}
	return topic, task, nil
}

// sessionScoped derives a context that is canceled when either the
// caller's context or the session ends.
func (gc *GameController) sessionScoped(ctx context.Context) (context.Context, context.CancelFunc) {
	gc.stateLock.RLock()
	session := gc.sessionCtx
	gc.stateLock.RUnlock()

	callCtx, cancel := context.WithCancel(ctx)
	if session != nil {
		go func() {
			select {
			case <-session.Done():
				cancel()
			case <-callCtx.Done():
			}
		}()
	}
	return callCtx, cancel
}

// persistLocked saves the current state, best effort. Persistence
// failures are logged and not retried.
func (gc *GameController) persistLocked() {
	if err := gc.store.Save(gc.userID, gc.state); err != nil {
		gc.Logger.Error("Failed to save game state",
			zap.String("user_id", gc.userID),
			zap.Error(err))
	}
}

// notifyLocked publishes the new state to the notifier, with an
// optional cue.
func (gc *GameController) notifyLocked(cue interfaces.Cue) {
	if gc.notifier == nil {
		return
	}
	gc.notifier.StateChanged(cloneState(gc.state))
	if cue != "" {
		gc.notifier.PlayCue(cue)
	}
}

func (gc *GameController) cueLocked(cue interfaces.Cue) {
	if gc.notifier == nil || cue == "" {
		return
	}
	gc.notifier.PlayCue(cue)
}

// cloneState deep-copies a game state so observers never share memory
// with the controller's mutable copy.
func cloneState(state *types.GameState) *types.GameState {
	data, err := json.Marshal(state)
	if err != nil {
		return nil
	}
	var clone types.GameState
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil
	}
	return &clone
}

func findTask(state *types.GameState, taskID string) *types.Task {
	for _, task := range state.Tasks {
		if task.ID == taskID {
			return task
		}
	}
	return nil
}

func findItem(state *types.GameState, itemID string) *types.ShopItem {
	for _, item := range state.ShopItems {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}

func findRival(state *types.GameState, targetID string) *types.User {
	for _, rival := range state.Rivals {
		if rival.ID == targetID {
			return rival
		}
	}
	return nil
}
