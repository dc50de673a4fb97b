package game

import (
	"time"
)

// StaminaRegenerator restores the player's stamina on a fixed interval
// while a session is attached. It is a silent background process: no
// log entries and no cues.
type StaminaRegenerator struct {
	controller *GameController
	ticker     *time.Ticker
	stopChan   chan struct{}
}

// newStaminaRegenerator creates a regenerator bound to the controller's
// session lifecycle
func newStaminaRegenerator(controller *GameController, interval time.Duration) *StaminaRegenerator {
	return &StaminaRegenerator{
		controller: controller,
		ticker:     time.NewTicker(interval),
		stopChan:   make(chan struct{}),
	}
}

// Start begins the regeneration loop
func (sr *StaminaRegenerator) Start() {
	go func() {
		for {
			select {
			case <-sr.ticker.C:
				sr.controller.regenTick()
			case <-sr.stopChan:
				sr.ticker.Stop()
				return
			}
		}
	}()
}

// Stop halts the regeneration loop. After Stop returns the loop will
// not mutate state again.
func (sr *StaminaRegenerator) Stop() {
	close(sr.stopChan)
}
