package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user/brain-heist/config"
)

func TestXPThresholdCurve(t *testing.T) {
	cfg := config.DefaultConfig().Game

	// floor(1000 * 1.5^(level-1))
	assert.Equal(t, 1000, xpThreshold(cfg, 1))
	assert.Equal(t, 1500, xpThreshold(cfg, 2))
	assert.Equal(t, 2250, xpThreshold(cfg, 3))
	assert.Equal(t, 3375, xpThreshold(cfg, 4))
	assert.Equal(t, 5062, xpThreshold(cfg, 5))
}

func TestApplyLevelUpsSingleLevel(t *testing.T) {
	cfg := config.DefaultConfig().Game
	user := newUser(cfg, "u1", "Agent", 1)
	user.HackingSkill = 10
	user.SecuritySkill = 10
	user.Stamina = 40
	user.XP = 1025

	levels := applyLevelUps(cfg, user)

	assert.Equal(t, 1, levels)
	assert.Equal(t, 2, user.Level)
	assert.Equal(t, 25, user.XP)
	assert.Equal(t, 1500, user.XPToNextLevel)
	assert.Equal(t, 110, user.MaxStamina)
	assert.Equal(t, 110, user.Stamina)
	assert.Equal(t, 11, user.HackingSkill)
	assert.Equal(t, 11, user.SecuritySkill)

	// A positive log entry announces the new level
	assert.Len(t, user.ActivityLog, 1)
	assert.True(t, user.ActivityLog[0].IsPositive)
	assert.Contains(t, user.ActivityLog[0].Message, "Level 2")
}

func TestApplyLevelUpsMultipleLevels(t *testing.T) {
	cfg := config.DefaultConfig().Game
	user := newUser(cfg, "u1", "Agent", 1)

	// Enough to clear level 1 (1000) and level 2 (1500) in one grant
	user.XP = 2600

	levels := applyLevelUps(cfg, user)

	assert.Equal(t, 2, levels)
	assert.Equal(t, 3, user.Level)
	assert.Equal(t, 100, user.XP)
	assert.Equal(t, 2250, user.XPToNextLevel)
	assert.Equal(t, 120, user.MaxStamina)
	assert.Equal(t, 120, user.Stamina)
	assert.Len(t, user.ActivityLog, 2)
	// Most recent entry first
	assert.Contains(t, user.ActivityLog[0].Message, "Level 3")
	assert.Contains(t, user.ActivityLog[1].Message, "Level 2")
}

func TestApplyLevelUpsNoThresholdMet(t *testing.T) {
	cfg := config.DefaultConfig().Game
	user := newUser(cfg, "u1", "Agent", 1)
	user.XP = 999

	levels := applyLevelUps(cfg, user)

	assert.Equal(t, 0, levels)
	assert.Equal(t, 1, user.Level)
	assert.Equal(t, 999, user.XP)
	assert.Len(t, user.ActivityLog, 0)
}

func TestXPInvariantAfterRepeatedGrants(t *testing.T) {
	cfg := config.DefaultConfig().Game
	user := newUser(cfg, "u1", "Agent", 1)

	// Grant a stream of uneven rewards; the invariant must hold after
	// every application.
	for _, grant := range []int{10, 990, 75, 3000, 1, 4999, 123} {
		user.XP += grant
		applyLevelUps(cfg, user)

		assert.GreaterOrEqual(t, user.XP, 0)
		assert.Less(t, user.XP, user.XPToNextLevel)
		assert.Equal(t, xpThreshold(cfg, user.Level), user.XPToNextLevel)
	}
}
