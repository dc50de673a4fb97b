package game

import (
	"fmt"
	"math"

	"github.com/user/brain-heist/config"
	"github.com/user/brain-heist/internal/types"
)

// xpThreshold returns the xp required to clear the given level.
func xpThreshold(cfg config.GameConfig, level int) int {
	return int(math.Floor(float64(cfg.LevelUpXPBase) * math.Pow(cfg.LevelUpXPMultiplier, float64(level-1))))
}

// applyLevelUps promotes the user while their xp meets the current
// threshold and returns the number of levels gained. A single large
// reward can clear several thresholds in one call; the loop terminates
// because the threshold strictly grows and xp strictly shrinks per
// iteration. Each level grants a stamina cap bonus, a full stamina
// refill, +1 to both skills, and a positive log entry.
func applyLevelUps(cfg config.GameConfig, user *types.User) int {
	levels := 0
	for user.XPToNextLevel > 0 && user.XP >= user.XPToNextLevel {
		user.Level++
		user.XP -= user.XPToNextLevel
		user.XPToNextLevel = xpThreshold(cfg, user.Level)
		user.MaxStamina += cfg.LevelUpStaminaBonus
		user.Stamina = user.MaxStamina
		user.HackingSkill++
		user.SecuritySkill++
		prependLog(user, fmt.Sprintf("Congratulations! You reached Level %d! Stamina refilled and skills increased.", user.Level), true)
		levels++
	}
	return levels
}
