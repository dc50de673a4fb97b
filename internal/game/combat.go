package game

import (
	"fmt"
	"math"

	"github.com/user/brain-heist/config"
	"github.com/user/brain-heist/internal/types"
)

// MsgInsufficientStamina is returned verbatim when a hack is attempted
// below the stamina cost.
const MsgInsufficientStamina = "Critical Error: Insufficient Stamina."

const (
	hackSkillFactor = 0.05
	hackMinChance   = 0.10
	hackMaxChance   = 0.90
)

// hackSuccessChance computes the clamped success probability for an
// attacker/target skill pairing.
func hackSuccessChance(hackingSkill, securitySkill int) float64 {
	chance := 0.5 + float64(hackingSkill-securitySkill)*hackSkillFactor
	return math.Max(hackMinChance, math.Min(hackMaxChance, chance))
}

// resolveHack debits the stamina cost, resolves the outcome against the
// given uniform sample, and applies rewards to the attacker. The caller
// has already verified the stamina precondition. The target's stored
// balance is never mutated: a successful hack credits the attacker with
// a cut of the target's current creds without debiting the target.
func resolveHack(cfg config.GameConfig, attacker, target *types.User, sample float64) (string, bool) {
	attacker.Stamina -= cfg.HackStaminaCost

	chance := hackSuccessChance(attacker.HackingSkill, target.SecuritySkill)
	if sample < chance {
		stolen := int(math.Floor(float64(target.Creds) * cfg.HackCredStealPercentage))
		attacker.Creds += stolen
		attacker.XP += cfg.HackSuccessXP
		msg := fmt.Sprintf("Success! Siphoned %d creds from %s.", stolen, target.Username)
		prependLog(attacker, msg, true)
		return msg, true
	}

	attacker.XP += cfg.HackFailureXP
	msg := fmt.Sprintf("Failure! %s's defenses were too strong.", target.Username)
	prependLog(attacker, msg, false)
	return msg, false
}
