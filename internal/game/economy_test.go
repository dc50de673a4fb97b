package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user/brain-heist/config"
	"github.com/user/brain-heist/internal/types"
)

func staminaRefillItem(value int) *types.ShopItem {
	return &types.ShopItem{
		ID:     "item_1",
		Name:   "Stamina Refill",
		Price:  500,
		Effect: types.ItemEffect{Type: types.EffectStaminaRefill, Value: value},
	}
}

func TestApplyPurchaseRejectedWhenUnaffordable(t *testing.T) {
	cfg := config.DefaultConfig().Game
	user := newUser(cfg, "u1", "Agent", 1)
	user.Creds = 400
	user.Stamina = 10

	ok := applyPurchase(user, staminaRefillItem(50))

	// Rejection is atomic: no debit, no effect, no log entry
	assert.False(t, ok)
	assert.Equal(t, 400, user.Creds)
	assert.Equal(t, 10, user.Stamina)
	assert.Len(t, user.ActivityLog, 0)
}

func TestApplyPurchaseDebitsExactPrice(t *testing.T) {
	cfg := config.DefaultConfig().Game
	user := newUser(cfg, "u1", "Agent", 1)
	user.Creds = 500
	user.Stamina = 20

	ok := applyPurchase(user, staminaRefillItem(50))

	assert.True(t, ok)
	assert.Equal(t, 0, user.Creds)
	assert.Equal(t, 70, user.Stamina)
	assert.Len(t, user.ActivityLog, 1)
	assert.True(t, user.ActivityLog[0].IsPositive)
	assert.Contains(t, user.ActivityLog[0].Message, "Stamina Refill")
}

func TestApplyPurchaseStaminaRefillCappedAtMax(t *testing.T) {
	cfg := config.DefaultConfig().Game
	user := newUser(cfg, "u1", "Agent", 1)
	user.Creds = 1000
	user.Stamina = 80

	ok := applyPurchase(user, staminaRefillItem(50))

	assert.True(t, ok)
	assert.Equal(t, user.MaxStamina, user.Stamina)
}

func TestApplyPurchaseBoostStoredInert(t *testing.T) {
	cfg := config.DefaultConfig().Game
	user := newUser(cfg, "u1", "Agent", 1)
	user.Creds = 2500
	user.HackingSkill = 10

	boost := &types.ShopItem{
		ID:     "item_2",
		Name:   "Data Spike",
		Price:  1000,
		Effect: types.ItemEffect{Type: types.EffectHackingBoost, Value: 20, Duration: 600000},
	}

	ok := applyPurchase(user, boost)
	assert.True(t, ok)
	assert.Equal(t, 1500, user.Creds)

	// The boost lands in the inventory with its declared payload but
	// never mutates the skill itself.
	assert.Equal(t, 10, user.HackingSkill)
	assert.Len(t, user.Inventory, 1)
	assert.Equal(t, "item_2", user.Inventory[0].ID)
	assert.Equal(t, 1, user.Inventory[0].Quantity)
	assert.Equal(t, types.EffectHackingBoost, user.Inventory[0].Effect.Type)

	// A second purchase stacks quantity instead of duplicating the entry
	ok = applyPurchase(user, boost)
	assert.True(t, ok)
	assert.Len(t, user.Inventory, 1)
	assert.Equal(t, 2, user.Inventory[0].Quantity)
}
