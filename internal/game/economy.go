package game

import (
	"fmt"

	"github.com/user/brain-heist/internal/types"
)

// applyPurchase debits the item price from the user and applies its
// effect. Returns false without any mutation when the user cannot
// afford the item.
func applyPurchase(user *types.User, item *types.ShopItem) bool {
	if user.Creds < item.Price {
		return false
	}

	user.Creds -= item.Price
	prependLog(user, fmt.Sprintf("Purchased %s for %d creds.", item.Name, item.Price), true)

	switch item.Effect.Type {
	case types.EffectStaminaRefill:
		user.Stamina = min(user.Stamina+item.Effect.Value, user.MaxStamina)
	case types.EffectHackingBoost, types.EffectSecurityBoost:
		// Boosts are stored in the inventory for the presentation layer
		// to interpret. No activation timer runs here.
		addToInventory(user, item)
	}

	return true
}

// addToInventory appends the item to the user's inventory, stacking
// quantity when the item is already owned.
func addToInventory(user *types.User, item *types.ShopItem) {
	for i := range user.Inventory {
		if user.Inventory[i].ID == item.ID {
			user.Inventory[i].Quantity++
			return
		}
	}
	user.Inventory = append(user.Inventory, types.InventoryItem{
		ShopItem: *item,
		Quantity: 1,
	})
}
