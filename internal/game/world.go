package game

import (
	"fmt"

	"github.com/user/brain-heist/config"
	"github.com/user/brain-heist/internal/types"
)

var rivalNames = []string{"CyberNinja", "DataWraith", "Glitch", "Syntax", "Vector"}

// generateWorld builds the initial game state for a new identity: the
// player at baseline stats, five randomized rival agents, the fixed
// task catalog, and the fixed shop catalog.
func generateWorld(cfg config.GameConfig, dice *DiceRoller, userID, username string) *types.GameState {
	player := generatePlayer(cfg, userID, username)

	rivals := make([]*types.User, 0, len(rivalNames))
	for i, name := range rivalNames {
		rivals = append(rivals, generateRival(cfg, dice, fmt.Sprintf("bot_%d", i+1), name))
	}

	return &types.GameState{
		User:      player,
		Rivals:    rivals,
		Tasks:     generateTasks(),
		ShopItems: generateShopItems(cfg),
	}
}

func generatePlayer(cfg config.GameConfig, id, username string) *types.User {
	user := newUser(cfg, id, username, 1)
	user.Creds = 500
	user.HackingSkill = 10
	user.SecuritySkill = 10
	user.Bio = "A new agent on the scene, ready to make a name for myself in the digital underworld."
	prependLog(user, "Welcome to Brain Heist, agent. Your mission begins now.", true)
	return user
}

func generateRival(cfg config.GameConfig, dice *DiceRoller, id, username string) *types.User {
	user := newUser(cfg, id, username, dice.RollRange(1, 10))
	user.XP = dice.RollRange(0, 1000)
	user.Creds = dice.RollRange(100, 5000)
	user.HackingSkill = dice.RollRange(5, 50)
	user.SecuritySkill = dice.RollRange(5, 50)
	user.Bio = fmt.Sprintf("A mysterious agent known only as %s.", username)
	return user
}

func newUser(cfg config.GameConfig, id, username string, level int) *types.User {
	return &types.User{
		ID:            id,
		Username:      username,
		Email:         fmt.Sprintf("%s@heist.io", username),
		Avatar:        fmt.Sprintf("https://api.dicebear.com/7.x/bottts/svg?seed=%s", username),
		Level:         level,
		XP:            0,
		XPToNextLevel: xpThreshold(cfg, level),
		Stamina:       cfg.MaxStamina,
		MaxStamina:    cfg.MaxStamina,
		Inventory:     make([]types.InventoryItem, 0),
		ActivityLog:   make([]types.ActivityLogEntry, 0),
	}
}

// generateTasks builds the fixed catalog: per category, two simple
// completions and one oracle-backed trivia challenge.
func generateTasks() []*types.Task {
	tasks := make([]*types.Task, 0, len(types.TaskCategories)*3)
	id := 1
	for _, category := range types.TaskCategories {
		tasks = append(tasks, &types.Task{
			ID:          fmt.Sprintf("task_%d", id),
			Title:       fmt.Sprintf("Basic %s Review", category),
			Description: fmt.Sprintf("Brush up on the fundamentals of %s. Quick and easy.", category),
			Category:    category,
			Kind:        types.TaskSimple,
			Reward:      types.TaskReward{Creds: 25, XP: 10},
		})
		id++
		tasks = append(tasks, &types.Task{
			ID:          fmt.Sprintf("task_%d", id),
			Title:       fmt.Sprintf("Advanced %s Study", category),
			Description: fmt.Sprintf("Dive deeper into complex %s topics.", category),
			Category:    category,
			Kind:        types.TaskSimple,
			Reward:      types.TaskReward{Creds: 50, XP: 25},
		})
		id++
		tasks = append(tasks, &types.Task{
			ID:          fmt.Sprintf("task_%d", id),
			Title:       fmt.Sprintf("%s Trivia Challenge", category),
			Description: fmt.Sprintf("Test your knowledge on %s with a challenging question.", category),
			Category:    category,
			Kind:        types.TaskTrivia,
			Topic:       string(category),
			Reward:      types.TaskReward{Creds: 100, XP: 75},
		})
		id++
	}
	return tasks
}

func generateShopItems(cfg config.GameConfig) []*types.ShopItem {
	const boostDuration = int64(10 * 60 * 1000)
	return []*types.ShopItem{
		{
			ID:          "item_1",
			Name:        "Stamina Refill",
			Description: "Instantly restores 50 stamina.",
			Price:       500,
			Effect:      types.ItemEffect{Type: types.EffectStaminaRefill, Value: 50},
		},
		{
			ID:          "item_2",
			Name:        "Data Spike",
			Description: "Boosts Hacking Skill by 20% for the next 10 minutes.",
			Price:       1000,
			Effect:      types.ItemEffect{Type: types.EffectHackingBoost, Value: 20, Duration: boostDuration},
		},
		{
			ID:          "item_3",
			Name:        "Firewall Shield",
			Description: "Boosts Security Skill by 20% for the next 10 minutes.",
			Price:       1000,
			Effect:      types.ItemEffect{Type: types.EffectSecurityBoost, Value: 20, Duration: boostDuration},
		},
		{
			ID:          "item_4",
			Name:        "Full Stamina Restore",
			Description: "Instantly restores all stamina.",
			Price:       800,
			Effect:      types.ItemEffect{Type: types.EffectStaminaRefill, Value: cfg.MaxStamina},
		},
	}
}
