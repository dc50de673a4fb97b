package types

// TaskCategory is one of the fixed study subjects tasks are grouped under.
type TaskCategory string

// The closed set of task categories.
const (
	CategoryScience           TaskCategory = "Science"
	CategoryMaths             TaskCategory = "Maths"
	CategoryEnglish           TaskCategory = "English"
	CategoryGlobalPerspective TaskCategory = "Global Perspective"
	CategoryRussianLanguage   TaskCategory = "Russian Language"
	CategoryRussianLiterature TaskCategory = "Russian Literature"
	CategoryGermanLanguage    TaskCategory = "German Language"
	CategoryGeography         TaskCategory = "Geography"
	CategoryKyrgyzLanguage    TaskCategory = "Kyrgyz Language"
	CategoryKyrgyzHistory     TaskCategory = "Kyrgyz History"
)

// TaskCategories lists every category in catalog order.
var TaskCategories = []TaskCategory{
	CategoryScience,
	CategoryMaths,
	CategoryEnglish,
	CategoryGlobalPerspective,
	CategoryRussianLanguage,
	CategoryRussianLiterature,
	CategoryGermanLanguage,
	CategoryGeography,
	CategoryKyrgyzLanguage,
	CategoryKyrgyzHistory,
}

// TaskKind distinguishes how a task is completed.
type TaskKind string

const (
	// TaskSimple completes immediately on submission.
	TaskSimple TaskKind = "simple"
	// TaskTrivia requires an oracle-verified answer before completion.
	TaskTrivia TaskKind = "trivia"
)

// EffectType tags the closed set of shop item effect variants.
type EffectType string

const (
	EffectStaminaRefill EffectType = "STAMINA_REFILL"
	EffectHackingBoost  EffectType = "HACKING_BOOST"
	EffectSecurityBoost EffectType = "SECURITY_BOOST"
)

// ItemEffect is the per-variant payload of a shop item.
type ItemEffect struct {
	Type EffectType `json:"type"`
	// Value is the stamina amount for refills, or the boost percentage.
	Value int `json:"value"`
	// Duration is the boost lifetime in milliseconds. Zero for refills.
	Duration int64 `json:"duration,omitempty"`
}

// ShopItem is an immutable catalog entry purchasable for creds.
type ShopItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       int        `json:"price"`
	Effect      ItemEffect `json:"effect"`
}

// InventoryItem is a shop item owned by a user, with a stack count.
type InventoryItem struct {
	ShopItem
	Quantity int `json:"quantity"`
}

// TaskReward is the creds/xp pair granted on task completion.
type TaskReward struct {
	Creds int `json:"creds"`
	XP    int `json:"xp"`
}

// Task is a completable objective from the fixed catalog.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    TaskCategory `json:"category"`
	Kind        TaskKind     `json:"kind"`
	// Topic overrides the category as the oracle query subject.
	Topic  string     `json:"topic,omitempty"`
	Reward TaskReward `json:"reward"`
	// IsCompleted is monotonic: once true it never reverts.
	IsCompleted bool `json:"is_completed"`
}

// ActivityLogEntry is an append-only audit record on a user.
type ActivityLogEntry struct {
	ID         string `json:"id"`
	Timestamp  int64  `json:"timestamp"`
	Message    string `json:"message"`
	IsPositive bool   `json:"is_positive"`
}

// ActivityLogDisplayLimit is how many recent entries the presentation
// layer shows. Storage keeps the full history.
const ActivityLogDisplayLimit = 50

// User is a player or rival agent.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`

	Level         int `json:"level"`
	XP            int `json:"xp"`
	XPToNextLevel int `json:"xp_to_next_level"`
	HackingSkill  int `json:"hacking_skill"`
	SecuritySkill int `json:"security_skill"`

	Creds      int `json:"creds"`
	Stamina    int `json:"stamina"`
	MaxStamina int `json:"max_stamina"`

	Inventory   []InventoryItem    `json:"inventory"`
	ActivityLog []ActivityLogEntry `json:"activity_log"`
}

// GameState is the aggregate persisted per identity: the player, the
// rival snapshots, and the task and shop catalogs.
type GameState struct {
	User      *User       `json:"user"`
	Rivals    []*User     `json:"rivals"`
	Tasks     []*Task     `json:"tasks"`
	ShopItems []*ShopItem `json:"shop_items"`
}
