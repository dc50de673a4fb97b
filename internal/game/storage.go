package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/user/brain-heist/internal/interfaces"
	"github.com/user/brain-heist/internal/types"
)

// FileStore persists game states as one JSON file per identity.
type FileStore struct {
	dataDir   string
	stateLock sync.RWMutex
}

var _ interfaces.Store = (*FileStore)(nil)

// NewFileStore creates a file-backed store rooted at dataDir
func NewFileStore(dataDir string) *FileStore {
	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		// If we can't create the directory, fall back to the default path
		dataDir = "./data"
	}

	return &FileStore{
		dataDir: dataDir,
	}
}

func (fs *FileStore) statePath(userID string) string {
	return filepath.Join(fs.dataDir, fmt.Sprintf("game_state_%s.json", userID))
}

// Save writes the game state to disk
func (fs *FileStore) Save(userID string, state *types.GameState) error {
	fs.stateLock.Lock()
	defer fs.stateLock.Unlock()

	if err := os.MkdirAll(fs.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	if err := os.WriteFile(fs.statePath(userID), data, 0644); err != nil {
		return fmt.Errorf("failed to write game state: %w", err)
	}

	return nil
}

// Load reads the game state from disk. A missing file is not an error:
// it returns (nil, nil) so the caller can bootstrap a fresh world.
func (fs *FileStore) Load(userID string) (*types.GameState, error) {
	fs.stateLock.RLock()
	defer fs.stateLock.RUnlock()

	path := fs.statePath(userID)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game state file: %w", err)
	}

	var state types.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse game state: %w", err)
	}

	normalizeState(&state)
	return &state, nil
}

// normalizeState ensures slices deserialized from older saves are
// initialized.
func normalizeState(state *types.GameState) {
	if state.Rivals == nil {
		state.Rivals = make([]*types.User, 0)
	}
	if state.Tasks == nil {
		state.Tasks = make([]*types.Task, 0)
	}
	if state.ShopItems == nil {
		state.ShopItems = make([]*types.ShopItem, 0)
	}
	if state.User != nil {
		if state.User.Inventory == nil {
			state.User.Inventory = make([]types.InventoryItem, 0)
		}
		if state.User.ActivityLog == nil {
			state.User.ActivityLog = make([]types.ActivityLogEntry, 0)
		}
	}
}
