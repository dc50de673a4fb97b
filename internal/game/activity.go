package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/user/brain-heist/internal/types"
)

// prependLog records an activity entry on the user, most recent first.
func prependLog(user *types.User, message string, positive bool) {
	entry := types.ActivityLogEntry{
		ID:         "log_" + uuid.New().String(),
		Timestamp:  time.Now().UnixMilli(),
		Message:    message,
		IsPositive: positive,
	}
	user.ActivityLog = append([]types.ActivityLogEntry{entry}, user.ActivityLog...)
}
