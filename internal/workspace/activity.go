package workspace

import (
	"time"

	"github.com/existflow/kerja/internal/model"
)

// logActivity prepends an audit entry attributed to the session identity and
// truncates the log to its bound. Without an active session the call is a
// silent no-op; activity is never attributed to an anonymous actor. The
// actor's name and avatar are snapshotted so later profile edits leave
// history untouched.
func (ws *Workspace) logActivity(action, target, typ string) {
	actor := ws.findUser(ws.currentID)
	if actor == nil {
		return
	}

	entry := model.ActivityLog{
		ID:         ws.newID(),
		UserID:     actor.ID,
		UserName:   actor.Name,
		UserAvatar: actor.Avatar,
		Action:     action,
		Target:     target,
		Type:       typ,
		Timestamp:  ws.now().UTC().Format(time.RFC3339),
	}

	keep := ws.activities
	if len(keep) > model.MaxActivities-1 {
		keep = keep[:model.MaxActivities-1]
	}
	ws.activities = append([]model.ActivityLog{entry}, keep...)
}
