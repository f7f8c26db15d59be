package model

// Activity entry categories
const (
	ActivityTask  = "task"
	ActivityEvent = "event"
	ActivityTeam  = "team"
)

// MaxActivities bounds the activity log; older entries are discarded
const MaxActivities = 50

// ActivityLog is one immutable audit entry. UserName and UserAvatar are
// snapshots of the actor at log time; later profile edits do not rewrite
// history.
type ActivityLog struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar"`
	Action     string `json:"action"`
	Target     string `json:"target"`
	Type       string `json:"type"`
	Timestamp  string `json:"timestamp"`
}
