package audit

import "time"

// Action kinds recorded in the access log.
const (
	ActionCreateRecord          = "CREATE_RECORD"
	ActionUpdateRecordFull      = "UPDATE_RECORD_FULL"
	ActionUpdateRecordCustodian = "UPDATE_RECORD_CUSTODIAN"
	ActionViewRecord            = "VIEW_RECORD"
	ActionUserLogin             = "USER_LOGIN"
	ActionUserLogout            = "USER_LOGOUT"
)

type Entry struct {
	ID        int64     `json:"id"`
	ActorID   int       `json:"actor_id"`
	ActorName string    `json:"actor_name,omitempty"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
