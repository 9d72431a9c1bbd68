package audit

import "time"

type listInput struct {
	Limit  int `query:"limit" default:"100" minimum:"0" doc:"Max entries to return, 0 for all"`
	Offset int `query:"offset" default:"0" minimum:"0"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Entries []EntryResponse `json:"entries"`
	Total   int             `json:"total"`
}

type EntryResponse struct {
	ID        int64     `json:"id"`
	ActorID   int       `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type exportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}
