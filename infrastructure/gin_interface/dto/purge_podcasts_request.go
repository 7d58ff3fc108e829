package dto

import "time"

// PurgePodcastsRequest needs at least one filter; an empty body never purges
// the whole store.
type PurgePodcastsRequest struct {
	UserID        string     `json:"user_id"`
	CreatedBefore *time.Time `json:"created_before"`
}

type PurgePodcastsResponse struct {
	Deleted int `json:"deleted"`
}
