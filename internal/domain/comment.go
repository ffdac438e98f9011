package domain

import "time"

// Comment represents a comment on a video. VideoID and OwnerID are set at
// creation and never change; CreatedAt is the sole sort key for listings.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	VideoID   string    `json:"video_id"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentView is a comment as served to readers, with the author resolved to
// a public profile. Owner is nil when the authoring account no longer exists.
type CommentView struct {
	ID        string       `json:"id"`
	Content   string       `json:"content"`
	Owner     *UserProfile `json:"owner"`
	CreatedAt time.Time    `json:"created_at"`
}

// CommentPage is one page of a video's comments. TotalCount counts all
// comments on the video, independent of the page slice.
type CommentPage struct {
	Items      []CommentView `json:"items"`
	TotalCount int64         `json:"total_count"`
}
