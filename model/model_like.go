package model

import "time"

// Likes are immutable once created, so there is no updated_at.
type Like struct {
	ID        int64     `db:"id"`
	PostID    int64     `db:"post_id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}
