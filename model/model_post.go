package model

import "time"

type Post struct {
	ID            int64     `db:"id"`
	Username      string    `db:"username"`
	Content       string    `db:"content"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	LikesCount    int       `db:"likes_count"`
	CommentsCount int       `db:"comments_count"`
}
