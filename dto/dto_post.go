package dto

type CreatePostRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

type UpdatePostRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

type PostResponse struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Content       string `json:"content"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
	LikesCount    int    `json:"likesCount"`
	CommentsCount int    `json:"commentsCount"`
}
