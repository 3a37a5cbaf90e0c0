package dto

type CreateCommentRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

type UpdateCommentRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

type CommentResponse struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"postId"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
