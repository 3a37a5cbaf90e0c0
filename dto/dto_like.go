package dto

type LikeRequest struct {
	Username string `json:"username"`
}

type LikeResponse struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"postId"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}
