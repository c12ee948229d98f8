package response

type AdminReviewsResponse struct {
	Comments []CommentResponse `json:"comments"`
}

type DeleteReviewResponse struct {
	Success bool `json:"success"`
}

type BulkDeleteResponse struct {
	Success      bool  `json:"success"`
	DeletedCount int64 `json:"deletedCount"`
}
