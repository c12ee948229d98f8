package request

// BulkDeleteRequest removes every comment matching one criterion:
// author display name, media id, or user id.
type BulkDeleteRequest struct {
	DeleteType string `json:"deleteType" validate:"required"`
	Value      string `json:"value" validate:"required"`
}
