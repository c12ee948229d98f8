package request

// CreateReviewRequest serves both guests and authenticated users.
// Author is only consulted on the guest path; for authenticated
// submissions the display name always comes from the user record.
type CreateReviewRequest struct {
	ItemID  string `json:"itemId" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=2000"`
	Author  string `json:"author,omitempty" validate:"omitempty,max=100"`
}
