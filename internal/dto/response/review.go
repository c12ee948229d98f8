package response

import (
	"fmt"
	"strconv"
	"time"

	"runup-api/internal/data/repository"
)

type CommentResponse struct {
	ID        string    `json:"id"`
	MediaID   string    `json:"media_id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
	IsGuest   bool      `json:"is_guest"`
	UserID    *string   `json:"user_id"`
}

// RatingSummary is always fully populated: every bucket 1-5 present,
// averageRating a one-decimal string ("0.0" for an empty group).
type RatingSummary struct {
	TotalReviews  int            `json:"totalReviews"`
	AverageRating string         `json:"averageRating"`
	RatingCounts  map[string]int `json:"ratingCounts"`
}

type ReviewSummary struct {
	Guest RatingSummary `json:"guest"`
	User  RatingSummary `json:"user"`
}

type ReviewListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Summary  ReviewSummary     `json:"summary"`
}

type SubmitReviewResponse struct {
	Success bool `json:"success"`
}

// CommentToResponse resolves the display author: guest comments show
// the stored name, user comments show the account's current username.
func CommentToResponse(c *repository.CommentWithUser) CommentResponse {
	author := c.Author
	if !c.IsGuest {
		if c.Username != nil {
			author = *c.Username
		} else {
			author = "Unknown User"
		}
	}

	var userID *string
	if c.UserID != nil {
		s := c.UserID.String()
		userID = &s
	}

	return CommentResponse{
		ID:        c.ID.String(),
		MediaID:   c.MediaID,
		Author:    author,
		Rating:    c.Rating,
		Comment:   c.Comment.Comment,
		Timestamp: c.CreatedAt,
		IsGuest:   c.IsGuest,
		UserID:    userID,
	}
}

// SummarizeRatings computes count, mean and histogram for one group of
// comments. Out-of-range ratings from legacy rows land in no bucket but
// still count toward the mean.
func SummarizeRatings(comments []CommentResponse) RatingSummary {
	counts := make(map[string]int, 5)
	for rating := 1; rating <= 5; rating++ {
		counts[strconv.Itoa(rating)] = 0
	}

	total := 0
	sum := 0
	for _, c := range comments {
		total++
		sum += c.Rating
		if c.Rating >= 1 && c.Rating <= 5 {
			counts[strconv.Itoa(c.Rating)]++
		}
	}

	average := 0.0
	if total > 0 {
		average = float64(sum) / float64(total)
	}

	return RatingSummary{
		TotalReviews:  total,
		AverageRating: fmt.Sprintf("%.1f", average),
		RatingCounts:  counts,
	}
}
