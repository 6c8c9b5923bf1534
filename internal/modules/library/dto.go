package library

import "cinelog/internal/domain"

type MovieIDRequest struct {
	MovieID int `json:"movieId" binding:"required"`
}

type FeedbackRequest struct {
	MovieID int     `json:"movieId"`
	Rating  *int    `json:"rating"`
	Content *string `json:"content"`
}

type DisplayNameRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
}

// FeedbackInput carries only the fields the caller actually supplied; nil
// means "leave untouched" on the update path and "absent" on the create path.
type FeedbackInput struct {
	Rating  *int
	Content *string
}

// WatchedResponse is the wire shape of one watched entry.
type WatchedResponse struct {
	MovieID     int             `json:"movieId"`
	IsFavorited bool            `json:"isFavorited"`
	Feedback    domain.Feedback `json:"feedback"`
}

func ToWatchedResponse(w *domain.Watched) WatchedResponse {
	return WatchedResponse{
		MovieID:     w.MovieID,
		IsFavorited: w.IsFavorited,
		Feedback:    w.Feedback,
	}
}

func ToWatchedResponses(records []domain.Watched) []WatchedResponse {
	out := make([]WatchedResponse, 0, len(records))
	for i := range records {
		out = append(out, ToWatchedResponse(&records[i]))
	}
	return out
}
