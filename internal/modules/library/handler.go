package library

import (
	"errors"
	"net/http"
	"strconv"

	"cinelog/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the watch-state endpoints on the authenticated
// /user group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/name", h.UpdateDisplayName)

	rg.POST("/watchlist", h.AddToWatchlist)
	rg.DELETE("/watchlist/:movieId", h.RemoveFromWatchlist)

	rg.POST("/favorites", h.Favorite)
	rg.DELETE("/favorites/:movieId", h.Unfavorite)

	rg.POST("/feedback", h.SubmitFeedback)
	rg.PUT("/feedback/:movieId", h.UpdateFeedback)
	rg.DELETE("/feedback/:movieId", h.RemoveFeedback)

	rg.GET("/watched", h.GetAllWatched)
	rg.GET("/watched/:movieId", h.GetWatchedEntry)
}

func (h *Handler) AddToWatchlist(c *gin.Context) {
	var req MovieIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid movie ID"})
		return
	}

	watchlist, err := h.svc.AddToWatchlist(c.Request.Context(), c.GetString(middleware.ContextUID), req.MovieID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Movie added to watchlist successfully",
		"watchlist": watchlist,
	})
}

func (h *Handler) RemoveFromWatchlist(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	watchlist, err := h.svc.RemoveFromWatchlist(c.Request.Context(), c.GetString(middleware.ContextUID), movieID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Movie removed from watchlist successfully",
		"watchlist": watchlist,
	})
}

func (h *Handler) Favorite(c *gin.Context) {
	var req MovieIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid movie ID"})
		return
	}

	favorited, err := h.svc.SetFavorite(c.Request.Context(), c.GetString(middleware.ContextUID), req.MovieID, true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Movie added to favorites successfully",
		"isFavorited": favorited,
	})
}

func (h *Handler) Unfavorite(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	favorited, err := h.svc.SetFavorite(c.Request.Context(), c.GetString(middleware.ContextUID), movieID, false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Movie removed from favorites successfully",
		"isFavorited": favorited,
	})
}

func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	feedback, err := h.svc.SubmitFeedback(c.Request.Context(), c.GetString(middleware.ContextUID), req.MovieID, FeedbackInput{
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Review and rating submitted successfully",
		"feedback": feedback,
	})
}

func (h *Handler) UpdateFeedback(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	feedback, err := h.svc.UpdateFeedback(c.Request.Context(), c.GetString(middleware.ContextUID), movieID, FeedbackInput{
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Review and rating updated successfully",
		"feedback": feedback,
	})
}

func (h *Handler) RemoveFeedback(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	feedback, err := h.svc.ClearFeedback(c.Request.Context(), c.GetString(middleware.ContextUID), movieID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Review and rating removed successfully",
		"feedback": feedback,
	})
}

func (h *Handler) UpdateDisplayName(c *gin.Context) {
	var req DisplayNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Display name must be at least 2 characters"})
		return
	}

	displayName, err := h.svc.UpdateDisplayName(c.Request.Context(), c.GetString(middleware.ContextUID), req.DisplayName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Display name updated successfully",
		"displayName": displayName,
	})
}

func (h *Handler) GetAllWatched(c *gin.Context) {
	records, err := h.svc.GetAllWatched(c.Request.Context(), c.GetString(middleware.ContextUID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToWatchedResponses(records))
}

func (h *Handler) GetWatchedEntry(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	record, err := h.svc.GetWatchedEntry(c.Request.Context(), c.GetString(middleware.ContextUID), movieID)
	if err != nil {
		respondError(c, err)
		return
	}
	if record == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, ToWatchedResponse(record))
}

func movieIDParam(c *gin.Context) (int, bool) {
	movieID, err := strconv.Atoi(c.Param("movieId"))
	if err != nil || movieID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid movie ID"})
		return 0, false
	}
	return movieID, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidMovieID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid movie ID"})
	case errors.Is(err, ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be between 0-5"})
	case errors.Is(err, ErrInvalidDisplayName):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Display name must be at least 2 characters"})
	case errors.Is(err, ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, ErrNotWatched):
		c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found in watched list"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again later"})
	}
}
