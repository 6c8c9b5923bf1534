package profile

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.GetOwnProfile)
	rg.GET("/uid/:userId", h.GetUserProfile)
}

func (h *Handler) GetOwnProfile(c *gin.Context) {
	p, err := h.svc.GetOwnProfile(c.Request.Context(), c.GetString(middleware.ContextUID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) GetUserProfile(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	p, err := h.svc.GetUserProfile(c.Request.Context(), c.GetString(middleware.ContextUID), targetID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidUserID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
	case errors.Is(err, ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again later"})
	}
}
