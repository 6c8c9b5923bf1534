package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the catalog endpoints. Category routes are static
// so they take precedence over the movie-id parameter.
func (h *Handler) RegisterRoutes(movies, genres *gin.RouterGroup) {
	movies.GET("/popular", h.Category)
	movies.GET("/top_rated", h.Category)
	movies.GET("/upcoming", h.Category)
	movies.GET("/now_playing", h.Category)
	movies.GET("/discover", h.Discover)
	movies.GET("/search", h.Search)
	movies.GET("/:id", h.MovieDetails)

	genres.GET("/movie/list", h.Genres)
}

func (h *Handler) Category(c *gin.Context) {
	result, err := h.svc.Category(c.Request.Context(), lastSegment(c.FullPath()), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Discover(c *gin.Context) {
	result, err := h.svc.Discover(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Search(c *gin.Context) {
	result, err := h.svc.Search(c.Request.Context(), c.Query("query"), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Genres(c *gin.Context) {
	result, err := h.svc.Genres(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) MovieDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid movie ID"})
		return
	}

	result, err := h.svc.MovieDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func lastSegment(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
	case errors.Is(err, ErrInvalidMovieID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid movie ID"})
	case errors.Is(err, ErrMissingQuery):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Search query is required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong, please try again later"})
	}
}
