package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog/internal/service"
	"github.com/cinelog/cinelog/pkg/middleware"
)

type WatchlistHandler struct {
	watchlist *service.WatchlistService
}

func NewWatchlistHandler(watchlist *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{watchlist: watchlist}
}

type WatchlistAddRequest struct {
	Movie   int64 `json:"movie" binding:"required"`
	Watched bool  `json:"watched"`
}

func (h *WatchlistHandler) Add(c *gin.Context) {
	var req WatchlistAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failJSON("Invalid request parameters"))
		return
	}

	user, err := h.watchlist.Upsert(c.Request.Context(), middleware.UserID(c), req.Movie, req.Watched)
	if err != nil {
		c.JSON(http.StatusInternalServerError, failJSON(genericErrorMessage))
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true, Data: user})
}

func (h *WatchlistHandler) Remove(c *gin.Context) {
	id, ok := movieID(c, "movie")
	if !ok {
		return
	}

	if err := h.watchlist.Remove(c.Request.Context(), middleware.UserID(c), id); err != nil {
		c.JSON(http.StatusInternalServerError, failJSON(genericErrorMessage))
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true})
}

func (h *WatchlistHandler) List(c *gin.Context) {
	entries, err := h.watchlist.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, failJSON(genericErrorMessage))
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true, Data: entries})
}
