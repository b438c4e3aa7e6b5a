package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/cinelog/cinelog/internal/service"
	"github.com/cinelog/cinelog/internal/store"
	"github.com/cinelog/cinelog/pkg/middleware"
)

type MovieHandler struct {
	catalogue *service.CatalogueService
	reviews   *service.ReviewService
}

func NewMovieHandler(catalogue *service.CatalogueService, reviews *service.ReviewService) *MovieHandler {
	return &MovieHandler{catalogue: catalogue, reviews: reviews}
}

type CreateMovieRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type UpdateMovieRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
}

type AddReviewRequest struct {
	Comment string  `json:"comment"`
	Rate    float64 `json:"rate" binding:"gte=0,lte=5"`
}

func movieID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func (h *MovieHandler) Create(c *gin.Context) {
	var req CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failJSON("Invalid request parameters"))
		return
	}

	movie, err := h.catalogue.Create(c.Request.Context(), service.MovieInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, failJSON(genericErrorMessage))
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true, Data: movie})
}

func (h *MovieHandler) Find(c *gin.Context) {
	id, ok := movieID(c, "id")
	if !ok {
		return
	}

	movie, err := h.catalogue.Find(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, failJSON(genericErrorMessage))
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true, Data: movie})
}

func (h *MovieHandler) Update(c *gin.Context) {
	id, ok := movieID(c, "id")
	if !ok {
		return
	}

	var req UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failJSON("Invalid request parameters"))
		return
	}

	patch := store.MoviePatch{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := h.catalogue.Update(c.Request.Context(), id, patch); err != nil {
		c.JSON(http.StatusInternalServerError, failJSON(genericErrorMessage))
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true})
}

func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := movieID(c, "id")
	if !ok {
		return
	}

	if err := h.catalogue.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, failJSON(genericErrorMessage))
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true})
}

func (h *MovieHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))

	movies, pages, err := h.catalogue.List(c.Request.Context(), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, failJSON(genericErrorMessage))
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true, Pages: pages, Data: movies})
}

func (h *MovieHandler) AddReview(c *gin.Context) {
	id, ok := movieID(c, "id")
	if !ok {
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failJSON("Invalid request parameters"))
		return
	}

	err := h.reviews.AddReview(c.Request.Context(), id, middleware.UserID(c), req.Comment, req.Rate)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, store.ErrDuplicateReview):
		c.JSON(http.StatusForbidden, failJSON("Review is already added."))
	case err != nil:
		c.JSON(http.StatusInternalServerError, failJSON(genericErrorMessage))
	default:
		c.JSON(http.StatusCreated, APIResponse{Success: true})
	}
}

func (h *MovieHandler) Reviews(c *gin.Context) {
	id, ok := movieID(c, "id")
	if !ok {
		return
	}

	entries, err := h.reviews.ListReviews(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, failJSON(genericErrorMessage))
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true, Data: entries})
}

// Import reads an uploaded .xlsx of movies (name | category | description,
// header row first) and creates one catalogue entry per well-formed row.
func (h *MovieHandler) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, failJSON("File is required"))
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, failJSON(genericErrorMessage))
		return
	}
	defer f.Close()

	xlsx, err := excelize.OpenReader(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, failJSON("Invalid Excel file"))
		return
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(xlsx.GetSheetName(0))
	if err != nil {
		c.JSON(http.StatusBadRequest, failJSON("Failed to read sheet"))
		return
	}

	inputs := make([]service.MovieInput, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 3 {
			continue
		}
		inputs = append(inputs, service.MovieInput{
			Name:        row[0],
			Category:    row[1],
			Description: row[2],
		})
	}

	imported, err := h.catalogue.Import(c.Request.Context(), inputs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, failJSON(genericErrorMessage))
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true, Data: gin.H{"imported": imported}})
}
