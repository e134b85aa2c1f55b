package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nivgold/shopping-list/internal/category/app"
	"github.com/nivgold/shopping-list/internal/category/domain"
)

type Handler struct {
	svc *app.Service
	log *slog.Logger
	dev bool
}

func NewHandler(svc *app.Service, log *slog.Logger, dev bool) *Handler {
	return &Handler{svc: svc, log: log, dev: dev}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/categories", h.list)
	r.POST("/categories", h.create)
}

type categoryResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

func (h *Handler) list(c *gin.Context) {
	categories, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.internalErr(c, "Failed to fetch categories", err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, toResponse(cat))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	category, err := h.svc.Register(c.Request.Context(), req.Name)
	if err != nil {
		h.writeErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(category))
}

func (h *Handler) writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name must be between 2 and 50 characters"})
	case errors.Is(err, app.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
	default:
		h.internalErr(c, "Failed to create category", err)
	}
}

// internalErr hides store details from the caller outside dev mode.
func (h *Handler) internalErr(c *gin.Context, msg string, err error) {
	h.log.Error(msg,
		slog.Any("err", err),
		slog.String("request_id", c.GetString("request_id")),
	)

	body := gin.H{"error": msg}
	if h.dev {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

func toResponse(cat domain.Category) categoryResponse {
	return categoryResponse{
		ID:        cat.ID,
		Name:      cat.Name,
		CreatedAt: cat.CreatedAt,
	}
}
