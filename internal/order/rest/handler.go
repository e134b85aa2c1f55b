package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nivgold/shopping-list/internal/order/app"
	"github.com/nivgold/shopping-list/internal/order/domain"
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
	r.GET("/orders", h.list)
	r.GET("/orders/:id", h.get)
	r.POST("/orders", h.create)
	r.DELETE("/orders/:id", h.delete)
}

type itemPayload struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

type createOrderRequest struct {
	Items []itemPayload `json:"items"`
}

type orderResponse struct {
	ID         string        `json:"_id"`
	Items      []itemPayload `json:"items"`
	TotalItems int           `json:"totalItems"`
	CreatedAt  time.Time     `json:"createdAt"`
}

type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type listOrdersResponse struct {
	Orders     []orderResponse    `json:"orders"`
	Pagination paginationResponse `json:"pagination"`
}

func (h *Handler) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	orders, pg, err := h.svc.List(c.Request.Context(), page, limit)
	if err != nil {
		h.internalErr(c, "Failed to fetch orders", err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toResponse(o))
	}

	c.JSON(http.StatusOK, listOrdersResponse{
		Orders: out,
		Pagination: paginationResponse{
			Page:  pg.Page,
			Limit: pg.Limit,
			Total: pg.Total,
			Pages: pg.Pages,
		},
	})
}

func (h *Handler) get(c *gin.Context) {
	order, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeErr(c, "Failed to fetch order", err)
		return
	}
	c.JSON(http.StatusOK, toResponse(order))
}

func (h *Handler) create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	items := make([]domain.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.Item(it))
	}

	order, err := h.svc.Create(c.Request.Context(), items)
	if err != nil {
		h.writeErr(c, "Failed to create order", err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(order))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeErr(c, "Failed to delete order", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

func (h *Handler) writeErr(c *gin.Context, msg string, err error) {
	var invalidCats *app.InvalidCategoriesError

	switch {
	case errors.Is(err, app.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Items must be a non-empty array"})
	case errors.Is(err, app.ErrInvalidItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &invalidCats):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categories: " + strings.Join(invalidCats.Names, ", ")})
	case errors.Is(err, app.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
	case errors.Is(err, app.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	default:
		h.internalErr(c, msg, err)
	}
}

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

func toResponse(o domain.Order) orderResponse {
	items := make([]itemPayload, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, itemPayload(it))
	}
	return orderResponse{
		ID:         o.ID,
		Items:      items,
		TotalItems: o.TotalItems,
		CreatedAt:  o.CreatedAt,
	}
}
