package api

import (
	"errors"
	"net/http"

	resdto "luna-storefront/internal/handler/dto/response"
	"luna-storefront/internal/handler/httperr"
	"luna-storefront/internal/handler/middleware"
	"luna-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	q usecase.OrderQueries
}

func NewOrderHandler(q usecase.OrderQueries) *OrderHandler {
	return &OrderHandler{q: q}
}

func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "Unauthorized", nil)
		return
	}

	number := c.Param("number")
	record, err := h.q.Get(c.Request.Context(), userID, number)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, usecase.ErrOrderUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Order details are temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrder(record))
}
