package api

import (
	"errors"
	"net/http"

	reqdto "luna-storefront/internal/handler/dto/request"
	resdto "luna-storefront/internal/handler/dto/response"
	"luna-storefront/internal/handler/httperr"
	"luna-storefront/internal/handler/middleware"
	"luna-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds usecase.CheckoutCommands
}

func NewCheckoutHandler(cmds usecase.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Quote(req.ToInput())
	if err != nil {
		h.abortQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(result))
}

func (h *CheckoutHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "Unauthorized", nil)
		return
	}
	var req reqdto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Submit(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		h.abortSubmitError(c, err)
		return
	}
	// a failed payment is still a settled session; the app reads the state
	c.JSON(http.StatusOK, resdto.FromSession(view))
}

func (h *CheckoutHandler) Retry(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "Unauthorized", nil)
		return
	}

	view, err := h.cmds.Retry(c.Request.Context(), userID)
	if err != nil {
		h.abortSubmitError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(view))
}

func (h *CheckoutHandler) Dismiss(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "Unauthorized", nil)
		return
	}

	result, err := h.cmds.Dismiss(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNothingToDismiss) {
			httperr.AbortWithError(c, http.StatusConflict, err, "No finished payment to dismiss", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.DismissResponse{Navigate: result.Navigate})
}

func (h *CheckoutHandler) Session(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "Unauthorized", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(h.cmds.Session(userID)))
}

func (h *CheckoutHandler) abortQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Your cart is empty", nil)
	case errors.Is(err, usecase.ErrInvalidCartLine):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cart line", nil)
	case errors.Is(err, usecase.ErrInvalidVoucher):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Voucher cannot be applied", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func (h *CheckoutHandler) abortSubmitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Your cart is empty", nil)
	case errors.Is(err, usecase.ErrInvalidCartLine):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cart line", nil)
	case errors.Is(err, usecase.ErrInvalidVoucher):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Voucher cannot be applied", nil)
	case errors.Is(err, usecase.ErrMissingName):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Please enter your name", nil)
	case errors.Is(err, usecase.ErrMissingPhone):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Please enter your phone number", nil)
	case errors.Is(err, usecase.ErrMissingAddress):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Please enter your address", nil)
	case errors.Is(err, usecase.ErrPaymentInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "A payment is already processing", nil)
	case errors.Is(err, usecase.ErrAttemptNotIdle):
		httperr.AbortWithError(c, http.StatusConflict, err, "Dismiss the previous attempt first", nil)
	case errors.Is(err, usecase.ErrNoFailedAttempt):
		httperr.AbortWithError(c, http.StatusConflict, err, "There is no failed payment to retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
