package api

import (
	"errors"
	"net/http"

	"luna-storefront/internal/domain/wallet"
	reqdto "luna-storefront/internal/handler/dto/request"
	resdto "luna-storefront/internal/handler/dto/response"
	"luna-storefront/internal/handler/httperr"
	"luna-storefront/internal/handler/middleware"
	"luna-storefront/internal/infra"
	"luna-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	ledger usecase.LedgerService
}

func NewWalletHandler(ledger usecase.LedgerService) *WalletHandler {
	return &WalletHandler{ledger: ledger}
}

func (h *WalletHandler) Overview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "Unauthorized", nil)
		return
	}

	overview, err := h.ledger.Overview(c.Request.Context(), userID)
	if err != nil {
		h.abortWalletError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverview(overview))
}

func (h *WalletHandler) Transactions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "Unauthorized", nil)
		return
	}

	overview, err := h.ledger.Overview(c.Request.Context(), userID)
	if err != nil {
		h.abortWalletError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": resdto.FromOverview(overview).Transactions})
}

func (h *WalletHandler) Purchases(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "Unauthorized", nil)
		return
	}

	overview, err := h.ledger.Overview(c.Request.Context(), userID)
	if err != nil {
		h.abortWalletError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchases": resdto.FromOverview(overview).Purchases})
}

func (h *WalletHandler) SendGift(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "Unauthorized", nil)
		return
	}
	var req reqdto.SendGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	code, overview, err := h.ledger.SendGift(c.Request.Context(), userID, req.Recipient, req.Points, req.Note)
	if err != nil {
		h.abortWalletError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGift(code, overview))
}

func (h *WalletHandler) Redeem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "Unauthorized", nil)
		return
	}
	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	outcome, overview, err := h.ledger.Redeem(c.Request.Context(), userID, req.Code)
	if err != nil {
		h.abortWalletError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedeem(outcome, overview))
}

// abortWalletError maps ledger errors onto HTTP statuses. Upstream rejections
// keep the upstream's own message so the app can show it verbatim.
func (h *WalletHandler) abortWalletError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wallet.ErrEmptyRecipient),
		errors.Is(err, wallet.ErrInvalidRecipient),
		errors.Is(err, wallet.ErrAmbiguousRecipient):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Enter a valid email or phone number", nil)
	case errors.Is(err, wallet.ErrMalformedCode):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "That code is not recognized", nil)
	case errors.Is(err, wallet.ErrInvalidPoints):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Points must be a positive amount", nil)
	case errors.Is(err, wallet.ErrInsufficientBalance):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "You do not have enough points", nil)
	case errors.Is(err, wallet.ErrBalanceUnknown):
		httperr.AbortWithError(c, http.StatusConflict, err, "Your balance is still loading, try again", nil)
	case errors.Is(err, usecase.ErrGiftRejected), errors.Is(err, usecase.ErrRedeemRejected):
		msg := infra.GatewayMessage(err)
		if msg == "" {
			msg = "The request was rejected"
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msg, nil)
	case errors.Is(err, usecase.ErrWalletUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Wallet is temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
