package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tundavala/services/wallet"
)

// WalletHandler serves wallet, ledger and withdrawal endpoints.
type WalletHandler struct {
	WalletService wallet.WalletService
}

// GetWalletHandler handles GET /wallet for guides.
func (h *WalletHandler) GetWalletHandler(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	w, err := h.WalletService.GetWallet(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, w)
}

// GetLedgerHandler handles GET /wallet/transactions.
func (h *WalletHandler) GetLedgerHandler(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	txns, err := h.WalletService.GetLedger(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, txns)
}

// RequestWithdrawalHandler handles POST /wallet/withdrawals.
func (h *WalletHandler) RequestWithdrawalHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input wallet.WithdrawalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	req, err := h.WalletService.RequestWithdrawal(c.Request.Context(), userID, input)
	if err != nil {
		if errors.Is(err, wallet.ErrInsufficientBalance) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Withdrawal request failed", zap.String("guideID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// ListWithdrawalsHandler handles GET /wallet/withdrawals for guides.
func (h *WalletHandler) ListWithdrawalsHandler(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	reqs, err := h.WalletService.ListByGuide(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// Admin endpoints below.

// ListAllWithdrawalsHandler handles GET /admin/withdrawals.
func (h *WalletHandler) ListAllWithdrawalsHandler(c *gin.Context) {
	reqs, err := h.WalletService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// TransitionWithdrawalHandler handles PUT /admin/withdrawals/:id/status.
func (h *WalletHandler) TransitionWithdrawalHandler(c *gin.Context) {
	logger := getLogger(c)

	var input wallet.TransitionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	req, err := h.WalletService.ApplyTransition(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidTransition) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Withdrawal transition failed", zap.String("withdrawalID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}
