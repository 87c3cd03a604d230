package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Palani4051/Bank/internal/services"
	"github.com/Palani4051/Bank/internal/views"
	"github.com/Palani4051/Bank/pkg"
	"github.com/Palani4051/Bank/pkg/utils"
)

type AccountHandler struct {
	logger  *zap.Logger
	service services.AccountService
}

func NewAccountHandler(logger *zap.Logger, svc services.AccountService) *AccountHandler {
	return &AccountHandler{logger: logger, service: svc}
}

// RegisterRoutes registers account routes on the provided Gin group.
func (h *AccountHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/accounts", h.OpenAccount)
	r.PUT("/accounts/:id/kyc", h.UpdateKYC)
	r.POST("/accounts/:id/deposits", h.Deposit)
	r.POST("/accounts/:id/withdrawals", h.Withdraw)
	r.POST("/transfers", h.Transfer)
	r.POST("/transfers/receive", h.Receive)
	r.GET("/accounts/:id/statement", h.Statement)
	r.POST("/accounts/:id/close", h.CloseAccount)
}

func (h *AccountHandler) OpenAccount(c *gin.Context) {
	traceID, ok := h.traceID(c)
	if !ok {
		return
	}

	var req views.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	accountID, err := h.service.Open(c.Request.Context(), traceID, req)
	if err != nil {
		h.fail(c, traceID, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.APIResponse{
		TraceID: traceID,
		Data: map[string]interface{}{
			"accountId": accountID,
		},
	})
}

func (h *AccountHandler) UpdateKYC(c *gin.Context) {
	traceID, ok := h.traceID(c)
	if !ok {
		return
	}

	var req views.UpdateKYCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	if err := h.service.UpdateKYC(c.Request.Context(), traceID, c.Param("id"), req); err != nil {
		h.fail(c, traceID, err)
		return
	}

	c.JSON(http.StatusOK, pkg.APIResponse{
		TraceID: traceID,
		Data: map[string]interface{}{
			"status": "kyc updated",
		},
	})
}

func (h *AccountHandler) Deposit(c *gin.Context) {
	h.postAmount(c, h.service.Deposit)
}

func (h *AccountHandler) Withdraw(c *gin.Context) {
	h.postAmount(c, h.service.Withdraw)
}

// postAmount handles the shared shape of deposits and withdrawals.
func (h *AccountHandler) postAmount(c *gin.Context, post func(ctx context.Context, traceID string, accountID string, req views.AmountRequest) (string, error)) {
	traceID, ok := h.traceID(c)
	if !ok {
		return
	}

	var req views.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	balance, err := post(c.Request.Context(), traceID, c.Param("id"), req)
	if err != nil {
		h.fail(c, traceID, err)
		return
	}

	c.JSON(http.StatusOK, pkg.APIResponse{
		TraceID: traceID,
		Data: map[string]interface{}{
			"balance": balance,
		},
	})
}

func (h *AccountHandler) Transfer(c *gin.Context) {
	traceID, ok := h.traceID(c)
	if !ok {
		return
	}

	var req views.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	if err := h.service.Transfer(c.Request.Context(), traceID, req); err != nil {
		h.fail(c, traceID, err)
		return
	}

	c.JSON(http.StatusOK, pkg.APIResponse{
		TraceID: traceID,
		Data: map[string]interface{}{
			"status": "transfer completed",
		},
	})
}

func (h *AccountHandler) Receive(c *gin.Context) {
	traceID, ok := h.traceID(c)
	if !ok {
		return
	}

	var req views.ReceiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	if err := h.service.Receive(c.Request.Context(), traceID, req); err != nil {
		h.fail(c, traceID, err)
		return
	}

	c.JSON(http.StatusOK, pkg.APIResponse{
		TraceID: traceID,
		Data: map[string]interface{}{
			"status": "transfer completed",
		},
	})
}

func (h *AccountHandler) Statement(c *gin.Context) {
	traceID, ok := h.traceID(c)
	if !ok {
		return
	}

	statement, err := h.service.Statement(c.Request.Context(), traceID, c.Param("id"))
	if err != nil {
		h.fail(c, traceID, err)
		return
	}

	c.JSON(http.StatusOK, pkg.APIResponse{
		TraceID: traceID,
		Data: map[string]interface{}{
			"statement": statement,
		},
	})
}

func (h *AccountHandler) CloseAccount(c *gin.Context) {
	traceID, ok := h.traceID(c)
	if !ok {
		return
	}

	if err := h.service.Close(c.Request.Context(), traceID, c.Param("id")); err != nil {
		h.fail(c, traceID, err)
		return
	}

	c.JSON(http.StatusOK, pkg.APIResponse{
		TraceID: traceID,
		Data: map[string]interface{}{
			"status": "account closed",
		},
	})
}

func (h *AccountHandler) traceID(c *gin.Context) (string, bool) {
	traceID, err := utils.GetTraceID(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, pkg.ErrorResponse{
			Code:    pkg.ErrServerCode.Code,
			Message: err.Error(),
		})
		return "", false
	}
	return traceID, true
}

func (h *AccountHandler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, pkg.ErrorResponse{
		Code:    pkg.ErrInvalidInputCode.Code,
		Message: "invalid request body",
		Details: err.Error(),
	})
}

func (h *AccountHandler) fail(c *gin.Context, traceID string, err error) {
	resp := pkg.ToErrorResponse(h.logger, traceID, err)
	c.JSON(resp.Status, resp)
}
