package api

import (
	"net/http"

	"sessionbook/internal/engine"
	resdto "sessionbook/internal/handler/dto/response"
	"sessionbook/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	engine *engine.Engine
}

func NewLedgerHandler(engine *engine.Engine) *LedgerHandler {
	return &LedgerHandler{engine: engine}
}

// Withdraw pays out the caller's entire owed balance.
func (h *LedgerHandler) Withdraw(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	amount, err := h.engine.WithdrawOwed(c.Request.Context(), caller)
	if err != nil {
		respondEngineErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithdrawResponse{Amount: amount})
}

func (h *LedgerHandler) Owed(c *gin.Context) {
	account, ok := pathID(c, "account")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.OwedResponse{Account: account, Owed: h.engine.Owed(account)})
}

func (h *LedgerHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.LedgerResponse{
		TotalHeld: h.engine.TotalHeld(),
		BPS:       h.engine.BPS(),
	})
}
