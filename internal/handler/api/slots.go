package api

import (
	"net/http"

	"sessionbook/internal/engine"
	reqdto "sessionbook/internal/handler/dto/request"
	resdto "sessionbook/internal/handler/dto/response"
	"sessionbook/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	engine *engine.Engine
}

func NewSlotHandler(engine *engine.Engine) *SlotHandler {
	return &SlotHandler{engine: engine}
}

func (h *SlotHandler) CreateSlot(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "invalid request body")
		return
	}

	var (
		id  uuid.UUID
		err error
	)
	if req.Price != nil {
		id, err = h.engine.CreateSlotWithPrice(c.Request.Context(), caller,
			req.StartTime, req.DurationMins, req.CancelCutoffMins, req.MinOverlapMins, req.Reserved, *req.Price)
	} else {
		id, err = h.engine.CreateSlot(c.Request.Context(), caller,
			req.StartTime, req.DurationMins, req.CancelCutoffMins, req.MinOverlapMins, req.Reserved)
	}
	if err != nil {
		respondEngineErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *SlotHandler) GetSlot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.engine.GetSlot(id)
	if err != nil {
		respondEngineErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *SlotHandler) ListMySlots(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, h.engine.ListSlotsByHost(caller))
}

func (h *SlotHandler) SetBasePrice(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SetBasePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "invalid request body")
		return
	}
	if err := h.engine.SetHostBasePrice(c.Request.Context(), caller, req.Price); err != nil {
		respondEngineErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
