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

type RequestHandler struct {
	engine *engine.Engine
}

func NewRequestHandler(engine *engine.Engine) *RequestHandler {
	return &RequestHandler{engine: engine}
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "invalid request body")
		return
	}

	host := uuid.Nil
	if req.Host != nil {
		host = *req.Host
	}
	id, err := h.engine.CreateRequest(c.Request.Context(), caller, host,
		req.WindowStart, req.WindowEnd, req.DurationMins, req.Price, req.Deadline)
	if err != nil {
		respondEngineErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *RequestHandler) CancelRequest(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.engine.CancelRequest(c.Request.Context(), caller, id); err != nil {
		respondEngineErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RequestHandler) AcceptRequest(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.AcceptRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "invalid request body")
		return
	}
	bookingID, err := h.engine.AcceptRequest(c.Request.Context(), caller, id,
		req.StartTime, req.CancelCutoffMins, req.MinOverlapMins, req.Reserved)
	if err != nil {
		respondEngineErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: bookingID})
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.engine.GetRequest(id)
	if err != nil {
		respondEngineErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
