package api

import (
	"net/http"

	"sessionbook/internal/domain/booking"
	"sessionbook/internal/engine"
	reqdto "sessionbook/internal/handler/dto/request"
	resdto "sessionbook/internal/handler/dto/response"
	"sessionbook/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	engine *engine.Engine
}

func NewBookingHandler(engine *engine.Engine) *BookingHandler {
	return &BookingHandler{engine: engine}
}

func (h *BookingHandler) Book(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "invalid request body")
		return
	}
	id, err := h.engine.Book(c.Request.Context(), caller, req.SlotID)
	if err != nil {
		respondEngineErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.engine.CancelBookingAsGuest(c.Request.Context(), caller, id); err != nil {
		respondEngineErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) Attest(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.AttestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "invalid request body")
		return
	}
	err := h.engine.Attest(c.Request.Context(), caller, id, booking.Outcome(req.Outcome), req.EvidenceHash)
	if err != nil {
		respondEngineErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) Challenge(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.engine.Challenge(c.Request.Context(), caller, id); err != nil {
		respondEngineErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) Finalize(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.engine.Finalize(c.Request.Context(), caller, id); err != nil {
		respondEngineErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) FinalizeDisputeByTimeout(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.engine.FinalizeDisputeByTimeout(c.Request.Context(), caller, id); err != nil {
		respondEngineErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) ClaimIfUnattested(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.engine.ClaimIfUnattested(c.Request.Context(), caller, id); err != nil {
		respondEngineErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.engine.GetBooking(id)
	if err != nil {
		respondEngineErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) GetBookingTerms(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	terms, err := h.engine.GetBookingTerms(id)
	if err != nil {
		respondEngineErr(c, err)
		return
	}
	c.JSON(http.StatusOK, terms)
}
