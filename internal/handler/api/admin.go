package api

import (
	"net/http"
	"strconv"

	"sessionbook/internal/engine"
	reqdto "sessionbook/internal/handler/dto/request"
	resdto "sessionbook/internal/handler/dto/response"
	"sessionbook/internal/handler/middleware"
	"sessionbook/internal/infra/journal"
	"sessionbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler exposes the owner-gated surface. The engine enforces the
// owner check; these routes only require authentication.
type AdminHandler struct {
	engine  *engine.Engine
	journal *journal.Journal
}

func NewAdminHandler(engine *engine.Engine, journal *journal.Journal) *AdminHandler {
	return &AdminHandler{engine: engine, journal: journal}
}

type paramSetter func(caller uuid.UUID, value int64) error

func (h *AdminHandler) SetParam(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setters := map[string]paramSetter{
		"fee-bps": func(caller uuid.UUID, v int64) error {
			return h.engine.SetFeeBps(c.Request.Context(), caller, v)
		},
		"late-cancel-penalty-bps": func(caller uuid.UUID, v int64) error {
			return h.engine.SetLateCancelPenaltyBps(c.Request.Context(), caller, v)
		},
		"challenge-bond": func(caller uuid.UUID, v int64) error {
			return h.engine.SetChallengeBond(c.Request.Context(), caller, v)
		},
		"challenge-window": func(caller uuid.UUID, v int64) error {
			return h.engine.SetChallengeWindow(c.Request.Context(), caller, v)
		},
		"no-attest-buffer": func(caller uuid.UUID, v int64) error {
			return h.engine.SetNoAttestBuffer(c.Request.Context(), caller, v)
		},
		"dispute-timeout": func(caller uuid.UUID, v int64) error {
			return h.engine.SetDisputeTimeout(c.Request.Context(), caller, v)
		},
	}

	setter, ok := setters[c.Param("name")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown parameter"})
		return
	}

	var req reqdto.SetParamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "invalid request body")
		return
	}
	if err := setter(caller, req.Value); err != nil {
		respondEngineErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) TransferOwnership(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "invalid request body")
		return
	}
	if err := h.engine.TransferOwnership(c.Request.Context(), caller, req.Candidate); err != nil {
		respondEngineErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) AcceptOwnership(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if err := h.engine.AcceptOwnership(c.Request.Context(), caller); err != nil {
		respondEngineErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) SweepTokenExcess(c *gin.Context) {
	caller, ok := middleware.GetAccount(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	amount, err := h.engine.SweepTokenExcess(c.Request.Context(), caller)
	if err != nil {
		respondEngineErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SweepResponse{Amount: amount})
}

// JournalTail returns the most recent transitions from the audit journal,
// newest first. Unavailable when the deployment runs without a database.
func (h *AdminHandler) JournalTail(c *gin.Context) {
	if h.journal == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "journal disabled"})
		return
	}

	limit := int64(50)
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			badRequest(c, err, "invalid limit")
			return
		}
		if parsed <= 0 {
			badRequest(c, errs.New("limit must be positive"), "invalid limit")
			return
		}
		limit = parsed
	}

	events, err := h.journal.Tail(c.Request.Context(), int32(limit))
	if err != nil {
		respondEngineErr(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
