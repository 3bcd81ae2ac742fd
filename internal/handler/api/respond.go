package api

import (
	"errors"
	"net/http"

	"sessionbook/internal/engine"
	"sessionbook/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondEngineErr maps the engine's rejection taxonomy onto HTTP statuses.
// Timing and state rejections are expected traffic, not server faults.
func respondEngineErr(c *gin.Context, err error) {
	var e *engine.Error
	if !errors.As(err, &e) {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error")
		return
	}

	status := http.StatusInternalServerError
	switch e.Code {
	case engine.CodeUnauthorized, engine.CodeSelfDealing:
		status = http.StatusForbidden
	case engine.CodeNotFound:
		status = http.StatusNotFound
	case engine.CodeTooEarly, engine.CodeWindowClosed, engine.CodeBadState:
		status = http.StatusConflict
	case engine.CodeFunds:
		status = http.StatusPaymentRequired
	case engine.CodeInvalidInput:
		status = http.StatusBadRequest
	}
	httperr.AbortWithError(c, status, err, string(e.Code), e.Error())
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_INPUT", msg)
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, err, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
