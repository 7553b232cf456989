package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/granabox/granabox-api/internal/apperrors"
	"github.com/granabox/granabox-api/internal/core/services"
)

// ErrorResponse is the error payload shape shared by every endpoint: loc
// points at the offending field or parameter, msg is human readable, kind is
// a stable machine-readable discriminator.
type ErrorResponse struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Kind string   `json:"kind"`
}

const (
	kindValidation = "validation_error"
	kindNotFound   = "not_found"
	kindDuplicate  = "duplicate_name"
	kindConflict   = "conflict"
	kindInternal   = "internal_error"
)

func respondError(c *gin.Context, status int, kind string, loc []string, msg string) {
	if loc == nil {
		loc = []string{}
	}
	c.JSON(status, ErrorResponse{Loc: loc, Msg: msg, Kind: kind})
}

// respondServiceError maps a service-layer error onto the wire. loc names the
// field or parameter the failure concerns, when one can be named.
func respondServiceError(c *gin.Context, err error, loc ...string) {
	switch {
	case errors.Is(err, services.ErrLabelInUse):
		respondError(c, http.StatusConflict, kindConflict, loc, "Label is referenced by existing items")
	case errors.Is(err, apperrors.ErrDuplicate):
		respondError(c, http.StatusConflict, kindDuplicate, loc, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, kindNotFound, loc, err.Error())
	case errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusBadRequest, kindValidation, loc, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, kindInternal, nil, "Internal server error")
	}
}
