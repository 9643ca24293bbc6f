package api

import (
	"errors"
	"net/http"

	"catalogo-bot/config"
	"catalogo-bot/internal/monitor"
	"catalogo-bot/internal/selection"

	"github.com/gin-gonic/gin"
)

// Erros próprios da API, além dos da seleção
var (
	ErrUnknownModel = errors.New("modelo desconhecido")
	ErrInvalidPrice = errors.New("preço inválido")
	ErrInvalidLimit = errors.New("limit inválido")
)

// appError é o corpo de erro devolvido pela API
type appError struct {
	Code       string
	Message    string
	HTTPStatus int
}

func newAppError(code, message string, status int) *appError {
	return &appError{Code: code, Message: message, HTTPStatus: status}
}

func (e *appError) ToHTTPError() gin.H {
	return gin.H{"code": e.Code, "message": e.Message}
}

func abort(c *gin.Context, e *appError) {
	c.AbortWithStatusJSON(e.HTTPStatus, e.ToHTTPError())
}

var (
	errEmpresaNotFound    = newAppError("EMPRESA_NOT_FOUND", "Empresa not found", http.StatusNotFound)
	errUnauthorized       = newAppError("UNAUTHORIZED", "Invalid or missing token", http.StatusUnauthorized)
	errAuditUnavailable   = newAppError("AUDIT_UNAVAILABLE", "Ingestion audit not configured", http.StatusServiceUnavailable)
	errRefreshUnavailable = newAppError("REFRESH_UNAVAILABLE", "Refresh not configured", http.StatusServiceUnavailable)
)

func mapError(err error) *appError {
	switch {
	case errors.Is(err, selection.ErrUnknownCategory):
		return newAppError("INVALID_CATEGORY", "Unknown category", http.StatusBadRequest)
	case errors.Is(err, selection.ErrModelRequiresIPhone):
		return newAppError("MODEL_REQUIRES_IPHONE", "Model filter is only available for the iphone category", http.StatusBadRequest)
	case errors.Is(err, selection.ErrSubmodelRequiresModel):
		return newAppError("SUBMODEL_REQUIRES_MODEL", "Submodel filter requires a model", http.StatusBadRequest)
	case errors.Is(err, selection.ErrInvalidSortOrder):
		return newAppError("INVALID_SORT_ORDER", "sortOrder must be none, asc or desc", http.StatusBadRequest)
	case errors.Is(err, selection.ErrInvalidSortGen):
		return newAppError("INVALID_SORT_GEN", "sortGen must be none, new or old", http.StatusBadRequest)
	case errors.Is(err, ErrUnknownModel):
		return newAppError("INVALID_MODEL", "Unknown iPhone model", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidPrice):
		return newAppError("INVALID_PRICE", "minPrice and maxPrice must be numbers", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidLimit):
		return newAppError("INVALID_LIMIT", "limit must be a positive integer", http.StatusBadRequest)
	case errors.Is(err, config.ErrEmpresaNotFound), errors.Is(err, monitor.ErrUnknownEmpresa):
		return errEmpresaNotFound
	default:
		return newAppError("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
	}
}
