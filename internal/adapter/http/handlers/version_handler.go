package handlers

import (
	"errors"
	"log"
	"net/http"

	response "quoteforge/internal/adapter/http/dto/response"
	"quoteforge/internal/usecase"
	"quoteforge/pkg"

	"github.com/gin-gonic/gin"
)

// VersionHandler handles HTTP requests for the quote version ledger.

type VersionHandler struct {
	usecase usecase.IVersionUseCase
}

func NewVersionHandler(uc usecase.IVersionUseCase) *VersionHandler {
	return &VersionHandler{usecase: uc}
}

// ListVersions returns a quote's full version history in ascending version
// order. When
// both "from" and "to" query parameters carry version ids, the response is
// the typed diff between those two versions instead.
func (h *VersionHandler) ListVersions(c *gin.Context) {
	quoteID := c.Param("id")
	from := c.Query("from")
	to := c.Query("to")

	if from != "" || to != "" {
		changes, err := h.usecase.Diff(c.Request.Context(), quoteID, from, to)
		if err != nil {
			appErr := mapVersionError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, gin.H{"changes": response.FromChanges(changes)})
		return
	}

	versions, err := h.usecase.GetVersions(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapVersionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteVersions(versions))
}

// RevertVersion restores a historical version's data as a brand new version.
func (h *VersionHandler) RevertVersion(c *gin.Context) {
	quoteID := c.Param("id")
	versionID := c.Param("version_id")

	version, err := h.usecase.Revert(c.Request.Context(), quoteID, versionID, changedByFromHeaders(c))
	if err != nil {
		log.Printf("[version][handler] revert failed quote_id=%s version_id=%s err=%v", quoteID, versionID, err)
		appErr := mapVersionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteVersion(version))
}

func mapVersionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidVersionID),
		errors.Is(err, usecase.ErrNothingToDiff):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVersionNotFound):
		return pkg.NewDomainErrorSimple("VERSION_NOT_FOUND", "Quote version not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainError("VERSION_CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteImmutable), errors.Is(err, usecase.ErrQuoteUnderEscrow):
		return pkg.NewDomainError("QUOTE_IMMUTABLE", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
