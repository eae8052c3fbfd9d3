package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	response "quoteforge/internal/adapter/http/dto/response"
	"quoteforge/internal/usecase"
	"quoteforge/pkg"

	"github.com/gin-gonic/gin"
)

// EscrowHandler handles HTTP requests for escrow enforcement on accepted
// quotes.

type EscrowHandler struct {
	usecase usecase.IEscrowUseCase
	now     func() time.Time
}

func NewEscrowHandler(uc usecase.IEscrowUseCase) *EscrowHandler {
	return &EscrowHandler{usecase: uc, now: time.Now}
}

// GetEscrow returns escrow status for a quote, with urgency derived from the
// payment deadline at read time.
func (h *EscrowHandler) GetEscrow(c *gin.Context) {
	quoteID := c.Param("id")

	escrow, err := h.usecase.GetStatus(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapEscrowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEscrow(escrow, h.now().UTC()))
}

// EnforceEscrow (re)applies escrow enforcement on an accepted quote.
// Idempotent: re-enforcing returns the existing escrow unchanged, so clients
// retry freely after a failed enforcement during acceptance.
func (h *EscrowHandler) EnforceEscrow(c *gin.Context) {
	quoteID := c.Param("id")
	log.Printf("[escrow][handler] enforce start quote_id=%s", quoteID)

	escrow, err := h.usecase.Enforce(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[escrow][handler] enforce failed quote_id=%s err=%v", quoteID, err)
		appErr := mapEscrowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[escrow][handler] enforce success quote_id=%s escrow_id=%s status=%s", quoteID, escrow.EscrowID, escrow.Status)

	c.JSON(http.StatusCreated, response.FromEscrow(escrow, h.now().UTC()))
}

// CompleteEscrowPayment records the provider's payment-completed signal and
// lifts the communication block.
func (h *EscrowHandler) CompleteEscrowPayment(c *gin.Context) {
	escrowID := c.Param("escrow_id")
	log.Printf("[escrow][handler] complete start escrow_id=%s", escrowID)

	escrow, err := h.usecase.CompletePayment(c.Request.Context(), escrowID)
	if err != nil {
		log.Printf("[escrow][handler] complete failed escrow_id=%s err=%v", escrowID, err)
		appErr := mapEscrowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[escrow][handler] complete success quote_id=%s escrow_id=%s", escrow.QuoteID, escrow.EscrowID)

	c.JSON(http.StatusOK, response.FromEscrow(escrow, h.now().UTC()))
}

func mapEscrowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidEscrowID):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEscrowNotFound):
		return pkg.NewDomainErrorSimple("ESCROW_NOT_FOUND", "Escrow not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainError("QUOTE_NOT_ACCEPTED", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEscrowAlreadyCompleted):
		return pkg.NewDomainErrorSimple("ESCROW_ALREADY_COMPLETED", "Escrow payment already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrEscrowGatewayUnavailable):
		return pkg.NewDomainErrorSimple("ESCROW_GATEWAY_UNAVAILABLE", "Escrow gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
