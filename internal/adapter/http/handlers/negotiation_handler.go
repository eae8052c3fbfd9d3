package handlers

import (
	"errors"
	"log"
	"net/http"

	request "quoteforge/internal/adapter/http/dto/request"
	response "quoteforge/internal/adapter/http/dto/response"
	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase"
	"quoteforge/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidNegotiationPayload = pkg.NewDomainErrorSimple("INVALID_NEGOTIATION_INPUT", "Invalid negotiation payload", http.StatusBadRequest)
)

// NegotiationHandler handles HTTP requests for quote negotiations.

type NegotiationHandler struct {
	usecase usecase.INegotiationUseCase
}

func NewNegotiationHandler(uc usecase.INegotiationUseCase) *NegotiationHandler {
	return &NegotiationHandler{usecase: uc}
}

// CreateNegotiation opens a counter-proposal against a quote. The first
// negotiation moves the quote to "negotiating".
func (h *NegotiationHandler) CreateNegotiation(c *gin.Context) {
	quoteID := c.Param("id")

	var payload request.NegotiationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNegotiationPayload.HTTPStatus, errInvalidNegotiationPayload.ToHTTPError())
		return
	}

	negotiation, err := h.usecase.Request(c.Request.Context(), quoteID, usecase.NegotiationInput{
		Message:               payload.Message,
		RequestedPrice:        payload.RequestedPrice,
		RequestedDeliveryDays: payload.RequestedDeliveryDays,
		By:                    changedByFromHeaders(c),
	})
	if err != nil {
		log.Printf("[negotiation][handler] create failed quote_id=%s err=%v", quoteID, err)
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromNegotiation(negotiation))
}

// ListNegotiations returns every negotiation raised against a quote.
func (h *NegotiationHandler) ListNegotiations(c *gin.Context) {
	quoteID := c.Param("id")

	negotiations, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNegotiations(negotiations))
}

// ResolveNegotiation settles a pending negotiation; either decision sends the
// quote back to the client as a counter-offer.
func (h *NegotiationHandler) ResolveNegotiation(c *gin.Context) {
	negotiationID := c.Param("negotiation_id")

	var payload request.ResolveNegotiationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNegotiationPayload.HTTPStatus, errInvalidNegotiationPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Resolve(
		c.Request.Context(),
		negotiationID,
		entities.NegotiationStatus(payload.ResolveDecision()),
		changedByFromHeaders(c),
	)
	if err != nil {
		log.Printf("[negotiation][handler] resolve failed negotiation_id=%s err=%v", negotiationID, err)
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapNegotiationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidNegotiationID),
		errors.Is(err, usecase.ErrEmptyMessage),
		errors.Is(err, usecase.ErrEmptyReason),
		errors.Is(err, usecase.ErrInvalidRequestedPrice),
		errors.Is(err, usecase.ErrInvalidRequestedDays),
		errors.Is(err, usecase.ErrInvalidDecision),
		errors.Is(err, entities.ErrNegativeBreakdownField):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNegotiationNotFound):
		return pkg.NewDomainErrorSimple("NEGOTIATION_NOT_FOUND", "Negotiation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNegotiationResolved):
		return pkg.NewDomainErrorSimple("NEGOTIATION_RESOLVED", "Negotiation already resolved", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotNegotiable),
		errors.Is(err, usecase.ErrQuoteNotUnderNegotiation),
		errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainError("VERSION_CONFLICT", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
