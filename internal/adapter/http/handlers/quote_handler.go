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
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for the quote lifecycle.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote opens a quote against an order. The price is derived from the
// breakdown server-side; clients never set it directly.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	input := usecase.CreateQuoteInput{
		OrderID:        payload.OrderID,
		ManufacturerID: payload.ManufacturerID,
		TemplateID:     payload.TemplateID,
		Status:         payload.ResolveStatus(),
		Currency:       payload.Currency,
		DeliveryDays:   payload.DeliveryDays,
		ValidUntil:     payload.ValidUntil,
		Breakdown:      payload.Breakdown.ToEntity(),
		Description:    payload.Description,
		PaymentTerms:   payload.PaymentTerms,
		Warranty:       payload.Warranty,
		Material:       payload.Material,
		Process:        payload.Process,
		Finish:         payload.Finish,
		Tolerance:      payload.Tolerance,
		Quantity:       payload.Quantity,
		Notes:          payload.Notes,
		By:             changedByFromHeaders(c),
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), input)
	if err != nil {
		log.Printf("[quote][handler] create failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// GetQuote returns a quote by id, expiring it first when its validity window
// already elapsed.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id := c.Param("id")

	quote, err := h.usecase.GetQuote(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// GetQuoteByOrder returns the quote attached to an order.
func (h *QuoteHandler) GetQuoteByOrder(c *gin.Context) {
	orderID := c.Query("order_id")

	quote, err := h.usecase.GetQuoteByOrderID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	h.transition(c, entities.QuoteEventSubmit)
}

func (h *QuoteHandler) ViewQuote(c *gin.Context) {
	h.transition(c, entities.QuoteEventView)
}

func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.transition(c, entities.QuoteEventAccept)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.transition(c, entities.QuoteEventReject)
}

func (h *QuoteHandler) transition(c *gin.Context, event entities.QuoteEvent) {
	id := c.Param("id")

	var payload request.TransitionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
	}

	quote, err := h.usecase.Transition(c.Request.Context(), id, event, usecase.TransitionInput{
		Reason:          payload.Reason,
		ExpectedVersion: payload.ExpectedVersion,
		By:              changedByFromHeaders(c),
	})
	if err != nil {
		// An accepted quote whose escrow enforcement failed is still accepted;
		// the client retries enforcement through the escrow endpoint.
		if quote.ID != "" {
			log.Printf("[quote][handler] transition committed with follow-up failure quote_id=%s event=%s err=%v", quote.ID, event, err)
			c.JSON(http.StatusOK, response.FromQuote(quote))
			return
		}
		log.Printf("[quote][handler] transition failed quote_id=%s event=%s err=%v", id, event, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ExpireSweep expires every quote whose validity elapsed. Invoked by the
// scheduler, not by end users.
func (h *QuoteHandler) ExpireSweep(c *gin.Context) {
	expired, err := h.usecase.ExpireStale(c.Request.Context())
	if err != nil {
		log.Printf("[quote][handler] expire sweep failed err=%v", err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"expired": expired})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidManufacturer),
		errors.Is(err, usecase.ErrEmptyDescription),
		errors.Is(err, usecase.ErrInvalidDeliveryDays),
		errors.Is(err, usecase.ErrInvalidQuotePrice),
		errors.Is(err, usecase.ErrInvalidValidUntil),
		errors.Is(err, usecase.ErrInvalidInitialStatus),
		errors.Is(err, usecase.ErrEmptyReason),
		errors.Is(err, entities.ErrNegativeBreakdownField):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Quote template not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainError("VERSION_CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteExpired):
		return pkg.NewDomainError("QUOTE_EXPIRED", err.Error(), err, http.StatusGone)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
