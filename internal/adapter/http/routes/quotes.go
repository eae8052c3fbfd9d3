package routes

import (
	"quoteforge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes       = "/quotes"
	PathNegotiations = "/negotiations"
	PathEscrows      = "/escrows"
)

func addQuoteRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	versionHandler *handlers.VersionHandler,
	negotiationHandler *handlers.NegotiationHandler,
	escrowHandler *handlers.EscrowHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.GetQuoteByOrder)
		quotes.POST("/expire-sweep", quoteHandler.ExpireSweep)
		quotes.GET("/:id", quoteHandler.GetQuote)

		// Lifecycle events.
		quotes.PATCH("/:id/submit", quoteHandler.SubmitQuote)
		quotes.PATCH("/:id/view", quoteHandler.ViewQuote)
		quotes.PATCH("/:id/accept", quoteHandler.AcceptQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)

		// Version ledger.
		quotes.GET("/:id/versions", versionHandler.ListVersions)
		quotes.POST("/:id/versions/:version_id/revert", versionHandler.RevertVersion)

		// Negotiations raised against this quote.
		quotes.POST("/:id/negotiations", negotiationHandler.CreateNegotiation)
		quotes.GET("/:id/negotiations", negotiationHandler.ListNegotiations)

		// Escrow enforcement on this quote.
		quotes.GET("/:id/escrow", escrowHandler.GetEscrow)
		quotes.POST("/:id/escrow", escrowHandler.EnforceEscrow)
	}

	negotiations := rg.Group(PathNegotiations)
	{
		negotiations.PATCH("/:negotiation_id/resolve", negotiationHandler.ResolveNegotiation)
	}

	escrows := rg.Group(PathEscrows)
	{
		escrows.PATCH("/:escrow_id/complete", escrowHandler.CompleteEscrowPayment)
	}
}
