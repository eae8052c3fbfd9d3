package handlers

import (
	"strings"

	"quoteforge/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// changedByFromHeaders resolves the acting identity from the gateway-injected
// headers. Callers without an X-User-ID are attributed to "anonymous" so the
// version ledger never records an empty author.
func changedByFromHeaders(c *gin.Context) entities.ChangedBy {
	id := strings.TrimSpace(c.GetHeader("X-User-ID"))
	if id == "" {
		id = "anonymous"
	}
	return entities.ChangedBy{
		ID:   id,
		Name: strings.TrimSpace(c.GetHeader("X-User-Name")),
		Role: strings.TrimSpace(c.GetHeader("X-User-Role")),
	}
}
