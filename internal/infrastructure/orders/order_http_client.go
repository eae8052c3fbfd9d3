package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"
)

var ErrMissingOrderServiceURL = errors.New("missing ORDER_SERVICE_URL")

// OrderHTTPClient resolves order references against the order service.
//
// The order service owns orders; quote creation only needs existence,
// currency and target price. A 404 maps to a zero-value Order so the
// usecase reports its own not-found sentinel.

type OrderHTTPClient struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IOrderService = (*OrderHTTPClient)(nil)

func NewOrderHTTPClient(baseURL string) (*OrderHTTPClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingOrderServiceURL
	}
	return &OrderHTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *OrderHTTPClient) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	endpoint := fmt.Sprintf("%s/v1/orders/%s", c.baseURL, url.PathEscape(orderID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.Order{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[order][client] lookup failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return entities.Order{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[order][client] unexpected status order_id=%s status=%d body=%s", orderID, resp.StatusCode, body)
		return entities.Order{}, fmt.Errorf("order service returned status %d", resp.StatusCode)
	}

	var order entities.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}
