package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quoteforge/internal/adapter/http/handlers/mocks"
	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func testQuote() entities.Quote {
	q := entities.Quote{
		ID:             "q-1",
		OrderID:        "o-1",
		ManufacturerID: "m-1",
		Status:         entities.QuoteStatusSent,
		Currency:       "BRL",
		DeliveryDays:   14,
		ValidUntil:     time.Now().UTC().Add(72 * time.Hour),
		Description:    "CNC milled bracket",
		CurrentVersion: 1,
	}
	_ = q.ApplyBreakdown(entities.PricingBreakdown{Materials: 100, Labor: 50, Overhead: 20, Shipping: 10, Taxes: 5})
	return q
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"order_id":"o-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("identity comes from headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, input usecase.CreateQuoteInput) (entities.Quote, error) {
				if input.By.ID != "u-1" || input.By.Role != "manufacturer" {
					t.Fatalf("identity not propagated: %+v", input.By)
				}
				return testQuote(), nil
			})

		body := `{"order_id":"o-1","manufacturer_id":"m-1","delivery_days":14,"valid_until":"2030-01-01T00:00:00Z","breakdown":{"materials":100,"labor":50,"overhead":20,"shipping":10,"taxes":5},"description":"CNC milled bracket"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "u-1")
		req.Header.Set("X-User-Role", "manufacturer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("success carries derived price and percentages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(testQuote(), nil)

		body := `{"order_id":"o-1","manufacturer_id":"m-1","delivery_days":14,"valid_until":"2030-01-01T00:00:00Z","breakdown":{"materials":100,"labor":50,"overhead":20,"shipping":10,"taxes":5},"description":"CNC milled bracket"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["price"] != float64(185) {
			t.Fatalf("unexpected price in response: %v", resp["price"])
		}
		breakdown, _ := resp["breakdown"].(map[string]any)
		if breakdown["materials_pct"] != "54.1" {
			t.Fatalf("unexpected materials_pct: %v", breakdown["materials_pct"])
		}
	})

	t.Run("mapped validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrInvalidValidUntil)

		body := `{"order_id":"o-1","manufacturer_id":"m-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		uc.EXPECT().GetQuote(gomock.Any(), "q-1").Return(testQuote(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		uc.EXPECT().GetQuote(gomock.Any(), "q-x").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("by order id query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes", h.GetQuoteByOrder)

		uc.EXPECT().GetQuoteByOrderID(gomock.Any(), "o-1").Return(testQuote(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes?order_id=o-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/accept", h.AcceptQuote)

		accepted := testQuote()
		accepted.Status = entities.QuoteStatusAccepted
		uc.EXPECT().Transition(gomock.Any(), "q-1", entities.QuoteEventAccept, gomock.Any()).Return(accepted, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("expected version forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/submit", h.SubmitQuote)

		uc.EXPECT().Transition(gomock.Any(), "q-1", entities.QuoteEventSubmit, gomock.Any()).
			DoAndReturn(func(_ any, _ string, _ entities.QuoteEvent, input usecase.TransitionInput) (entities.Quote, error) {
				if input.ExpectedVersion != 2 {
					t.Fatalf("expected version 2 forwarded, got %d", input.ExpectedVersion)
				}
				return testQuote(), nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/submit", bytes.NewBufferString(`{"expected_version":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("accept on expired quote maps to 410", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/accept", h.AcceptQuote)

		uc.EXPECT().Transition(gomock.Any(), "q-1", entities.QuoteEventAccept, gomock.Any()).
			Return(entities.Quote{}, usecase.ErrQuoteExpired)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("illegal event maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/view", h.ViewQuote)

		uc.EXPECT().Transition(gomock.Any(), "q-1", entities.QuoteEventView, gomock.Any()).
			Return(entities.Quote{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/view", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("accepted quote with failed enforcement still returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/accept", h.AcceptQuote)

		accepted := testQuote()
		accepted.Status = entities.QuoteStatusAccepted
		uc.EXPECT().Transition(gomock.Any(), "q-1", entities.QuoteEventAccept, gomock.Any()).
			Return(accepted, errors.New("quote accepted but escrow enforcement failed: provider down"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "accepted" {
			t.Fatalf("expected accepted quote in body, got %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_ExpireSweep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/quotes/expire-sweep", h.ExpireSweep)

	uc.EXPECT().ExpireStale(gomock.Any()).Return(3, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/expire-sweep", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["expired"] != float64(3) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(usecase.ErrInvalidOrderID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(entities.ErrNegativeBreakdownField); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrInvalidTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuoteError(usecase.ErrVersionConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuoteError(usecase.ErrQuoteExpired); got.HTTPStatus != http.StatusGone {
		t.Fatalf("expected 410")
	}
	if got := mapQuoteError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
