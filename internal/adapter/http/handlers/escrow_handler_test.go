package handlers

import (
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

func testEscrow(deadline time.Time) entities.Escrow {
	return entities.Escrow{
		QuoteID:              "q-1",
		EscrowRequired:       true,
		EscrowID:             "esc-1",
		Status:               entities.EscrowStatePending,
		TotalAmount:          185,
		Commission:           14.8,
		ManufacturerPayout:   170.2,
		PaymentDeadline:      deadline,
		CommunicationBlocked: true,
		MilestoneCount:       1,
		CreatedAt:            time.Now().UTC(),
		UpdatedAt:            time.Now().UTC(),
	}
}

func TestEscrowHandler_GetEscrow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("urgency derived from deadline at read time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowUseCase(ctrl)
		h := NewEscrowHandler(uc)

		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		h.now = func() time.Time { return now }

		r := gin.New()
		r.GET("/v1/quotes/:id/escrow", h.GetEscrow)

		uc.EXPECT().GetStatus(gomock.Any(), "q-1").Return(testEscrow(now.Add(4*time.Hour)), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/escrow", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["urgency_level"] != "critical" {
			t.Fatalf("expected critical urgency, got %v", resp["urgency_level"])
		}
		if resp["hours_remaining"] != float64(4) {
			t.Fatalf("expected 4 hours remaining, got %v", resp["hours_remaining"])
		}
		if resp["commission"] != 14.8 || resp["manufacturer_payout"] != 170.2 {
			t.Fatalf("unexpected split in body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowUseCase(ctrl)
		h := NewEscrowHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/escrow", h.GetEscrow)

		uc.EXPECT().GetStatus(gomock.Any(), "q-x").Return(entities.Escrow{}, usecase.ErrEscrowNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-x/escrow", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEscrowHandler_EnforceEscrow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowUseCase(ctrl)
		h := NewEscrowHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/escrow", h.EnforceEscrow)

		uc.EXPECT().Enforce(gomock.Any(), "q-1").
			Return(testEscrow(time.Now().UTC().Add(72*time.Hour)), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/escrow", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["escrow_id"] != "esc-1" || resp["communication_blocked"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("quote not accepted maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowUseCase(ctrl)
		h := NewEscrowHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/escrow", h.EnforceEscrow)

		uc.EXPECT().Enforce(gomock.Any(), "q-1").Return(entities.Escrow{}, usecase.ErrQuoteNotAccepted)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/escrow", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowUseCase(ctrl)
		h := NewEscrowHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/escrow", h.EnforceEscrow)

		uc.EXPECT().Enforce(gomock.Any(), "q-1").Return(entities.Escrow{}, usecase.ErrEscrowGatewayUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/escrow", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestEscrowHandler_CompleteEscrowPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success unblocks communication", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowUseCase(ctrl)
		h := NewEscrowHandler(uc)

		r := gin.New()
		r.PATCH("/v1/escrows/:escrow_id/complete", h.CompleteEscrowPayment)

		completed := testEscrow(time.Now().UTC().Add(24 * time.Hour))
		completed.Status = entities.EscrowStateCompleted
		completed.CommunicationBlocked = false
		uc.EXPECT().CompletePayment(gomock.Any(), "esc-1").Return(completed, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/escrows/esc-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["escrow_status"] != "completed" || resp["communication_blocked"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("already completed maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowUseCase(ctrl)
		h := NewEscrowHandler(uc)

		r := gin.New()
		r.PATCH("/v1/escrows/:escrow_id/complete", h.CompleteEscrowPayment)

		uc.EXPECT().CompletePayment(gomock.Any(), "esc-1").
			Return(entities.Escrow{}, usecase.ErrEscrowAlreadyCompleted)

		req := httptest.NewRequest(http.MethodPatch, "/v1/escrows/esc-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapEscrowError(t *testing.T) {
	if got := mapEscrowError(usecase.ErrInvalidEscrowID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEscrowError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEscrowError(usecase.ErrEscrowNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEscrowError(usecase.ErrQuoteNotAccepted); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapEscrowError(usecase.ErrEscrowAlreadyCompleted); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapEscrowError(usecase.ErrEscrowGatewayUnavailable); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapEscrowError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
