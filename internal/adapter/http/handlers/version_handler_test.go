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

func testVersion(number int) entities.QuoteVersion {
	return entities.QuoteVersion{
		ID:            "v-1",
		QuoteID:       "q-1",
		VersionNumber: number,
		CreatedAt:     time.Now().UTC(),
		CreatedBy:     entities.ChangedBy{ID: "u-1", Name: "Ana", Role: "manufacturer"},
		Snapshot:      entities.SnapshotOf(testQuote()),
		IsCurrent:     true,
		ChangeSummary: "quote created",
	}
}

func TestVersionHandler_ListVersions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)
		h := NewVersionHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/versions", h.ListVersions)

		uc.EXPECT().GetVersions(gomock.Any(), "q-1").
			Return([]entities.QuoteVersion{testVersion(1), testVersion(2)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/versions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp) != 2 {
			t.Fatalf("expected 2 versions, got %d", len(resp))
		}
		if resp[0]["version_number"] != float64(1) || resp[1]["version_number"] != float64(2) {
			t.Fatalf("expected ascending version order, got %s", w.Body.String())
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)
		h := NewVersionHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/versions", h.ListVersions)

		uc.EXPECT().GetVersions(gomock.Any(), "q-x").Return(nil, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-x/versions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("diff via query parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)
		h := NewVersionHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/versions", h.ListVersions)

		uc.EXPECT().Diff(gomock.Any(), "q-1", "v-1", "v-2").
			Return([]entities.Change{
				{Field: "delivery_days", OldValue: "14", NewValue: "10", ChangeType: entities.ChangeTypeModified},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/versions?from=v-1&to=v-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string][]map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp["changes"]) != 1 || resp["changes"][0]["field"] != "delivery_days" {
			t.Fatalf("unexpected diff body: %s", w.Body.String())
		}
	})

	t.Run("diff of a version against itself", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)
		h := NewVersionHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/versions", h.ListVersions)

		uc.EXPECT().Diff(gomock.Any(), "q-1", "v-1", "v-1").Return(nil, usecase.ErrNothingToDiff)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/versions?from=v-1&to=v-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestVersionHandler_RevertVersion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success appends a new version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)
		h := NewVersionHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/versions/:version_id/revert", h.RevertVersion)

		reverted := testVersion(4)
		reverted.ChangeSummary = "reverted to version 1"
		uc.EXPECT().Revert(gomock.Any(), "q-1", "v-1", gomock.Any()).
			DoAndReturn(func(_ any, _, _ string, by entities.ChangedBy) (entities.QuoteVersion, error) {
				if by.ID != "u-9" {
					t.Fatalf("identity not propagated: %+v", by)
				}
				return reverted, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/versions/v-1/revert", nil)
		req.Header.Set("X-User-ID", "u-9")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["version_number"] != float64(4) {
			t.Fatalf("unexpected version in body: %s", w.Body.String())
		}
	})

	t.Run("terminal quote maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)
		h := NewVersionHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/versions/:version_id/revert", h.RevertVersion)

		uc.EXPECT().Revert(gomock.Any(), "q-1", "v-1", gomock.Any()).
			Return(entities.QuoteVersion{}, usecase.ErrQuoteImmutable)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/versions/v-1/revert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapVersionError(t *testing.T) {
	if got := mapVersionError(usecase.ErrInvalidVersionID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapVersionError(usecase.ErrNothingToDiff); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapVersionError(usecase.ErrVersionNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapVersionError(usecase.ErrVersionConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapVersionError(usecase.ErrQuoteUnderEscrow); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapVersionError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
