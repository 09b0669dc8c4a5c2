package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/grocx/pricetrack/internal/domain/apperr"
	"github.com/grocx/pricetrack/internal/domain/dto"
	"github.com/grocx/pricetrack/internal/domain/models"
)

func priceBody(productID, storeID int64, price float64, currency string) dto.RecordPriceRequest {
	return dto.RecordPriceRequest{
		ProductID: productID,
		StoreID:   storeID,
		Price:     &price,
		Currency:  currency,
	}
}

func TestRecordPrice(t *testing.T) {
	cases := []struct {
		name       string
		body       interface{}
		svc        *mockPriceService
		wantStatus int
	}{
		{
			name:       "created",
			body:       priceBody(42, 7, 1.20, "USD"),
			svc:        &mockPriceService{recordOut: &models.PriceObservation{ID: 101, ProductID: 42, StoreID: 7, Price: 1.20, Currency: "USD"}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing price field",
			body:       map[string]int64{"product_id": 42, "store_id": 7},
			svc:        &mockPriceService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative price rejected by service",
			body:       priceBody(42, 7, -1, "USD"),
			svc:        &mockPriceService{recordErr: apperr.Validation("price", "must not be negative")},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "dangling store id",
			body:       priceBody(42, 999, 1.20, "USD"),
			svc:        &mockPriceService{recordErr: apperr.ErrForeignKeyViolation},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "storage error",
			body:       priceBody(42, 7, 1.20, "USD"),
			svc:        &mockPriceService{recordErr: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(NewHandler(&mockProductService{}, &mockStoreService{}, tc.svc))
			w := doRequest(t, r, http.MethodPost, "/api/v1/prices", tc.body)

			if w.Code != tc.wantStatus {
				t.Fatalf("status %d, want %d; body=%s", w.Code, tc.wantStatus, w.Body.String())
			}
			if tc.wantStatus == http.StatusCreated {
				var got models.PriceObservation
				if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if got.ID != 101 || got.Price != 1.20 {
					t.Fatalf("unexpected observation: %+v", got)
				}
			}
		})
	}
}

func TestRecordPrice_ZeroPriceBindsAsPresent(t *testing.T) {
	svc := &mockPriceService{recordOut: &models.PriceObservation{ID: 101, Price: 0}}
	r := newTestRouter(NewHandler(&mockProductService{}, &mockStoreService{}, svc))

	w := doRequest(t, r, http.MethodPost, "/api/v1/prices", priceBody(42, 7, 0, "USD"))
	if w.Code != http.StatusCreated {
		t.Fatalf("zero price should bind; status %d body=%s", w.Code, w.Body.String())
	}
}

func TestGetPriceHistory(t *testing.T) {
	t.Run("returns entries", func(t *testing.T) {
		svc := &mockPriceService{historyOut: []models.PriceHistoryEntry{
			{ID: 2, Price: 1.35, Currency: "USD", StoreName: "Market B"},
			{ID: 1, Price: 1.20, Currency: "USD", StoreName: "Market A", StoreLocation: "Downtown"},
		}}
		r := newTestRouter(NewHandler(&mockProductService{}, &mockStoreService{}, svc))

		w := doRequest(t, r, http.MethodGet, "/api/v1/prices/history/42", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}

		var got []models.PriceHistoryEntry
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != 2 || got[0].StoreName != "Market B" || got[1].StoreLocation != "Downtown" {
			t.Fatalf("unexpected entries: %+v", got)
		}
	})

	t.Run("non-integer product id is 400", func(t *testing.T) {
		r := newTestRouter(NewHandler(&mockProductService{}, &mockStoreService{}, &mockPriceService{}))

		w := doRequest(t, r, http.MethodGet, "/api/v1/prices/history/abc", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status %d", w.Code)
		}
	})

	t.Run("product without observations is 200 with empty array", func(t *testing.T) {
		svc := &mockPriceService{historyOut: []models.PriceHistoryEntry{}}
		r := newTestRouter(NewHandler(&mockProductService{}, &mockStoreService{}, svc))

		w := doRequest(t, r, http.MethodGet, "/api/v1/prices/history/999", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		if body := w.Body.String(); body != "[]" {
			t.Fatalf("want [], got %s", body)
		}
	})
}

func TestGetAllPriceEntries(t *testing.T) {
	t.Run("returns ledger", func(t *testing.T) {
		svc := &mockPriceService{ledgerOut: []models.LedgerEntry{
			{ID: 1, Price: 1.20, Currency: "USD", ProductName: "Apple", ProductBarcode: "123", StoreName: "Market A"},
		}}
		r := newTestRouter(NewHandler(&mockProductService{}, &mockStoreService{}, svc))

		w := doRequest(t, r, http.MethodGet, "/api/v1/prices", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}

		var got []models.LedgerEntry
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != 1 || got[0].ProductBarcode != "123" {
			t.Fatalf("unexpected ledger: %+v", got)
		}
	})

	t.Run("storage error is 500", func(t *testing.T) {
		svc := &mockPriceService{ledgerErr: errors.New("db down")}
		r := newTestRouter(NewHandler(&mockProductService{}, &mockStoreService{}, svc))

		w := doRequest(t, r, http.MethodGet, "/api/v1/prices", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status %d", w.Code)
		}
	})
}
