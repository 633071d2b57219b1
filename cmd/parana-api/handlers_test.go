package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/MikeMC777/parana-browser/internal/httpx"
	"github.com/MikeMC777/parana-browser/internal/olist"
	"github.com/MikeMC777/parana-browser/internal/order"
	"github.com/MikeMC777/parana-browser/internal/shopper"
	"github.com/MikeMC777/parana-browser/internal/store"
	"github.com/MikeMC777/parana-browser/internal/store/storetest"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
}

//
// ===== stub repo (shopper.Repository) =====
//

type stubShoppers struct {
	shopper.Repository
	lastSearch string
	listed     bool
}

func (s *stubShoppers) List(ctx context.Context, limit int) ([]shopper.Shopper, error) {
	s.listed = true
	return []shopper.Shopper{{ID: 1, FirstName: "Ana"}}, nil
}

func (s *stubShoppers) Search(ctx context.Context, keyword string, limit int) ([]shopper.Shopper, error) {
	s.lastSearch = keyword
	return []shopper.Shopper{}, nil
}

//
// ===== router over fixture databases =====
//

func fixtureRouter(t *testing.T) *gin.Engine {
	t.Helper()
	parana := store.New(storetest.NewParana(t))
	ol := store.New(storetest.NewOlist(t))
	return newRouter(deps{
		shoppers: shopper.NewSQLRepo(parana),
		orders:   order.NewSQLRepo(parana),
		olist:    olist.NewSQLRepo(ol),
		log:      zerolog.Nop(),
	})
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid json: %v body=%s", err, w.Body.String())
	}
}

func TestListShoppers_QSelectsSearch(t *testing.T) {
	repo := &stubShoppers{}
	r := newRouter(deps{shoppers: repo, log: zerolog.Nop()})

	// no q: plain list
	{
		w := get(r, "/shoppers?limit=500")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var got ShopperList
		decode(t, w, &got)
		if !repo.listed || repo.lastSearch != "" {
			t.Fatalf("expected List, got search %q", repo.lastSearch)
		}
		if got.Limit != defaultLimit {
			t.Fatalf("limit=%d, want %d", got.Limit, defaultLimit)
		}
	}

	// q: search, empty result serialises as []
	{
		w := get(r, "/shoppers?q=bob")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		if repo.lastSearch != "bob" {
			t.Fatalf("search keyword=%q", repo.lastSearch)
		}
		var raw map[string]json.RawMessage
		decode(t, w, &raw)
		if string(raw["items"]) != "[]" {
			t.Fatalf("items=%s, want []", raw["items"])
		}
	}
}

func TestShoppers_Fixture(t *testing.T) {
	r := fixtureRouter(t)

	{
		w := get(r, "/shoppers?q=bob")
		var got ShopperList
		decode(t, w, &got)
		if len(got.Items) != 2 || got.Items[0].ID != 2 || got.Items[1].ID != 3 {
			t.Fatalf("unexpected items: %+v", got.Items)
		}
	}

	{
		w := get(r, "/shoppers/7")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var got shopper.Shopper
		decode(t, w, &got)
		if got.FullName() != "Grace Hopper" {
			t.Fatalf("name=%q", got.FullName())
		}
	}

	{
		w := get(r, "/shoppers/6")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var got httpx.HTTPError
		decode(t, w, &got)
		if got.Error != "shopper not found" {
			t.Fatalf("error=%q", got.Error)
		}
	}

	for _, p := range []string{"/shoppers/abc", "/shoppers/0", "/orders/-1/items", "/shoppers/x/orders"} {
		if w := get(r, p); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", p, w.Code)
		}
	}
}

func TestOrders_Fixture(t *testing.T) {
	r := fixtureRouter(t)

	{
		w := get(r, "/shoppers/7/orders")
		var got []order.Order
		decode(t, w, &got)
		if len(got) != 2 || got[0].ID != 702 || got[1].ID != 701 {
			t.Fatalf("unexpected orders: %+v", got)
		}
	}

	{
		w := get(r, "/orders/701/items")
		var got OrderItems
		decode(t, w, &got)
		if len(got.Items) != 2 || got.Summary.Total.String() != "13" {
			t.Fatalf("unexpected: %+v", got)
		}
		if got.Items[0].ProductDescription != "Anvil" {
			t.Fatalf("first item=%q, want Anvil", got.Items[0].ProductDescription)
		}
	}

	// dangling product: no lines, zero total
	{
		w := get(r, "/orders/702/items")
		var raw map[string]json.RawMessage
		decode(t, w, &raw)
		if string(raw["items"]) != "[]" {
			t.Fatalf("items=%s, want []", raw["items"])
		}
	}

	{
		w := get(r, "/orders/101/total")
		var got order.Summary
		decode(t, w, &got)
		if got.Total.String() != "2.8" || got.Units != 4 {
			t.Fatalf("unexpected summary: %+v", got)
		}
	}
}

func TestSchema_Fixture(t *testing.T) {
	r := fixtureRouter(t)

	{
		w := get(r, "/schema/tables")
		var got []string
		decode(t, w, &got)
		if len(got) != 5 {
			t.Fatalf("tables=%v", got)
		}
	}

	{
		w := get(r, "/schema/tables/nope")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
	}
}

func TestOlist_Fixture(t *testing.T) {
	r := fixtureRouter(t)

	{
		w := get(r, "/olist/customers?state=SP")
		var got []olist.Customer
		decode(t, w, &got)
		if len(got) != 3 {
			t.Fatalf("customers=%+v", got)
		}
	}

	{
		w := get(r, "/olist/customers?limit=2")
		var got []olist.Customer
		decode(t, w, &got)
		if len(got) != 2 {
			t.Fatalf("customers=%+v", got)
		}
	}

	{
		w := get(r, "/olist/unique-customers/u1/orders")
		var got []olist.Order
		decode(t, w, &got)
		if len(got) != 3 || got[0].ID != "o2" {
			t.Fatalf("orders=%+v", got)
		}
	}

	{
		w := get(r, "/olist/customers/c3/orders")
		var got []olist.Order
		decode(t, w, &got)
		if len(got) != 1 || got[0].Status != "shipped" {
			t.Fatalf("orders=%+v", got)
		}
	}

	{
		w := get(r, "/olist/orders/o1/total")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var got olist.OrderTotals
		decode(t, w, &got)
		if got.ItemCount != 2 || got.Price.String() != "148.69" || got.Freight.String() != "31.48" || got.Total.String() != "180.17" {
			t.Fatalf("totals=%+v", got)
		}
	}

	{
		w := get(r, "/olist/orders/o1/items")
		var got OlistOrderItems
		decode(t, w, &got)
		if got.Totals.ItemCount != 2 || got.Totals.Total.String() != "180.17" {
			t.Fatalf("totals=%+v", got.Totals)
		}
	}
}

func TestMissingDatabase_Returns503(t *testing.T) {
	missing := store.New(storetest.Missing(t, "parana"))
	r := newRouter(deps{
		shoppers: shopper.NewSQLRepo(missing),
		orders:   order.NewSQLRepo(missing),
		log:      zerolog.Nop(),
	})

	for _, p := range []string{"/shoppers", "/shoppers/1", "/orders/1/total", "/schema/tables"} {
		w := get(r, p)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s: expected 503, got %d body=%s", p, w.Code, w.Body.String())
		}
		var got httpx.HTTPError
		decode(t, w, &got)
		if got.Error != "dataset unavailable" {
			t.Fatalf("%s: error=%q", p, got.Error)
		}
		if strings.Contains(w.Body.String(), missing.Target().DSN) || strings.Contains(w.Body.String(), "parana.db") {
			t.Fatalf("%s: body leaks the database path: %s", p, w.Body.String())
		}
	}
}

func TestHealthzAndRequestID(t *testing.T) {
	r := newRouter(deps{log: zerolog.Nop()})

	w := get(r, "/healthz")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if w.Header().Get(httpx.HeaderRequestID) == "" {
		t.Fatalf("missing %s header", httpx.HeaderRequestID)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(httpx.HeaderRequestID, "abc-123")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(httpx.HeaderRequestID); got != "abc-123" {
		t.Fatalf("request id=%q", got)
	}
}
