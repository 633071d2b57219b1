package main

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/MikeMC777/parana-browser/internal/httpx"
	"github.com/MikeMC777/parana-browser/internal/olist"
	"github.com/MikeMC777/parana-browser/internal/order"
	"github.com/MikeMC777/parana-browser/internal/shopper"
	"github.com/MikeMC777/parana-browser/internal/store"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// ShopperList is the response of the shopper list and search endpoints.
// swagger:model
type ShopperList struct {
	Q     string            `json:"q,omitempty"`
	Limit int               `json:"limit"`
	Items []shopper.Shopper `json:"items"`
}

// OrderItems wraps an order's lines with their derived total.
// swagger:model
type OrderItems struct {
	Summary order.Summary `json:"summary"`
	Items   []order.Item  `json:"items"`
}

// OlistOrderItems wraps an Olist order's lines with derived totals.
// swagger:model
type OlistOrderItems struct {
	Totals olist.OrderTotals `json:"totals"`
	Items  []olist.Item      `json:"items"`
}

func fail(c *gin.Context, log zerolog.Logger, err error) {
	rid, _ := c.Get("rid")
	if errors.Is(err, store.ErrNotFound) {
		log.Warn().Err(err).Interface("rid", rid).Msg("dataset unavailable")
		c.JSON(http.StatusServiceUnavailable, httpx.HTTPError{Error: "dataset unavailable"})
		return
	}
	log.Error().Err(err).Interface("rid", rid).Msg("request failed")
	c.JSON(http.StatusInternalServerError, httpx.HTTPError{Error: "internal error"})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v < 1 {
		c.JSON(http.StatusBadRequest, httpx.HTTPError{Error: "invalid " + name})
		return 0, false
	}
	return v, true
}

// listShoppersHandler godoc
// @Summary     List or search shoppers
// @Description Newest joiners first. With q, matches first name, surname or email (case-insensitive substring).
// @Tags        shoppers
// @Produce     json
// @Param       q     query string false "search keyword"
// @Param       limit query int    false "max rows (1-100)" default(20)
// @Success     200 {object} ShopperList
// @Failure     500 {object} httpx.HTTPError
// @Router      /shoppers [get]
func listShoppersHandler(repo shopper.Repository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := httpx.Limit(c, defaultLimit, maxLimit)
		q := c.Query("q")

		var (
			out []shopper.Shopper
			err error
		)
		if q != "" {
			out, err = repo.Search(c.Request.Context(), q, limit)
		} else {
			out, err = repo.List(c.Request.Context(), limit)
		}
		if err != nil {
			fail(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ShopperList{Q: q, Limit: limit, Items: out})
	}
}

// getShopperHandler godoc
// @Summary  Get a shopper
// @Tags     shoppers
// @Produce  json
// @Param    id path int true "shopper id"
// @Success  200 {object} shopper.Shopper
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /shoppers/{id} [get]
func getShopperHandler(repo shopper.Repository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		s, found, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			fail(c, log, err)
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, httpx.HTTPError{Error: "shopper not found"})
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// listShopperOrdersHandler godoc
// @Summary  List a shopper's orders, newest first
// @Tags     orders
// @Produce  json
// @Param    id    path  int true  "shopper id"
// @Param    limit query int false "max rows (1-100)" default(20)
// @Success  200 {array}  order.Order
// @Failure  400 {object} httpx.HTTPError
// @Router   /shoppers/{id}/orders [get]
func listShopperOrdersHandler(repo order.Repository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		out, err := repo.ListByShopper(c.Request.Context(), id, httpx.Limit(c, defaultLimit, maxLimit))
		if err != nil {
			fail(c, log, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// getOrderItemsHandler godoc
// @Summary     List an order's lines
// @Description Lines joined to product and seller, ordered by product description. Lines with unresolved references are omitted.
// @Tags        orders
// @Produce     json
// @Param       id path int true "order id"
// @Success     200 {object} OrderItems
// @Failure     400 {object} httpx.HTTPError
// @Router      /orders/{id}/items [get]
func getOrderItemsHandler(repo order.Repository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		items, err := repo.Items(c.Request.Context(), id)
		if err != nil {
			fail(c, log, err)
			return
		}
		c.JSON(http.StatusOK, OrderItems{Summary: order.Summarize(id, items), Items: items})
	}
}

// getOrderTotalHandler godoc
// @Summary  Order total (sum of quantity × price)
// @Tags     orders
// @Produce  json
// @Param    id path int true "order id"
// @Success  200 {object} order.Summary
// @Failure  400 {object} httpx.HTTPError
// @Router   /orders/{id}/total [get]
func getOrderTotalHandler(repo order.Repository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		s, err := repo.Summary(c.Request.Context(), id)
		if err != nil {
			fail(c, log, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// listTablesHandler godoc
// @Summary  List tables of the shopper database
// @Tags     schema
// @Produce  json
// @Success  200 {array} string
// @Router   /schema/tables [get]
func listTablesHandler(repo shopper.Repository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.ListTables(c.Request.Context())
		if err != nil {
			fail(c, log, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// describeTableHandler godoc
// @Summary     Describe a table
// @Description Unknown tables return an empty list.
// @Tags        schema
// @Produce     json
// @Param       name path string true "table name"
// @Success     200 {array} shopper.Column
// @Router      /schema/tables/{name} [get]
func describeTableHandler(repo shopper.Repository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.DescribeTable(c.Request.Context(), c.Param("name"))
		if err != nil {
			fail(c, log, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// listCustomersHandler godoc
// @Summary     List or search Olist customers
// @Description city is a case-insensitive substring, state a case-insensitive exact match; both optional.
// @Tags        olist
// @Produce     json
// @Param       city  query string false "city contains"
// @Param       state query string false "state code"
// @Param       limit query int    false "max rows (1-100)" default(20)
// @Success     200 {array} olist.Customer
// @Router      /olist/customers [get]
func listCustomersHandler(repo olist.Repository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := httpx.Limit(c, defaultLimit, maxLimit)
		f := olist.CustomerFilter{City: c.Query("city"), State: c.Query("state")}

		var (
			out []olist.Customer
			err error
		)
		if f == (olist.CustomerFilter{}) {
			out, err = repo.ListCustomers(c.Request.Context(), limit)
		} else {
			out, err = repo.SearchCustomers(c.Request.Context(), f, limit)
		}
		if err != nil {
			fail(c, log, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// customerOrdersHandler godoc
// @Summary  Orders for one customer_id, newest purchase first
// @Tags     olist
// @Produce  json
// @Param    id    path  string true  "customer id"
// @Param    limit query int    false "max rows (1-100)" default(20)
// @Success  200 {array} olist.Order
// @Router   /olist/customers/{id}/orders [get]
func customerOrdersHandler(repo olist.Repository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.OrdersByCustomer(c.Request.Context(), c.Param("id"), httpx.Limit(c, defaultLimit, maxLimit))
		if err != nil {
			fail(c, log, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// uniqueCustomerOrdersHandler godoc
// @Summary  Orders across every customer_id sharing a customer_unique_id
// @Tags     olist
// @Produce  json
// @Param    unique_id path  string true  "customer unique id"
// @Param    limit     query int    false "max rows (1-100)" default(20)
// @Success  200 {array} olist.Order
// @Router   /olist/unique-customers/{unique_id}/orders [get]
func uniqueCustomerOrdersHandler(repo olist.Repository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.OrdersByUniqueID(c.Request.Context(), c.Param("unique_id"), httpx.Limit(c, defaultLimit, maxLimit))
		if err != nil {
			fail(c, log, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// olistOrderItemsHandler godoc
// @Summary  Olist order items with derived price and freight totals
// @Tags     olist
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} OlistOrderItems
// @Router   /olist/orders/{id}/items [get]
func olistOrderItemsHandler(repo olist.Repository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		items, err := repo.Items(c.Request.Context(), id)
		if err != nil {
			fail(c, log, err)
			return
		}
		c.JSON(http.StatusOK, OlistOrderItems{Totals: olist.Totals(id, items), Items: items})
	}
}

// olistOrderTotalHandler godoc
// @Summary  Olist order price, freight and grand totals
// @Tags     olist
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} olist.OrderTotals
// @Router   /olist/orders/{id}/total [get]
func olistOrderTotalHandler(repo olist.Repository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := repo.OrderTotals(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, log, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}
