// Package olist reads customers, orders and order items from the Olist store.
package olist

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/MikeMC777/parana-browser/internal/store"
)

const (
	DefaultLimit       = 20
	DefaultSearchLimit = 50
	queryTimeout       = 5 * time.Second
)

type Repository interface {
	ListCustomers(ctx context.Context, limit int) ([]Customer, error)
	SearchCustomers(ctx context.Context, f CustomerFilter, limit int) ([]Customer, error)
	OrdersByCustomer(ctx context.Context, customerID string, limit int) ([]Order, error)
	OrdersByUniqueID(ctx context.Context, uniqueID string, limit int) ([]Order, error)
	Items(ctx context.Context, orderID string) ([]Item, error)
	OrderTotals(ctx context.Context, orderID string) (OrderTotals, error)
}

type SQLRepo struct{ src *store.Source }

func NewSQLRepo(src *store.Source) *SQLRepo { return &SQLRepo{src: src} }

const customerColumns = `
	customer_id,
	customer_unique_id,
	COALESCE(customer_zip_code_prefix, ''),
	COALESCE(customer_city, ''),
	COALESCE(customer_state, '')`

// ListCustomers returns the first limit customers in storage order.
func (r *SQLRepo) ListCustomers(ctx context.Context, limit int) ([]Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if limit <= 0 {
		limit = DefaultLimit
	}
	var out []Customer
	err := r.src.With(ctx, func(c *store.Conn) error {
		rows, err := c.Query(ctx, `SELECT`+customerColumns+` FROM olist_customers LIMIT ?`, limit)
		if err != nil {
			return err
		}
		out, err = scanCustomers(rows)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "list customers")
	}
	return out, nil
}

// SearchCustomers ANDs the non-empty filters: city is a case-insensitive
// substring, state a case-insensitive exact match.
func (r *SQLRepo) SearchCustomers(ctx context.Context, f CustomerFilter, limit int) ([]Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	city := store.EscapeLike(strings.TrimSpace(f.City))
	state := strings.TrimSpace(f.State)
	q := `SELECT` + customerColumns + `
		FROM olist_customers
		WHERE (? = '' OR LOWER(customer_city) LIKE '%' || LOWER(?) || '%' ESCAPE '\')
		  AND (? = '' OR UPPER(customer_state) = UPPER(?))
		LIMIT ?`
	args := []any{city, city, state, state, limit}

	var out []Customer
	err := r.src.With(ctx, func(c *store.Conn) error {
		rows, err := c.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		out, err = scanCustomers(rows)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "search customers city=%q state=%q", f.City, f.State)
	}
	return out, nil
}

func (r *SQLRepo) OrdersByCustomer(ctx context.Context, customerID string, limit int) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if limit <= 0 {
		limit = DefaultLimit
	}
	var out []Order
	err := r.src.With(ctx, func(c *store.Conn) error {
		rows, err := c.Query(ctx, `
		SELECT order_id, customer_id, COALESCE(order_status, ''), order_purchase_timestamp
		FROM olist_orders
		WHERE customer_id = ?
		ORDER BY order_purchase_timestamp DESC
		LIMIT ?
	`, customerID, limit)
		if err != nil {
			return err
		}
		out, err = scanOrders(rows)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "list orders for customer %s", customerID)
	}
	return out, nil
}

// OrdersByUniqueID returns orders across every customer_id that shares
// uniqueID.
func (r *SQLRepo) OrdersByUniqueID(ctx context.Context, uniqueID string, limit int) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if limit <= 0 {
		limit = DefaultLimit
	}
	var out []Order
	err := r.src.With(ctx, func(c *store.Conn) error {
		rows, err := c.Query(ctx, `
		SELECT o.order_id, o.customer_id, COALESCE(o.order_status, ''), o.order_purchase_timestamp
		FROM olist_orders o
		JOIN olist_customers c ON o.customer_id = c.customer_id
		WHERE c.customer_unique_id = ?
		ORDER BY o.order_purchase_timestamp DESC
		LIMIT ?
	`, uniqueID, limit)
		if err != nil {
			return err
		}
		out, err = scanOrders(rows)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "list orders for unique customer %s", uniqueID)
	}
	return out, nil
}

// Items joins each order line to its product. Lines with an unknown
// product are left out.
func (r *SQLRepo) Items(ctx context.Context, orderID string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	out := []Item{}
	err := r.src.With(ctx, func(c *store.Conn) error {
		rows, err := c.Query(ctx, `
		SELECT
			oi.order_id,
			oi.order_item_id,
			oi.product_id,
			oi.price,
			oi.freight_value,
			p.product_category_name,
			p.product_photos_qty
		FROM olist_order_items oi
		JOIN olist_products p ON oi.product_id = p.product_id
		WHERE oi.order_id = ?
	`, orderID)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var (
				it       Item
				category sql.NullString
				photos   sql.NullInt64
			)
			if err := rows.Scan(&it.OrderID, &it.ItemSeq, &it.ProductID, &it.Price, &it.Freight, &category, &photos); err != nil {
				return err
			}
			it.Category = category.String
			it.PhotoCount = photos.Int64
			out = append(out, it)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, errors.Wrapf(err, "list items for order %s", orderID)
	}
	return out, nil
}

func (r *SQLRepo) OrderTotals(ctx context.Context, orderID string) (OrderTotals, error) {
	items, err := r.Items(ctx, orderID)
	if err != nil {
		return OrderTotals{}, err
	}
	return Totals(orderID, items), nil
}

func scanCustomers(rows *sql.Rows) ([]Customer, error) {
	defer rows.Close()
	out := []Customer{}
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.UniqueID, &c.ZipCodePrefix, &c.City, &c.State); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanOrders(rows *sql.Rows) ([]Order, error) {
	defer rows.Close()
	out := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.PurchasedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
