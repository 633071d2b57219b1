// Package order reads shopper orders and their line items from the Parana
// store and derives order totals.
package order

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/parana-browser/internal/store"
)

const (
	DefaultLimit = 20
	queryTimeout = 5 * time.Second
)

type Repository interface {
	ListByShopper(ctx context.Context, shopperID int64, limit int) ([]Order, error)
	Items(ctx context.Context, orderID int64) ([]Item, error)
	Total(ctx context.Context, orderID int64) (decimal.Decimal, error)
	Summary(ctx context.Context, orderID int64) (Summary, error)
}

type SQLRepo struct{ src *store.Source }

func NewSQLRepo(src *store.Source) *SQLRepo { return &SQLRepo{src: src} }

func (r *SQLRepo) ListByShopper(ctx context.Context, shopperID int64, limit int) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if limit <= 0 {
		limit = DefaultLimit
	}
	out := []Order{}
	err := r.src.With(ctx, func(c *store.Conn) error {
		rows, err := c.Query(ctx, `
		SELECT order_id, shopper_id, order_date, COALESCE(order_status, '')
		FROM shopper_orders
		WHERE shopper_id = ?
		ORDER BY order_date DESC, order_id DESC
		LIMIT ?
	`, shopperID, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var o Order
			if err := rows.Scan(&o.ID, &o.ShopperID, &o.OrderedAt, &o.Status); err != nil {
				return err
			}
			out = append(out, o)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, errors.Wrapf(err, "list orders for shopper %d", shopperID)
	}
	return out, nil
}

// Items returns the order's lines ordered by product description. Lines
// whose product or seller does not resolve are left out.
func (r *SQLRepo) Items(ctx context.Context, orderID int64) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var items []Item
	err := r.src.With(ctx, func(c *store.Conn) (err error) {
		items, err = queryItems(ctx, c, orderID)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "list items for order %d", orderID)
	}
	return items, nil
}

// Total is Σ quantity × price over exactly the lines Items returns.
func (r *SQLRepo) Total(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	s, err := r.Summary(ctx, orderID)
	if err != nil {
		return decimal.Zero, err
	}
	return s.Total, nil
}

func (r *SQLRepo) Summary(ctx context.Context, orderID int64) (Summary, error) {
	items, err := r.Items(ctx, orderID)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "total order %d", orderID)
	}
	return Summarize(orderID, items), nil
}

func queryItems(ctx context.Context, c *store.Conn, orderID int64) ([]Item, error) {
	rows, err := c.Query(ctx, `
		SELECT
			op.order_id,
			op.product_id,
			op.seller_id,
			op.quantity,
			op.price,
			COALESCE(op.ordered_product_status, ''),
			p.product_description,
			COALESCE(p.product_manufacturer, ''),
			COALESCE(p.product_model, ''),
			s.seller_name,
			COALESCE(s.seller_email_address, '')
		FROM ordered_products op
		JOIN products p ON p.product_id = op.product_id
		JOIN sellers s ON s.seller_id = op.seller_id
		WHERE op.order_id = ?
		ORDER BY p.product_description ASC, op.product_id ASC, op.seller_id ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.OrderID, &it.ProductID, &it.SellerID, &it.Quantity, &it.Price, &it.Status,
			&it.ProductDescription, &it.Manufacturer, &it.Model, &it.SellerName, &it.SellerEmail,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
