package olist

import (
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/parana-browser/internal/store"
)

type Customer struct {
	ID            string `json:"customer_id"`
	UniqueID      string `json:"customer_unique_id"`
	ZipCodePrefix string `json:"customer_zip_code_prefix"`
	City          string `json:"customer_city"`
	State         string `json:"customer_state"`
}

// CustomerFilter narrows SearchCustomers. Empty fields do not filter.
type CustomerFilter struct {
	City  string
	State string
}

type Order struct {
	ID          string     `json:"order_id"`
	CustomerID  string     `json:"customer_id"`
	Status      string     `json:"order_status"`
	PurchasedAt store.Date `json:"order_purchase_timestamp"`
}

type Item struct {
	OrderID    string          `json:"order_id"`
	ItemSeq    int64           `json:"order_item_id"`
	ProductID  string          `json:"product_id"`
	Price      decimal.Decimal `json:"price"`
	Freight    decimal.Decimal `json:"freight_value"`
	Category   string          `json:"product_category_name"`
	PhotoCount int64           `json:"product_photos_qty"`
}

// OrderTotals is derived from an order's items; nothing here is stored.
type OrderTotals struct {
	OrderID   string          `json:"order_id"`
	ItemCount int             `json:"item_count"`
	Price     decimal.Decimal `json:"total_price"`
	Freight   decimal.Decimal `json:"total_freight"`
	Total     decimal.Decimal `json:"total"`
}

func Totals(orderID string, items []Item) OrderTotals {
	t := OrderTotals{OrderID: orderID, Price: decimal.Zero, Freight: decimal.Zero}
	for _, it := range items {
		t.ItemCount++
		t.Price = t.Price.Add(it.Price)
		t.Freight = t.Freight.Add(it.Freight)
	}
	t.Total = t.Price.Add(t.Freight)
	return t
}
