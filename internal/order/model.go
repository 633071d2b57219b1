package order

import (
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/parana-browser/internal/store"
)

type Order struct {
	ID        int64      `json:"order_id"`
	ShopperID int64      `json:"shopper_id"`
	OrderedAt store.Date `json:"order_date"`
	Status    string     `json:"order_status"`
}

// Item is one ordered product joined with its product and seller.
type Item struct {
	OrderID            int64           `json:"order_id"`
	ProductID          int64           `json:"product_id"`
	SellerID           int64           `json:"seller_id"`
	Quantity           int64           `json:"quantity"`
	Price              decimal.Decimal `json:"price"`
	Status             string          `json:"ordered_product_status"`
	ProductDescription string          `json:"product_description"`
	Manufacturer       string          `json:"product_manufacturer"`
	Model              string          `json:"product_model"`
	SellerName         string          `json:"seller_name"`
	SellerEmail        string          `json:"seller_email_address"`
}

// LineTotal is quantity × price.
func (it Item) LineTotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(it.Quantity))
}

type Summary struct {
	OrderID   int64           `json:"order_id"`
	ItemCount int             `json:"item_count"`
	Units     int64           `json:"units"`
	Total     decimal.Decimal `json:"total"`
}

// Summarize totals items. No items gives a zero total.
func Summarize(orderID int64, items []Item) Summary {
	s := Summary{OrderID: orderID, Total: decimal.Zero}
	for _, it := range items {
		s.ItemCount++
		s.Units += it.Quantity
		s.Total = s.Total.Add(it.LineTotal())
	}
	return s
}
