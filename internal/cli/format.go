package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/parana-browser/internal/olist"
	"github.com/MikeMC777/parana-browser/internal/order"
	"github.com/MikeMC777/parana-browser/internal/shopper"
)

var (
	headingColor = color.New(color.Bold, color.FgCyan)
	noticeColor  = color.New(color.FgYellow)
)

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// printTable renders rows under header, or a notice when there are none.
func printTable(w io.Writer, header []string, rows [][]string) {
	if len(rows) == 0 {
		noticeColor.Fprint(w, "\nNo results found.\n\n")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
	fmt.Fprintf(w, "(%d row%s)\n\n", len(rows), pluralize(len(rows)))
}

func pounds(d decimal.Decimal) string { return "£" + d.StringFixed(2) }

func reais(d decimal.Decimal) string { return "R$" + d.StringFixed(2) }

func id(n int64) string { return strconv.FormatInt(n, 10) }

func printShoppers(w io.Writer, list []shopper.Shopper) {
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{"#" + id(s.ID), s.FullName(), s.Email, s.DateJoined.String()})
	}
	printTable(w, []string{"id", "name", "email", "joined"}, rows)
}

func printShopper(w io.Writer, s shopper.Shopper) {
	headingColor.Fprintln(w, "\nShopper details:")
	fmt.Fprintf(w, "ID:            %d\n", s.ID)
	fmt.Fprintf(w, "Account ref:   %s\n", s.AccountRef)
	fmt.Fprintf(w, "Name:          %s\n", s.FullName())
	fmt.Fprintf(w, "Email:         %s\n", s.Email)
	fmt.Fprintf(w, "Date of birth: %s\n", s.DateOfBirth)
	fmt.Fprintf(w, "Gender:        %s\n", s.Gender)
	fmt.Fprintf(w, "Date joined:   %s\n\n", s.DateJoined)
}

func printOrders(w io.Writer, list []order.Order) {
	rows := make([][]string, 0, len(list))
	for _, o := range list {
		rows = append(rows, []string{id(o.ID), o.OrderedAt.String(), o.Status})
	}
	printTable(w, []string{"order", "date", "status"}, rows)
}

func printItems(w io.Writer, orderID int64, items []order.Item) {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.ProductDescription,
			strings.TrimSpace(it.Manufacturer + " " + it.Model),
			it.SellerName,
			strconv.FormatInt(it.Quantity, 10),
			pounds(it.Price),
			pounds(it.LineTotal()),
			it.Status,
		})
	}
	printTable(w, []string{"product", "make/model", "seller", "qty", "price", "line total", "status"}, rows)
	printSummary(w, order.Summarize(orderID, items))
}

func printSummary(w io.Writer, s order.Summary) {
	fmt.Fprintf(w, "Order %d total: %s (%d item%s, %d unit%s)\n\n",
		s.OrderID, pounds(s.Total), s.ItemCount, pluralize(s.ItemCount), s.Units, pluralize(int(s.Units)))
}

func printTables(w io.Writer, names []string) {
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		rows = append(rows, []string{n})
	}
	printTable(w, []string{"table"}, rows)
}

func printColumns(w io.Writer, cols []shopper.Column) {
	rows := make([][]string, 0, len(cols))
	for _, c := range cols {
		dflt := "NULL"
		if c.Default != nil {
			dflt = *c.Default
		}
		rows = append(rows, []string{
			strconv.Itoa(c.Position), c.Name, c.Type,
			strconv.FormatBool(c.NotNull), dflt, strconv.FormatBool(c.PrimaryKey),
		})
	}
	printTable(w, []string{"cid", "name", "type", "not null", "default", "pk"}, rows)
}

func printCustomers(w io.Writer, list []olist.Customer) {
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{c.ID, c.UniqueID, c.ZipCodePrefix, c.City, c.State})
	}
	printTable(w, []string{"customer_id", "unique_id", "zip", "city", "state"}, rows)
}

func printOlistOrders(w io.Writer, list []olist.Order) {
	rows := make([][]string, 0, len(list))
	for _, o := range list {
		rows = append(rows, []string{o.ID, o.CustomerID, o.Status, o.PurchasedAt.String()})
	}
	printTable(w, []string{"order_id", "customer_id", "status", "purchased"}, rows)
}

func printOlistItems(w io.Writer, orderID string, items []olist.Item) {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.FormatInt(it.ItemSeq, 10), it.ProductID, it.Category,
			strconv.FormatInt(it.PhotoCount, 10), reais(it.Price), reais(it.Freight),
		})
	}
	printTable(w, []string{"#", "product_id", "category", "photos", "price", "freight"}, rows)

	printOlistTotals(w, olist.Totals(orderID, items))
}

func printOlistTotals(w io.Writer, t olist.OrderTotals) {
	fmt.Fprintf(w, "Order %s: price %s + freight %s = %s (%d item%s)\n\n",
		t.OrderID, reais(t.Price), reais(t.Freight), reais(t.Total), t.ItemCount, pluralize(t.ItemCount))
}
