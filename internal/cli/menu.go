package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/MikeMC777/parana-browser/internal/olist"
	"github.com/MikeMC777/parana-browser/internal/store"
)

type menuEntry struct {
	key   string
	label string
	run   func(context.Context) error
}

// Menu is the interactive read loop.
type Menu struct {
	app     *App
	in      *bufio.Scanner
	out     io.Writer
	entries []menuEntry
}

func NewMenu(app *App, in io.Reader) *Menu {
	m := &Menu{app: app, in: bufio.NewScanner(in), out: app.Out}
	m.entries = []menuEntry{
		{"1", "List shoppers", m.listShoppers},
		{"2", "Search shoppers (name/email)", m.searchShoppers},
		{"3", "View shopper by ID", m.viewShopper},
		{"4", "Orders for a shopper", m.shopperOrders},
		{"5", "Order items and total", m.orderItems},
		{"6", "List tables", m.listTables},
		{"7", "Describe a table", m.describeTable},
		{"8", "List Olist customers", m.listCustomers},
		{"9", "Search Olist customers (city/state)", m.searchCustomers},
		{"10", "Olist orders by customer ID", m.ordersByCustomer},
		{"11", "Olist orders by customer unique ID", m.ordersByUniqueID},
		{"12", "Olist order items and totals", m.olistItems},
	}
	return m
}

// Run loops until the user exits or input ends. A missing database ends
// the loop with that error; other failures are reported and the loop goes on.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()
		choice, err := m.readLine(fmt.Sprintf("Choose an option (0-%d): ", len(m.entries)))
		if err != nil {
			return m.finish(err)
		}
		if choice == "0" {
			return m.finish(nil)
		}
		entry, ok := m.lookup(choice)
		if !ok {
			noticeColor.Fprintf(m.out, "\nInvalid option. Choose 0-%d.\n\n", len(m.entries))
			continue
		}
		if err := entry.run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return m.finish(nil)
			}
			if errors.Is(err, store.ErrNotFound) {
				return err
			}
			m.app.Log.Error().Err(err).Str("option", entry.label).Msg("menu action failed")
			noticeColor.Fprintf(m.out, "\nError: %v\n\n", err)
		}
	}
}

func (m *Menu) finish(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	fmt.Fprint(m.out, "\nThank you!\n\n")
	return nil
}

func (m *Menu) lookup(key string) (menuEntry, bool) {
	for _, e := range m.entries {
		if e.key == key {
			return e, true
		}
	}
	return menuEntry{}, false
}

func (m *Menu) printMenu() {
	headingColor.Fprintln(m.out, "=== Parana DB Reader ===")
	for _, e := range m.entries {
		fmt.Fprintf(m.out, "%2s) %s\n", e.key, e.label)
	}
	fmt.Fprintln(m.out, " 0) Exit")
}

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// promptInt asks until it gets an integer >= 1. def > 0 is returned for
// empty input.
func (m *Menu) promptInt(prompt string, def int) (int, error) {
	for {
		raw, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if raw == "" && def > 0 {
			return def, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a valid number.")
			continue
		}
		if v < 1 {
			fmt.Fprintln(m.out, "Please enter a number >= 1.")
			continue
		}
		return v, nil
	}
}

// promptText returns "" with ok=false when the user enters nothing.
func (m *Menu) promptText(prompt, emptyMsg string) (string, bool, error) {
	v, err := m.readLine(prompt)
	if err != nil {
		return "", false, err
	}
	if v == "" {
		if emptyMsg != "" {
			noticeColor.Fprintf(m.out, "%s\n\n", emptyMsg)
		}
		return "", false, nil
	}
	return v, true, nil
}

func (m *Menu) listShoppers(ctx context.Context) error {
	limit, err := m.promptInt("How many shoppers? (default 10): ", 10)
	if err != nil {
		return err
	}
	list, err := m.app.Shoppers.List(ctx, limit)
	if err != nil {
		return err
	}
	printShoppers(m.out, list)
	return nil
}

func (m *Menu) searchShoppers(ctx context.Context) error {
	kw, ok, err := m.promptText("Search keyword (name/email): ", "Keyword cannot be empty.")
	if err != nil || !ok {
		return err
	}
	limit, err := m.promptInt("Max results? (default 20): ", 20)
	if err != nil {
		return err
	}
	list, err := m.app.Shoppers.Search(ctx, kw, limit)
	if err != nil {
		return err
	}
	printShoppers(m.out, list)
	return nil
}

func (m *Menu) viewShopper(ctx context.Context) error {
	sid, err := m.promptInt("Enter shopper ID: ", 0)
	if err != nil {
		return err
	}
	s, found, err := m.app.Shoppers.GetByID(ctx, int64(sid))
	if err != nil {
		return err
	}
	if !found {
		noticeColor.Fprintf(m.out, "\nNo shopper found with ID %d.\n\n", sid)
		return nil
	}
	printShopper(m.out, s)
	return nil
}

func (m *Menu) shopperOrders(ctx context.Context) error {
	sid, err := m.promptInt("Enter shopper ID: ", 0)
	if err != nil {
		return err
	}
	s, found, err := m.app.Shoppers.GetByID(ctx, int64(sid))
	if err != nil {
		return err
	}
	if !found {
		noticeColor.Fprintf(m.out, "\nNo shopper found with ID %d.\n\n", sid)
		return nil
	}
	limit, err := m.promptInt("Max orders? (default 20): ", 20)
	if err != nil {
		return err
	}
	orders, err := m.app.Orders.ListByShopper(ctx, s.ID, limit)
	if err != nil {
		return err
	}
	headingColor.Fprintf(m.out, "\nOrders for %s (#%d):\n", s.FullName(), s.ID)
	printOrders(m.out, orders)
	return nil
}

func (m *Menu) orderItems(ctx context.Context) error {
	oid, err := m.promptInt("Enter order ID: ", 0)
	if err != nil {
		return err
	}
	items, err := m.app.Orders.Items(ctx, int64(oid))
	if err != nil {
		return err
	}
	printItems(m.out, int64(oid), items)
	return nil
}

func (m *Menu) listTables(ctx context.Context) error {
	names, err := m.app.Shoppers.ListTables(ctx)
	if err != nil {
		return err
	}
	printTables(m.out, names)
	return nil
}

func (m *Menu) describeTable(ctx context.Context) error {
	name, ok, err := m.promptText("Table name: ", "Table name cannot be empty.")
	if err != nil || !ok {
		return err
	}
	cols, err := m.app.Shoppers.DescribeTable(ctx, name)
	if err != nil {
		return err
	}
	printColumns(m.out, cols)
	return nil
}

func (m *Menu) listCustomers(ctx context.Context) error {
	limit, err := m.promptInt("How many customers? (default 20): ", 20)
	if err != nil {
		return err
	}
	list, err := m.app.Olist.ListCustomers(ctx, limit)
	if err != nil {
		return err
	}
	printCustomers(m.out, list)
	return nil
}

func (m *Menu) searchCustomers(ctx context.Context) error {
	city, _, err := m.promptText("City contains (blank for any): ", "")
	if err != nil {
		return err
	}
	state, _, err := m.promptText("State (blank for any): ", "")
	if err != nil {
		return err
	}
	limit, err := m.promptInt("Max results? (default 50): ", 50)
	if err != nil {
		return err
	}
	list, err := m.app.Olist.SearchCustomers(ctx, olist.CustomerFilter{City: city, State: state}, limit)
	if err != nil {
		return err
	}
	printCustomers(m.out, list)
	return nil
}

func (m *Menu) ordersByCustomer(ctx context.Context) error {
	cid, ok, err := m.promptText("Customer ID: ", "Customer ID cannot be empty.")
	if err != nil || !ok {
		return err
	}
	limit, err := m.promptInt("Max orders? (default 20): ", 20)
	if err != nil {
		return err
	}
	orders, err := m.app.Olist.OrdersByCustomer(ctx, cid, limit)
	if err != nil {
		return err
	}
	printOlistOrders(m.out, orders)
	return nil
}

func (m *Menu) ordersByUniqueID(ctx context.Context) error {
	uid, ok, err := m.promptText("Customer unique ID: ", "Customer unique ID cannot be empty.")
	if err != nil || !ok {
		return err
	}
	limit, err := m.promptInt("Max orders? (default 20): ", 20)
	if err != nil {
		return err
	}
	orders, err := m.app.Olist.OrdersByUniqueID(ctx, uid, limit)
	if err != nil {
		return err
	}
	printOlistOrders(m.out, orders)
	return nil
}

func (m *Menu) olistItems(ctx context.Context) error {
	oid, ok, err := m.promptText("Order ID: ", "Order ID cannot be empty.")
	if err != nil || !ok {
		return err
	}
	items, err := m.app.Olist.Items(ctx, oid)
	if err != nil {
		return err
	}
	printOlistItems(m.out, oid, items)
	return nil
}
