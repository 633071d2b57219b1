package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/parana-browser/internal/config"
	"github.com/MikeMC777/parana-browser/internal/shopper"
	"github.com/MikeMC777/parana-browser/internal/store"
	"github.com/MikeMC777/parana-browser/internal/store/storetest"
)

func init() {
	color.NoColor = true
}

func fixtureConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Driver:     store.DriverSQLite,
		ParanaPath: storetest.NewParana(t).DSN,
		OlistPath:  storetest.NewOlist(t).DSN,
		LogLevel:   "error",
	}
}

func runMenu(t *testing.T, app *App, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app.Out = &out
	err := NewMenu(app, strings.NewReader(input)).Run(context.Background())
	return out.String(), err
}

func TestMenu_ShopperFlows(t *testing.T) {
	app := NewApp(fixtureConfig(t), zerolog.Nop(), nil)

	input := strings.Join([]string{
		"1", "", // list, default limit
		"3", "7", // view Grace
		"3", "6", // absent shopper
		"2", "", // empty keyword rejected
		"2", "bob", "x", "0", "5", // search with invalid then too-small limit
		"5", "701", // order items
		"5", "702", // dangling product
		"4", "7", "", // orders for shopper 7
		"6",
		"7", "shopper_orders",
		"42",
		"0",
	}, "\n") + "\n"

	out, err := runMenu(t, app, input)
	require.NoError(t, err)

	require.Contains(t, out, "=== Parana DB Reader ===")
	require.Contains(t, out, "Grace Hopper")
	require.Contains(t, out, "Account ref:   AC007")
	require.Contains(t, out, "No shopper found with ID 6.")
	require.Contains(t, out, "Keyword cannot be empty.")
	require.Contains(t, out, "Please enter a valid number.")
	require.Contains(t, out, "Please enter a number >= 1.")
	require.Contains(t, out, "Carol Bobbins")
	require.Contains(t, out, "Order 701 total: £13.00 (2 items, 3 units)")
	require.Contains(t, out, "Order 702 total: £0.00 (0 items, 0 units)")
	require.Contains(t, out, "Orders for Grace Hopper (#7):")
	require.Contains(t, out, "shopper_orders")
	require.Contains(t, out, "order_status")
	require.Contains(t, out, "Invalid option. Choose 0-12.")
	require.Contains(t, out, "Thank you!")

	require.Less(t, strings.Index(out, "Anvil"), strings.Index(out, "Widget"))
}

func TestMenu_OlistFlows(t *testing.T) {
	app := NewApp(fixtureConfig(t), zerolog.Nop(), nil)

	input := strings.Join([]string{
		"8", "2",
		"9", "", "sp", "",
		"10", "c1", "",
		"11", "u1", "",
		"11", "",
		"12", "o1",
	}, "\n") + "\n"

	out, err := runMenu(t, app, input)
	require.NoError(t, err, "end of input exits cleanly")

	require.Contains(t, out, "(2 rows)")
	require.Contains(t, out, "campinas")
	require.Contains(t, out, "(3 rows)")
	require.Contains(t, out, "Customer unique ID cannot be empty.")
	require.Contains(t, out, "Order o1: price R$148.69 + freight R$31.48 = R$180.17 (2 items)")
	require.Contains(t, out, "Thank you!")
}

func TestMenu_MissingDatabaseIsFatal(t *testing.T) {
	cfg := fixtureConfig(t)
	cfg.OlistPath = storetest.Missing(t, "olist").DSN
	app := NewApp(cfg, zerolog.Nop(), nil)

	_, err := runMenu(t, app, "8\n5\n1\n")
	require.True(t, errors.Is(err, store.ErrNotFound))
}

type failingShoppers struct {
	shopper.Repository
	err error
}

func (f failingShoppers) ListTables(context.Context) ([]string, error) { return nil, f.err }

func TestMenu_OtherErrorsAreReported(t *testing.T) {
	app := &App{
		Shoppers: failingShoppers{err: errors.New("disk on fire")},
		Log:      zerolog.Nop(),
	}

	out, err := runMenu(t, app, "6\n0\n")
	require.NoError(t, err)
	require.Contains(t, out, "Error: disk on fire")
	require.Contains(t, out, "Thank you!")
}

func runCmd(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{
		"--parana-db", cfg.ParanaPath,
		"--olist-db", cfg.OlistPath,
		"--log-level", "error",
	}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	cfg := fixtureConfig(t)

	cases := []struct {
		args []string
		want []string
	}{
		{[]string{"shoppers", "list", "--limit", "2"}, []string{"Dave Tester", "Bob Jones", "(2 rows)"}},
		{[]string{"shoppers", "search", "EXAMPLE"}, []string{"(4 rows)"}},
		{[]string{"shoppers", "get", "1"}, []string{"Alice Smith", "1990-05-01"}},
		{[]string{"shoppers", "get", "6"}, []string{"No shopper found with ID 6."}},
		{[]string{"shoppers", "orders", "7"}, []string{"702", "701", "(2 rows)"}},
		{[]string{"orders", "items", "101"}, []string{"Zebra pen", "£0.10", "Order 101 total: £2.80"}},
		{[]string{"orders", "total", "702"}, []string{"Order 702 total: £0.00"}},
		{[]string{"schema", "tables"}, []string{"ordered_products", "sellers", "(5 rows)"}},
		{[]string{"schema", "describe", "nope"}, []string{"No results found."}},
		{[]string{"olist", "customers", "--limit", "1"}, []string{"(1 row)"}},
		{[]string{"olist", "search", "--city", "rio"}, []string{"rio de janeiro"}},
		{[]string{"olist", "orders", "u1", "--unique"}, []string{"o2", "o1", "o4"}},
		{[]string{"olist", "orders", "c3"}, []string{"shipped"}},
		{[]string{"olist", "items", "o3"}, []string{"R$159.90", "R$19.22"}},
		{[]string{"olist", "total", "o1"}, []string{"Order o1: price R$148.69 + freight R$31.48 = R$180.17 (2 items)"}},
		{[]string{"olist", "total", "missing"}, []string{"Order missing: price R$0.00 + freight R$0.00 = R$0.00 (0 items)"}},
		{[]string{"orders", "total", "701"}, []string{"Order 701 total: £13.00"}},
	}
	for _, tc := range cases {
		out, err := runCmd(t, cfg, tc.args...)
		require.NoError(t, err, tc.args)
		for _, w := range tc.want {
			require.Contains(t, out, w, tc.args)
		}
	}
}

func TestCommands_InvalidID(t *testing.T) {
	_, err := runCmd(t, fixtureConfig(t), "shoppers", "get", "abc")
	require.ErrorContains(t, err, "invalid id")

	_, err = runCmd(t, fixtureConfig(t), "orders", "total", "0")
	require.ErrorContains(t, err, "invalid id")
}

func TestCommands_MissingDatabase(t *testing.T) {
	cfg := fixtureConfig(t)
	cfg.ParanaPath = storetest.Missing(t, "parana").DSN

	_, err := runCmd(t, cfg, "schema", "tables")
	require.True(t, errors.Is(err, store.ErrNotFound))
	require.Contains(t, errors.FlattenHints(err), "parana")
}
