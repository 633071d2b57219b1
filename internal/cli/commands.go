package cli

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/MikeMC777/parana-browser/internal/config"
	"github.com/MikeMC777/parana-browser/internal/logging"
	"github.com/MikeMC777/parana-browser/internal/olist"
	"github.com/MikeMC777/parana-browser/internal/shopper"
)

// NewRootCmd builds the parana command tree. Without a subcommand it starts
// the interactive menu.
func NewRootCmd() *cobra.Command {
	cfg := config.Load()
	app := &App{}

	root := &cobra.Command{
		Use:   "parana",
		Short: "Browse the Parana shopper and Olist datasets",
		Long: `
Read-only browser over the Parana shopper database and the Olist e-commerce
database. Run without a subcommand for the interactive menu.
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
			cfg.Log(log)
			*app = *NewApp(cfg, log, cmd.OutOrStdout())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.CheckParana(); err != nil {
				return err
			}
			return NewMenu(app, cmd.InOrStdin()).Run(cmd.Context())
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&cfg.ParanaPath, "parana-db", cfg.ParanaPath, "path to the Parana shopper database")
	f.StringVar(&cfg.OlistPath, "olist-db", cfg.OlistPath, "path to the Olist database")
	f.StringVar(&cfg.Driver, "driver", cfg.Driver, "database driver: sqlite or pgx")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		shoppersCmd(app),
		ordersCmd(app),
		schemaCmd(app),
		olistCmd(app),
	)
	return root
}

func parseID(arg string) (int64, error) {
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || v < 1 {
		return 0, errors.Newf("invalid id %q: expected a number >= 1", arg)
	}
	return v, nil
}

func shoppersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{Use: "shoppers", Short: "list, search and inspect shoppers"}

	var listLimit int
	list := &cobra.Command{
		Use:   "list",
		Short: "list the most recently joined shoppers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := app.Shoppers.List(cmd.Context(), listLimit)
			if err != nil {
				return err
			}
			printShoppers(app.Out, out)
			return nil
		},
	}
	list.Flags().IntVar(&listLimit, "limit", 10, "maximum number of shoppers")

	var searchLimit int
	search := &cobra.Command{
		Use:   "search <keyword>",
		Short: "search shoppers by name or email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return errors.New("keyword cannot be empty")
			}
			out, err := app.Shoppers.Search(cmd.Context(), args[0], searchLimit)
			if err != nil {
				return err
			}
			printShoppers(app.Out, out)
			return nil
		},
	}
	search.Flags().IntVar(&searchLimit, "limit", shopper.DefaultLimit, "maximum number of results")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "show one shopper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, found, err := app.Shoppers.GetByID(cmd.Context(), sid)
			if err != nil {
				return err
			}
			if !found {
				noticeColor.Fprintf(app.Out, "\nNo shopper found with ID %d.\n\n", sid)
				return nil
			}
			printShopper(app.Out, s)
			return nil
		},
	}

	var ordersLimit int
	orders := &cobra.Command{
		Use:   "orders <shopper-id>",
		Short: "list a shopper's orders, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, err := parseID(args[0])
			if err != nil {
				return err
			}
			out, err := app.Orders.ListByShopper(cmd.Context(), sid, ordersLimit)
			if err != nil {
				return err
			}
			printOrders(app.Out, out)
			return nil
		},
	}
	orders.Flags().IntVar(&ordersLimit, "limit", 20, "maximum number of orders")

	cmd.AddCommand(list, search, get, orders)
	return cmd
}

func ordersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{Use: "orders", Short: "inspect shopper orders"}

	items := &cobra.Command{
		Use:   "items <order-id>",
		Short: "list an order's products with sellers and the order total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			oid, err := parseID(args[0])
			if err != nil {
				return err
			}
			out, err := app.Orders.Items(cmd.Context(), oid)
			if err != nil {
				return err
			}
			printItems(app.Out, oid, out)
			return nil
		},
	}

	total := &cobra.Command{
		Use:   "total <order-id>",
		Short: "print an order's total (sum of quantity × price)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			oid, err := parseID(args[0])
			if err != nil {
				return err
			}
			total, err := app.Orders.Total(cmd.Context(), oid)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Order %d total: %s\n", oid, pounds(total))
			return nil
		},
	}

	cmd.AddCommand(items, total)
	return cmd
}

func schemaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{Use: "schema", Short: "inspect the shopper database schema"}

	tables := &cobra.Command{
		Use:   "tables",
		Short: "list tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := app.Shoppers.ListTables(cmd.Context())
			if err != nil {
				return err
			}
			printTables(app.Out, names)
			return nil
		},
	}

	describe := &cobra.Command{
		Use:   "describe <table>",
		Short: "list a table's columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cols, err := app.Shoppers.DescribeTable(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printColumns(app.Out, cols)
			return nil
		},
	}

	cmd.AddCommand(tables, describe)
	return cmd
}

func olistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{Use: "olist", Short: "browse the Olist dataset"}

	var custLimit int
	customers := &cobra.Command{
		Use:   "customers",
		Short: "list customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := app.Olist.ListCustomers(cmd.Context(), custLimit)
			if err != nil {
				return err
			}
			printCustomers(app.Out, out)
			return nil
		},
	}
	customers.Flags().IntVar(&custLimit, "limit", olist.DefaultLimit, "maximum number of customers")

	var (
		filter      olist.CustomerFilter
		searchLimit int
	)
	search := &cobra.Command{
		Use:   "search",
		Short: "search customers by city and/or state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := app.Olist.SearchCustomers(cmd.Context(), filter, searchLimit)
			if err != nil {
				return err
			}
			printCustomers(app.Out, out)
			return nil
		},
	}
	search.Flags().StringVar(&filter.City, "city", "", "city substring (case-insensitive)")
	search.Flags().StringVar(&filter.State, "state", "", "state code (case-insensitive)")
	search.Flags().IntVar(&searchLimit, "limit", olist.DefaultSearchLimit, "maximum number of results")

	var (
		byUnique    bool
		ordersLimit int
	)
	orders := &cobra.Command{
		Use:   "orders <customer-id>",
		Short: "list a customer's orders, newest purchase first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				out []olist.Order
				err error
			)
			if byUnique {
				out, err = app.Olist.OrdersByUniqueID(cmd.Context(), args[0], ordersLimit)
			} else {
				out, err = app.Olist.OrdersByCustomer(cmd.Context(), args[0], ordersLimit)
			}
			if err != nil {
				return err
			}
			printOlistOrders(app.Out, out)
			return nil
		},
	}
	orders.Flags().BoolVar(&byUnique, "unique", false, "treat the argument as a customer_unique_id")
	orders.Flags().IntVar(&ordersLimit, "limit", olist.DefaultLimit, "maximum number of orders")

	items := &cobra.Command{
		Use:   "items <order-id>",
		Short: "list an order's items with price and freight totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Olist.Items(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printOlistItems(app.Out, args[0], out)
			return nil
		},
	}

	total := &cobra.Command{
		Use:   "total <order-id>",
		Short: "print an order's price, freight and grand totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Olist.OrderTotals(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printOlistTotals(app.Out, t)
			return nil
		},
	}

	cmd.AddCommand(customers, search, orders, items, total)
	return cmd
}
