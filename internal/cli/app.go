// Package cli is the terminal front end: an interactive menu plus one-shot
// cobra subcommands over the dataset repositories.
package cli

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/MikeMC777/parana-browser/internal/config"
	"github.com/MikeMC777/parana-browser/internal/olist"
	"github.com/MikeMC777/parana-browser/internal/order"
	"github.com/MikeMC777/parana-browser/internal/shopper"
	"github.com/MikeMC777/parana-browser/internal/store"
)

type App struct {
	Shoppers shopper.Repository
	Orders   order.Repository
	Olist    olist.Repository
	Out      io.Writer
	Log      zerolog.Logger

	parana *store.Source
	olist  *store.Source
}

func NewApp(cfg config.Config, log zerolog.Logger, out io.Writer) *App {
	parana := store.New(cfg.Parana())
	ol := store.New(cfg.Olist())
	return &App{
		Shoppers: shopper.NewSQLRepo(parana),
		Orders:   order.NewSQLRepo(parana),
		Olist:    olist.NewSQLRepo(ol),
		Out:      out,
		Log:      log,
		parana:   parana,
		olist:    ol,
	}
}

// CheckParana fails when the shopper database is missing.
func (a *App) CheckParana() error {
	if a.parana == nil {
		return nil
	}
	return a.parana.Check()
}

// CheckOlist fails when the Olist database is missing.
func (a *App) CheckOlist() error {
	if a.olist == nil {
		return nil
	}
	return a.olist.Check()
}
