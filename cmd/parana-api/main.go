package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/parana-browser/docs"
	"github.com/MikeMC777/parana-browser/internal/config"
	"github.com/MikeMC777/parana-browser/internal/httpx"
	"github.com/MikeMC777/parana-browser/internal/logging"
	"github.com/MikeMC777/parana-browser/internal/olist"
	"github.com/MikeMC777/parana-browser/internal/order"
	"github.com/MikeMC777/parana-browser/internal/shopper"
	"github.com/MikeMC777/parana-browser/internal/store"
)

type deps struct {
	shoppers shopper.Repository
	orders   order.Repository
	olist    olist.Repository
	log      zerolog.Logger
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(d.log))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/shoppers", listShoppersHandler(d.shoppers, d.log))
	r.GET("/shoppers/:id", getShopperHandler(d.shoppers, d.log))
	r.GET("/shoppers/:id/orders", listShopperOrdersHandler(d.orders, d.log))
	r.GET("/orders/:id/items", getOrderItemsHandler(d.orders, d.log))
	r.GET("/orders/:id/total", getOrderTotalHandler(d.orders, d.log))
	r.GET("/schema/tables", listTablesHandler(d.shoppers, d.log))
	r.GET("/schema/tables/:name", describeTableHandler(d.shoppers, d.log))

	r.GET("/olist/customers", listCustomersHandler(d.olist, d.log))
	r.GET("/olist/customers/:id/orders", customerOrdersHandler(d.olist, d.log))
	r.GET("/olist/unique-customers/:unique_id/orders", uniqueCustomerOrdersHandler(d.olist, d.log))
	r.GET("/olist/orders/:id/items", olistOrderItemsHandler(d.olist, d.log))
	r.GET("/olist/orders/:id/total", olistOrderTotalHandler(d.olist, d.log))
	return r
}

// @title       Parana dataset browser API
// @version     1.0
// @description Read-only access to the Parana shopper and Olist datasets.
// @BasePath    /
func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, os.Stderr)
	cfg.Log(log)

	parana := store.New(cfg.Parana())
	ol := store.New(cfg.Olist())
	for _, src := range []*store.Source{parana, ol} {
		if err := src.Check(); err != nil {
			log.Fatal().Err(err).Msg("dataset unavailable")
		}
	}

	docs.SwaggerInfo.Host = ""
	gin.SetMode(gin.ReleaseMode)
	r := newRouter(deps{
		shoppers: shopper.NewSQLRepo(parana),
		orders:   order.NewSQLRepo(parana),
		olist:    olist.NewSQLRepo(ol),
		log:      log,
	})

	log.Info().Str("addr", cfg.APIAddr).Msg("parana-api listening")
	if err := r.Run(cfg.APIAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
