package main

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
	"github.com/luno/jettison/log"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"moneybox/internal/devapi"
)

func main() {
	// The real API sends amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	app := fx.New(
		fx.Provide(
			devapi.LoadConfig,
			devapi.NewStore,
			devapi.NewTokens,
			devapi.NewRouter,
		),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg devapi.Config, engine *gin.Engine) {
	srv := &http.Server{Addr: cfg.Addr, Handler: engine}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return errors.Wrap(err, "listen", j.MKV{"addr": cfg.Addr})
			}
			log.Info(ctx, "moneybox dev api listening", j.MKV{"addr": ln.Addr().String()})
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error(context.Background(), errors.Wrap(err, "serve"))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info(ctx, "stopping moneybox dev api")
			return srv.Shutdown(ctx)
		},
	})
}
