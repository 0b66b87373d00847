// Package main boardcamp API.
//
// @title           boardcamp API
// @version         1.0
// @description     Board game rental shop: categories, games, customers and rentals.
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boardcamp/app/echoServer"
	categoryctrl "boardcamp/app/echoServer/controller/category"
	customerctrl "boardcamp/app/echoServer/controller/customer"
	gamectrl "boardcamp/app/echoServer/controller/game"
	rentalctrl "boardcamp/app/echoServer/controller/rental"
	"boardcamp/app/echoServer/validation"
	"boardcamp/config"
	_ "boardcamp/docs"
	categoryrepo "boardcamp/repository/category"
	customerrepo "boardcamp/repository/customer"
	gamerepo "boardcamp/repository/game"
	rentalrepo "boardcamp/repository/rental"
	categorysvc "boardcamp/service/category"
	customersvc "boardcamp/service/customer"
	gamesvc "boardcamp/service/game"
	rentalsvc "boardcamp/service/rental"
	"boardcamp/util/database"
	"boardcamp/util/metrics"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB: pgxpool
	db, err := database.New(ctx, cfg.DatabaseURL, database.Options{
		MaxConns:       cfg.DBMaxConns,
		MinConns:       cfg.DBMinConns,
		ConnectTimeout: cfg.DBConnectTimeout,
	})
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	m := metrics.New()

	// repos
	cr := categoryrepo.New(db)
	gr := gamerepo.New(db)
	cur := customerrepo.New(db)
	rr := rentalrepo.New(db)

	// services
	cs := categorysvc.New(cr)
	gs := gamesvc.New(gr)
	cus := customersvc.New(cur)
	rs := rentalsvc.New(db, rr, rentalsvc.WithRecorder(m))

	// controllers
	categoryC := &categoryctrl.Controller{Svc: cs, Log: log}
	gameC := &gamectrl.Controller{Svc: gs, Log: log}
	customerC := &customerctrl.Controller{Svc: cus, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = echoServer.JSONSerializer{}
	e.Validator = validation.New()
	echoServer.RegisterMiddlewares(e, log, m)

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			log.Warn("health check failed", "err", err)
			return c.JSON(http.StatusServiceUnavailable, echo.Map{
				"status":  "degraded",
				"message": "database unreachable",
			})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Category: categoryC,
		Game:     gameC,
		Customer: customerC,
		Rental:   rentalC,
	})

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "err", err)
	}
}
