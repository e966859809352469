package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"golang.org/x/sync/errgroup"

	"grentify/internal/config"
	"grentify/internal/http/handlers"
	applog "grentify/internal/log"
	"grentify/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	// One store handle for the whole process; closed once on shutdown.
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false, "message": "internal server error",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())

	deps := handlers.NewDeps(db, cfg)

	// ---------- Catalog ----------
	app.Post("/gadget", deps.GadgetHandler.Create)
	app.Get("/gadgets", limiter.New(limiter.Config{Max: 30, Expiration: time.Minute}), deps.GadgetHandler.Search)
	app.Get("/gadgets-for-sidebar", deps.GadgetHandler.Sidebar)
	app.Get("/gadgets-for-home", deps.GadgetHandler.Home)
	app.Get("/gadgets/:id", deps.GadgetHandler.ByID)
	app.Get("/categories", deps.GadgetHandler.Categories)
	app.Get("/dashboard-gadgets", deps.GadgetHandler.DashboardList)
	app.Get("/dashboard-mygadgets", deps.GadgetHandler.OwnerList)
	app.Delete("/dashboard-gadgets/:id", deps.GadgetHandler.Delete)

	// ---------- Cart & orders ----------
	app.Post("/user-cart", deps.CartHandler.Add)
	app.Get("/my-cart", deps.CartHandler.List)
	app.Delete("/my-cart/:id", deps.CartHandler.Remove)
	app.Post("/user-order", deps.OrderHandler.Create)
	app.Get("/my-orders", deps.OrderHandler.List)
	app.Delete("/my-orders/:id", deps.OrderHandler.Remove)

	// ---------- Payment & coupons ----------
	app.Post("/create-payment-intent", deps.PaymentHandler.CreateIntent)
	app.Post("/payment", deps.PaymentHandler.Checkout2Phase)
	app.Get("/coupon-code/:code", deps.CouponHandler.Validate)
	app.Post("/coupon-code", deps.CouponHandler.Create)

	// ---------- Admin ----------
	app.Get("/alluser", deps.AdminHandler.Users)
	app.Get("/user-status", deps.AdminHandler.UserStatusFacets)
	app.Get("/all-orders", deps.AdminHandler.Orders)

	// ---------- Misc ----------
	app.Get("/api/location", deps.GeoHandler.Location)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "not found"})
	})

	// ---------- Serve until signalled ----------
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-ctx.Done()
		return app.ShutdownWithTimeout(5 * time.Second)
	})
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
