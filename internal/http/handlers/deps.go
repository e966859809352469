package handlers

import (
	"grentify/internal/config"
	"grentify/internal/geo"
	"grentify/internal/repos"
	"grentify/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	GadgetHandler  *GadgetHandler
	CartHandler    *CartHandler
	OrderHandler   *OrderHandler
	PaymentHandler *PaymentHandler
	CouponHandler  *CouponHandler
	AdminHandler   *AdminHandler
	GeoHandler     *GeoHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	gadgetRepo := repos.NewGadgetRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	userRepo := repos.NewUserRepo(db)
	couponRepo := repos.NewCouponRepo(db)

	catalogSvc := services.NewCatalogService(gadgetRepo)
	cartSvc := services.NewCartService(cartRepo)
	orderSvc := services.NewOrderService(orderRepo)
	checkoutSvc := services.NewCheckoutService(orderRepo, cartRepo, cfg.EnforceCartOwnership)
	couponSvc := services.NewCouponService(couponRepo)
	adminSvc := services.NewAdminService(userRepo, orderRepo)

	return &Deps{
		GadgetHandler:  &GadgetHandler{Catalog: catalogSvc},
		CartHandler:    &CartHandler{Cart: cartSvc},
		OrderHandler:   &OrderHandler{Orders: orderSvc},
		PaymentHandler: &PaymentHandler{Checkout: checkoutSvc, Intents: services.LocalIntentCreator{}},
		CouponHandler:  &CouponHandler{Coupons: couponSvc},
		AdminHandler:   &AdminHandler{Admin: adminSvc},
		GeoHandler:     &GeoHandler{Geo: geo.NewClient(cfg.GeoAPIURL, cfg.GeoAPIKey)},
	}
}
