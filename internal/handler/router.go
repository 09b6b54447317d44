package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luna-storefront/internal/handler/api"
	reqdto "luna-storefront/internal/handler/dto/request"
	"luna-storefront/internal/handler/middleware"
	"luna-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	checkoutHandler *api.CheckoutHandler,
	walletHandler *api.WalletHandler,
	orderHandler *api.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	reqdto.RegisterValidations()
	setupMiddleware(engine, cfg)
	setupRoutes(engine, checkoutHandler, walletHandler, orderHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	checkoutHandler *api.CheckoutHandler,
	walletHandler *api.WalletHandler,
	orderHandler *api.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		checkout := apiGroup.Group("/checkout")
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "/quote", Handler: checkoutHandler.Quote},
				{Method: http.MethodPost, Path: "/submit", Handler: checkoutHandler.Submit},
				{Method: http.MethodPost, Path: "/retry", Handler: checkoutHandler.Retry},
				{Method: http.MethodPost, Path: "/dismiss", Handler: checkoutHandler.Dismiss},
				{Method: http.MethodGet, Path: "/session", Handler: checkoutHandler.Session},
			})
		}

		walletGroup := apiGroup.Group("/wallet")
		{
			addRoutes(walletGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: walletHandler.Overview},
				{Method: http.MethodGet, Path: "/transactions", Handler: walletHandler.Transactions},
				{Method: http.MethodGet, Path: "/purchases", Handler: walletHandler.Purchases},
				{Method: http.MethodPost, Path: "/gifts", Handler: walletHandler.SendGift},
				{Method: http.MethodPost, Path: "/redeem", Handler: walletHandler.Redeem},
			})
		}

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "/:number", Handler: orderHandler.Get},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
