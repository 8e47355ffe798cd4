package restapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"wallet_tracker/internal/app/port"
)

const swaggerSpecRoute = "/docs/swagger.yaml"

// RouterOptions controls the optional routes.
type RouterOptions struct {
	SwaggerEnabled  bool
	SwaggerSpecFile string
}

// Router wraps the Gin engine with the dashboard and wallet handlers.
type Router struct {
	engine           *gin.Engine
	logger           *zap.Logger
	opts             RouterOptions
	dashboardHandler *DashboardHandler
	walletHandler    *WalletHandler
}

// NewRouter creates a Router with all middleware and routes registered.
func NewRouter(dashboard port.DashboardService, wallets port.WalletProvider, logger *zap.Logger, opts RouterOptions) *Router {
	gin.SetMode(gin.ReleaseMode)
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Router{
		engine:           gin.New(),
		logger:           logger.Named("RestAPI"),
		opts:             opts,
		dashboardHandler: NewDashboardHandler(dashboard),
		walletHandler:    NewWalletHandler(wallets),
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(Recovery(r.logger))
	r.engine.Use(RequestLogger(r.logger))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	corsCfg.ExposeHeaders = []string{"Content-Disposition"}
	r.engine.Use(cors.New(corsCfg))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if r.opts.SwaggerEnabled && r.opts.SwaggerSpecFile != "" {
		r.engine.StaticFile(swaggerSpecRoute, r.opts.SwaggerSpecFile)
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(swaggerSpecRoute)))
	}

	v1 := r.engine.Group("/api/v1")
	{
		wallets := v1.Group("/wallets")
		{
			wallets.GET("", r.walletHandler.List)
			wallets.POST("/bookmarks", r.walletHandler.AddBookmark)
			wallets.DELETE("/bookmarks/:address", r.walletHandler.RemoveBookmark)
		}

		wallet := v1.Group("/wallets/:address")
		wallet.Use(ValidateAddress())
		{
			wallet.GET("/overview", r.dashboardHandler.GetOverview)
			wallet.GET("/tokens", r.dashboardHandler.GetTokens)
			wallet.GET("/nfts", r.dashboardHandler.GetNFTs)
			wallet.GET("/transactions", r.dashboardHandler.GetTransactions)
			wallet.GET("/transactions/export", r.dashboardHandler.ExportTransactions)
			wallet.GET("/gas", r.dashboardHandler.GetGas)
			wallet.GET("/analytics", r.dashboardHandler.GetAnalytics)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
