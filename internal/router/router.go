package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rohanjsheth/Paper-Trader/internal/config"
	"github.com/rohanjsheth/Paper-Trader/internal/handlers"
	"github.com/rohanjsheth/Paper-Trader/internal/middleware"
	"github.com/rohanjsheth/Paper-Trader/internal/quote"
	"github.com/rohanjsheth/Paper-Trader/internal/repository"
	"github.com/rohanjsheth/Paper-Trader/internal/services"
	"gorm.io/gorm"
)

// Setup wires repositories, services, and handlers onto a gin engine.
func Setup(cfg *config.Config, db *gorm.DB, quotes quote.Source) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	authService := services.NewAuthService(userRepo, cfg.StartingCash)
	portfolioService := services.NewPortfolioService(userRepo, purchaseRepo, quotes, db)
	tokenService := services.NewTokenService(tokenRepo, userRepo, cfg.JWT.Secret)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	adminMiddleware := middleware.NewAdminMiddleware(cfg.AdminUsers)

	authHandler := handlers.NewAuthHandler(authService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	quoteHandler := handlers.NewQuoteHandler(quotes)
	apiHandler := handlers.NewAPIHandler(portfolioService, quotes)
	tokenHandler := handlers.NewTokenHandler(tokenService)
	adminHandler := handlers.NewAdminHandler(userRepo, purchaseRepo)

	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("paper_trader_session", store))
	r.Use(middleware.NoCache())

	r.LoadHTMLGlob(cfg.TemplatesGlob)

	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)

	protected := r.Group("")
	protected.Use(authMiddleware.RequireLogin())
	{
		protected.GET("/", portfolioHandler.Index)
		protected.POST("/", portfolioHandler.Index)
		protected.GET("/buy", portfolioHandler.ShowBuy)
		protected.POST("/buy", portfolioHandler.Buy)
		protected.GET("/sell", portfolioHandler.ShowSell)
		protected.POST("/sell", portfolioHandler.Sell)
		protected.GET("/history", portfolioHandler.History)
		protected.GET("/quote", quoteHandler.ShowQuote)
		protected.POST("/quote", quoteHandler.Quote)

		// Tokens are minted from a logged-in browser session.
		protected.POST("/api/v1/tokens", tokenHandler.CreateToken)
		protected.GET("/api/v1/tokens", tokenHandler.ListTokens)
		protected.DELETE("/api/v1/tokens/:id", tokenHandler.DeleteToken)
	}

	api := r.Group("/api/v1")
	api.Use(authMiddleware.RequireToken())
	{
		api.GET("/portfolio", apiHandler.GetPortfolio)
		api.GET("/history", apiHandler.GetHistory)
		api.GET("/quote/:symbol", apiHandler.GetQuote)

		admin := api.Group("/admin")
		admin.Use(adminMiddleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/trades", adminHandler.ListTrades)
		}
	}

	return r
}
