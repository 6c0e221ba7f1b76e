package api

import (
	"net/http"

	authdelivery "github.com/aladdin-code/addvocate-meeting-summeriser/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRoutes(r *gin.Engine) {
	authHandler := authdelivery.NewAuthHandler(h.authUsecase)
	requireAuth := authdelivery.AuthMiddleware(h.authUsecase)
	requireAdmin := authdelivery.AdminMiddleware(h.config.SettingsAdminEmails)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.GET("/metrics", gin.WrapH(h.metrics.Handler()))

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.SignUp)
			auth.POST("/signin", authHandler.SignIn)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/verify-token", requireAuth, authHandler.VerifyToken)
		}

		// Exchange routes (protected)
		exchanges := api.Group("/exchanges")
		exchanges.Use(requireAuth)
		{
			exchanges.POST("", h.exchangeHandler.CreateExchange)
			exchanges.GET("", h.exchangeHandler.GetExchanges)
			exchanges.GET("/search", h.exchangeHandler.SearchExchanges)
			exchanges.GET("/:id", h.exchangeHandler.GetExchangeByID)
		}

		// Summary routes (protected)
		summaries := api.Group("/summaries")
		summaries.Use(requireAuth)
		{
			summaries.GET("", h.summaryHandler.GetSummaries)
			summaries.POST("/:id/generate", h.summaryHandler.GenerateSummary)
			summaries.PUT("/:id", h.summaryHandler.UpdateSummary)
		}

		// Settings routes (protected) - runtime oracle configuration, changes
		// restricted to configured admins
		settings := api.Group("/settings")
		settings.Use(requireAuth)
		{
			settings.GET("/ai", h.settingsHandler.GetAISettings)
			settings.PUT("/ai", requireAdmin, h.settingsHandler.UpdateAISettings)
			settings.POST("/ai/test", requireAdmin, h.settingsHandler.TestOllamaConnection)
		}
	}
}
