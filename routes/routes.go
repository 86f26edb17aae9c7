package routes

import (
	"led-admin-api/controllers"
	"led-admin-api/middleware"
	"led-admin-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "LED Admin API is running",
				})
			})

			// Read API consumed by the static marketing pages
			public.GET("/public/products", controllers.PublicProducts)
			public.GET("/public/products/:id", controllers.PublicProduct)
			public.GET("/public/news", controllers.PublicNews)
			public.GET("/public/news/:id", controllers.PublicNewsItem)
			public.GET("/public/cases", controllers.PublicCases)
			public.GET("/public/content/:page", controllers.PublicPageContent)

			// Contact / quote forms
			public.POST("/public/contact", controllers.PublicContact)
			public.POST("/public/quote", controllers.PublicQuote)
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/logout", controllers.Logout)
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Products
			products := protected.Group("/products")
			{
				products.GET("", controllers.GetProducts)
				products.GET("/:id", controllers.GetProduct)
				products.POST("", controllers.CreateProduct)
				products.PUT("/:id", controllers.UpdateProduct)
				products.DELETE("/:id", middleware.RequireRole(models.RoleSuperAdmin), controllers.DeleteProduct)
			}

			// News
			news := protected.Group("/news")
			{
				news.GET("", controllers.GetNewsList)
				news.GET("/:id", controllers.GetNews)
				news.POST("", controllers.CreateNews)
				news.PUT("/:id", controllers.UpdateNews)
				news.DELETE("/:id", middleware.RequireRole(models.RoleSuperAdmin), controllers.DeleteNews)
			}

			// Case studies
			cases := protected.Group("/cases")
			{
				cases.GET("", controllers.GetCaseStudies)
				cases.GET("/:id", controllers.GetCaseStudy)
				cases.POST("", controllers.CreateCaseStudy)
				cases.PUT("/:id", controllers.UpdateCaseStudy)
				cases.DELETE("/:id", middleware.RequireRole(models.RoleSuperAdmin), controllers.DeleteCaseStudy)
			}

			// Page content blocks
			content := protected.Group("/content")
			{
				content.GET("", controllers.GetPageContents)
				content.GET("/:id", controllers.GetPageContent)
				content.POST("", controllers.CreatePageContent)
				content.PUT("/:id", controllers.UpdatePageContent)
				content.DELETE("/:id", middleware.RequireRole(models.RoleSuperAdmin), controllers.DeletePageContent)
			}

			// Inquiries
			inquiries := protected.Group("/inquiries")
			{
				inquiries.GET("", controllers.GetInquiries)
				inquiries.GET("/:id", controllers.GetInquiry)
				inquiries.PUT("/:id/status", controllers.UpdateInquiryStatus)
				inquiries.DELETE("/:id", middleware.RequireRole(models.RoleSuperAdmin), controllers.DeleteInquiry)
			}

			// Quote requests
			quotes := protected.Group("/quotes")
			{
				quotes.GET("", controllers.GetQuotes)
				quotes.GET("/:id", controllers.GetQuote)
				quotes.PUT("/:id/status", controllers.UpdateQuoteStatus)
				quotes.DELETE("/:id", middleware.RequireRole(models.RoleSuperAdmin), controllers.DeleteQuote)
			}

			// Media
			media := protected.Group("/media")
			{
				media.POST("/upload", controllers.UploadMedia)
				media.GET("", controllers.GetMediaFiles)
				media.DELETE("/:id", controllers.DeleteMedia)
			}

			// Exports
			export := protected.Group("/export")
			{
				export.GET("/inquiries", controllers.ExportInquiries)
				export.GET("/quotes", controllers.ExportQuotes)
			}

			// Dashboard
			protected.GET("/dashboard/stats", controllers.GetDashboardStats)

			// Settings (writes restricted to super_admin)
			settings := protected.Group("/settings")
			{
				settings.GET("", controllers.GetSettings)
				settings.GET("/:key", controllers.GetSetting)
				settings.PUT("/:key", middleware.RequireRole(models.RoleSuperAdmin), controllers.UpsertSetting)
				settings.DELETE("/:key", middleware.RequireRole(models.RoleSuperAdmin), controllers.DeleteSetting)
			}

			// Admin account management (super_admin only)
			users := protected.Group("/users", middleware.RequireRole(models.RoleSuperAdmin))
			{
				users.GET("", controllers.GetAdminUsers)
				users.POST("", controllers.CreateAdminUser)
				users.DELETE("/:id", controllers.DeleteAdminUser)
			}
		}
	}
}
