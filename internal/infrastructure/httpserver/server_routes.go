package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")

	api.GET("/rates/:country", s.getRate)

	prices := api.Group("/prices")
	prices.GET("/quote", s.quotePrice)
	prices.POST("/refresh", s.refreshPrice)

	products := api.Group("/products")
	products.GET("", s.listProducts)
	products.GET("/:id/price", s.getProductPrice)
	products.POST("", s.createProduct, s.middleware.Admin.RequireAdmin())

	admin := api.Group("/admin", s.middleware.Admin.RequireAdmin())
	admin.DELETE("/rates/:country", s.evictRate)
	admin.DELETE("/rates", s.flushRates)
}
