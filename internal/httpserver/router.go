package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/Skotchmaster/webstore/docs"
	"github.com/Skotchmaster/webstore/internal/middleware/basicauth"
)

type Deps struct {
	ProductHandler *ProductHTTP
	UserHandler    *UserHTTP
	AdminHandler   *AdminHTTP
	Credentials    basicauth.CredentialStore
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", basicauth.Middleware(d.Credentials, "/api/v1/public/"))

	api.GET("/public/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	products := api.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/search", d.ProductHandler.SearchProducts)
	products.GET("/price", d.ProductHandler.GetProductsByMaxPrice)
	products.GET("/in-stock", d.ProductHandler.GetProductsInStock)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	users := api.Group("/users")
	users.GET("", d.UserHandler.GetUsers)
	users.GET("/username/:username", d.UserHandler.GetUserByUsername)
	users.GET("/:id", d.UserHandler.GetUser)
	users.POST("", d.UserHandler.CreateUser)
	users.PUT("/:id", d.UserHandler.UpdateUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser)

	admin := api.Group("/admin", basicauth.RequireAdmin)
	admin.GET("/stats", d.AdminHandler.Stats)
}
