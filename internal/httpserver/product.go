package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Skotchmaster/webstore/internal/logging"
	"github.com/Skotchmaster/webstore/internal/service"
	"github.com/Skotchmaster/webstore/internal/transport"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

// GetProducts godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} transport.ProductDTO
// @Security BasicAuth
// @Router /products [get]
func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	items, err := h.Svc.GetProducts(ctx)
	if err != nil {
		l.Error("get_products_error", "status", 500, "reason", "cannot get products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get products")
	}

	return c.JSON(http.StatusOK, items)
}

// GetProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} transport.ProductDTO
// @Failure 404 {object} echo.HTTPError
// @Security BasicAuth
// @Router /products/{id} [get]
func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	product, err := h.Svc.GetProduct(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_product_failed", "status", 404, "reason", "product with this id dont exist")
			return echo.NewHTTPError(http.StatusNotFound, "product with this id dont exist")
		}
		l.Error("get_product_failed", "status", 500, "reason", "cannot get product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	return c.JSON(http.StatusOK, product)
}

// SearchProducts godoc
// @Summary Search products by name, case-insensitive substring match
// @Tags products
// @Produce json
// @Param name query string true "Name to search for"
// @Success 200 {array} transport.ProductDTO
// @Security BasicAuth
// @Router /products/search [get]
func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search_products")

	items, err := h.Svc.FindProductsByName(ctx, c.QueryParam("name"))
	if err != nil {
		l.Error("search_products_error", "status", 500, "reason", "cannot search products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot search products")
	}

	return c.JSON(http.StatusOK, items)
}

// GetProductsByMaxPrice godoc
// @Summary List products with price less than or equal to maxPrice
// @Tags products
// @Produce json
// @Param maxPrice query number true "Maximum price, inclusive"
// @Success 200 {array} transport.ProductDTO
// @Failure 400 {object} echo.HTTPError
// @Security BasicAuth
// @Router /products/price [get]
func (h *ProductHTTP) GetProductsByMaxPrice(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products_by_max_price")

	maxPrice, err := strconv.ParseFloat(c.QueryParam("maxPrice"), 64)
	if err != nil {
		l.Warn("get_products_by_max_price_failed", "status", 400, "reason", "maxPrice is not a number", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "maxPrice is not a number")
	}

	items, err := h.Svc.FindProductsByMaxPrice(ctx, maxPrice)
	if err != nil {
		l.Error("get_products_by_max_price_error", "status", 500, "reason", "cannot get products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get products")
	}

	return c.JSON(http.StatusOK, items)
}

// GetProductsInStock godoc
// @Summary List products with quantity in stock greater than zero
// @Tags products
// @Produce json
// @Success 200 {array} transport.ProductDTO
// @Security BasicAuth
// @Router /products/in-stock [get]
func (h *ProductHTTP) GetProductsInStock(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products_in_stock")

	items, err := h.Svc.FindProductsInStock(ctx)
	if err != nil {
		l.Error("get_products_in_stock_error", "status", 500, "reason", "cannot get products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get products")
	}

	return c.JSON(http.StatusOK, items)
}

// CreateProduct godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Param product body transport.ProductDTO true "Product to create"
// @Success 201 {object} transport.ProductDTO
// @Failure 400 {object} echo.HTTPError
// @Security BasicAuth
// @Router /products [post]
func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.ProductDTO
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", err.Error())
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		l.Error("product_create_error", "status", 500, "reason", "cannot add product to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add product to db")
	}

	l.Info("create_product_success", "id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

// UpdateProduct godoc
// @Summary Replace a product's mutable fields
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body transport.ProductDTO true "Updated product"
// @Success 200 {object} transport.ProductDTO
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Security BasicAuth
// @Router /products/{id} [put]
func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	var req transport.ProductDTO
	if err := c.Bind(&req); err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		l.Warn("product_update_error", "status", 400, "reason", err.Error())
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.Svc.UpdateProduct(ctx, uint(id), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("product_update_error", "status", 404, "reason", "cannot find product in db")
			return echo.NewHTTPError(http.StatusNotFound, "cannot find product in db")
		}
		l.Error("product_update_error", "status", 500, "reason", "cannot update product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update product")
	}

	l.Info("update_product_success", "id", updated.ID)
	return c.JSON(http.StatusOK, updated)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404 {object} echo.HTTPError
// @Security BasicAuth
// @Router /products/{id} [delete]
func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("product_delete_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	if err := h.Svc.DeleteProduct(ctx, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("product_delete_error", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("product_delete_error", "status", 500, "reason", "cannot delete product from db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product from db")
	}

	l.Info("delete_product_success", "id", id)
	return c.NoContent(http.StatusNoContent)
}
