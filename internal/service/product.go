package service

import (
	"context"

	"github.com/Skotchmaster/webstore/internal/models"
	"github.com/Skotchmaster/webstore/internal/repo"
	"github.com/Skotchmaster/webstore/internal/transport"
)

type ProductService struct {
	Repo *repo.GormRepo
}

func (s *ProductService) GetProducts(ctx context.Context) ([]transport.ProductDTO, error) {
	items, err := s.Repo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	return productsToDTO(items), nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*transport.ProductDTO, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := productToDTO(prod)
	return &dto, nil
}

func (s *ProductService) FindProductsByName(ctx context.Context, name string) ([]transport.ProductDTO, error) {
	items, err := s.Repo.FindProductsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return productsToDTO(items), nil
}

func (s *ProductService) FindProductsByMaxPrice(ctx context.Context, maxPrice float64) ([]transport.ProductDTO, error) {
	items, err := s.Repo.FindProductsByMaxPrice(ctx, maxPrice)
	if err != nil {
		return nil, err
	}
	return productsToDTO(items), nil
}

func (s *ProductService) FindProductsInStock(ctx context.Context) ([]transport.ProductDTO, error) {
	items, err := s.Repo.FindProductsInStock(ctx)
	if err != nil {
		return nil, err
	}
	return productsToDTO(items), nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req transport.ProductDTO) (*transport.ProductDTO, error) {
	prod := models.Product{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		QuantityInStock: req.QuantityInStock,
	}

	created, err := s.Repo.CreateProduct(ctx, &prod)
	if err != nil {
		return nil, err
	}

	dto := productToDTO(created)
	return &dto, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req transport.ProductDTO) (*transport.ProductDTO, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	prod.Name = req.Name
	prod.Description = req.Description
	prod.Price = req.Price
	prod.QuantityInStock = req.QuantityInStock

	saved, err := s.Repo.SaveProduct(ctx, prod)
	if err != nil {
		return nil, err
	}

	dto := productToDTO(saved)
	return &dto, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	return s.Repo.DeleteProduct(ctx, id)
}

func productToDTO(p *models.Product) transport.ProductDTO {
	return transport.ProductDTO{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		QuantityInStock: p.QuantityInStock,
	}
}

func productsToDTO(items []models.Product) []transport.ProductDTO {
	out := make([]transport.ProductDTO, 0, len(items))
	for i := range items {
		out = append(out, productToDTO(&items[i]))
	}
	return out
}
