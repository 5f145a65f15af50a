package service

import (
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/licitapro/licita_api/internal/models"
	"github.com/licitapro/licita_api/internal/repository"
	"github.com/licitapro/licita_api/internal/utils"
	"github.com/licitapro/licita_api/internal/validation"
)

// ProductService handles product CRUD operations.
type ProductService struct {
	productRepo *repository.ProductRepository
}

// NewProductService constructs a ProductService.
func NewProductService(productRepo *repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductRequest represents the form input to create or update a product.
// Updates replace every editable field, mirroring the dashboard form.
type ProductRequest struct {
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	SalePrice   decimal.Decimal `json:"salePrice"`
	CostPrice   decimal.Decimal `json:"costPrice"`
}

// Input converts the request into the validator's form shape.
func (r *ProductRequest) Input() validation.ProductInput {
	return validation.ProductInput{
		Name:      r.Name,
		SKU:       r.SKU,
		SalePrice: r.SalePrice,
		CostPrice: r.CostPrice,
	}
}

// ListProducts returns the full catalog, newest first.
func (s *ProductService) ListProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetProduct returns a product with the order lines referencing it.
func (s *ProductService) GetProduct(id string) (*models.ProductWithOrders, error) {
	product, err := s.productRepo.GetWithOrders(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// CreateProduct creates a new product. Input is assumed to have passed
// validation; only the sku uniqueness check happens here because it needs
// storage.
func (s *ProductService) CreateProduct(req *ProductRequest) (*models.Product, error) {
	exists, err := s.productRepo.SKUExists(req.SKU, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.ErrSKUExists
	}

	product := &models.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		SalePrice:   req.SalePrice,
		CostPrice:   req.CostPrice,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct replaces a product's fields. The new sku must not collide
// with a different product's sku.
func (s *ProductService) UpdateProduct(id string, req *ProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}

	if req.SKU != product.SKU {
		exists, err := s.productRepo.SKUExists(req.SKU, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, utils.ErrSKUExists
		}
	}

	product.Name = req.Name
	product.SKU = req.SKU
	product.Description = req.Description
	product.SalePrice = req.SalePrice
	product.CostPrice = req.CostPrice

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product unless any order still references it.
func (s *ProductService) DeleteProduct(id string) error {
	if _, err := s.productRepo.GetByID(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrProductNotFound
		}
		return err
	}

	hasOrders, err := s.productRepo.HasOrders(id)
	if err != nil {
		return err
	}
	if hasOrders {
		return utils.ErrProductHasOrders
	}

	return s.productRepo.Delete(id)
}
