package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/licitapro/licita_api/internal/models"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetAll returns all products, newest first.
func (r *ProductRepository) GetAll() ([]models.Product, error) {
	const q = `
        SELECT id, name, sku, description, sale_price, cost_price, created_at, updated_at
        FROM products
        ORDER BY created_at DESC`

	products := []models.Product{}
	if err := r.db.Select(&products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	const q = `
        SELECT id, name, sku, description, sale_price, cost_price, created_at, updated_at
        FROM products WHERE id = $1`

	var p models.Product
	if err := r.db.Get(&p, q, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetWithOrders returns a product together with the order lines that
// reference it and their owning tenders.
func (r *ProductRepository) GetWithOrders(id string) (*models.ProductWithOrders, error) {
	product, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	const q = `
        SELECT o.id, o.tender_id, o.product_id, o.quantity, o.price, o.observation, o.created_at,
               t.id AS "tender.id", t.client AS "tender.client", t.award_date AS "tender.award_date",
               t.delivery_date AS "tender.delivery_date", t.delivery_address AS "tender.delivery_address",
               t.contact_phone AS "tender.contact_phone", t.contact_email AS "tender.contact_email",
               t.margin AS "tender.margin", t.created_at AS "tender.created_at", t.updated_at AS "tender.updated_at"
        FROM orders o
        JOIN tenders t ON t.id = o.tender_id
        WHERE o.product_id = $1
        ORDER BY o.created_at`

	orders := []models.OrderWithTender{}
	if err := r.db.Select(&orders, q, id); err != nil {
		return nil, err
	}

	return &models.ProductWithOrders{Product: *product, Orders: orders}, nil
}

// SKUExists reports whether any product uses the given sku. When excludeID
// is non-empty that product is ignored, which is the check needed before
// an update ("does another product already use this sku").
func (r *ProductRepository) SKUExists(sku, excludeID string) (bool, error) {
	const q = `SELECT COUNT(1) FROM products WHERE sku = $1 AND ($2 = '' OR id::text <> $2)`

	var n int
	if err := r.db.Get(&n, q, sku, excludeID); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Count returns the total number of products in the catalog.
func (r *ProductRepository) Count() (int, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(1) FROM products`); err != nil {
		return 0, err
	}
	return n, nil
}

// HasOrders reports whether any order line references the product.
func (r *ProductRepository) HasOrders(id string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(1) FROM orders WHERE product_id = $1`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts a product and fills in the generated id and timestamps.
func (r *ProductRepository) Create(p *models.Product) error {
	const q = `
        INSERT INTO products (name, sku, description, sale_price, cost_price)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(q, p.Name, p.SKU, p.Description, p.SalePrice, p.CostPrice).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update rewrites a product's editable fields and refreshes updated_at.
func (r *ProductRepository) Update(p *models.Product) error {
	const q = `
        UPDATE products
        SET name = $1, sku = $2, description = $3, sale_price = $4, cost_price = $5, updated_at = NOW()
        WHERE id = $6
        RETURNING updated_at`

	return r.db.QueryRow(q, p.Name, p.SKU, p.Description, p.SalePrice, p.CostPrice, p.ID).
		Scan(&p.UpdatedAt)
}

// Delete removes a product. Callers must have checked HasOrders first; the
// RESTRICT foreign key is only a backstop.
func (r *ProductRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
