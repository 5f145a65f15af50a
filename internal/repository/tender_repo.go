package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/licitapro/licita_api/internal/models"
)

// TenderRepository handles data access for tenders and their order lines.
type TenderRepository struct {
	db *sqlx.DB
}

// NewTenderRepository creates a new TenderRepository.
func NewTenderRepository(db *sqlx.DB) *TenderRepository {
	return &TenderRepository{db: db}
}

const tenderColumns = `id, client, award_date, delivery_date, delivery_address, contact_phone, contact_email, margin, created_at, updated_at`

const orderWithProductColumns = `
        o.id, o.tender_id, o.product_id, o.quantity, o.price, o.observation, o.created_at,
        p.id AS "product.id", p.name AS "product.name", p.sku AS "product.sku",
        p.description AS "product.description", p.sale_price AS "product.sale_price",
        p.cost_price AS "product.cost_price", p.created_at AS "product.created_at",
        p.updated_at AS "product.updated_at"`

// GetAllWithOrders returns every tender with its order lines and their
// products, award date descending. Orders are fetched in a second query
// and grouped in memory to avoid duplicating tender rows per line.
func (r *TenderRepository) GetAllWithOrders() ([]models.TenderWithOrders, error) {
	tenders := []models.Tender{}
	if err := r.db.Select(&tenders, `SELECT `+tenderColumns+` FROM tenders ORDER BY award_date DESC`); err != nil {
		return nil, err
	}
	if len(tenders) == 0 {
		return []models.TenderWithOrders{}, nil
	}

	ids := make([]string, len(tenders))
	for i, t := range tenders {
		ids[i] = t.ID
	}

	q := `SELECT ` + orderWithProductColumns + `
        FROM orders o
        JOIN products p ON p.id = o.product_id
        WHERE o.tender_id = ANY($1::uuid[])
        ORDER BY o.created_at`

	orders := []models.OrderWithProduct{}
	if err := r.db.Select(&orders, q, pq.Array(ids)); err != nil {
		return nil, err
	}

	byTender := make(map[string][]models.OrderWithProduct, len(tenders))
	for _, o := range orders {
		byTender[o.TenderID] = append(byTender[o.TenderID], o)
	}

	result := make([]models.TenderWithOrders, len(tenders))
	for i, t := range tenders {
		lines := byTender[t.ID]
		if lines == nil {
			lines = []models.OrderWithProduct{}
		}
		result[i] = models.TenderWithOrders{Tender: t, Orders: lines}
	}
	return result, nil
}

// GetByIDWithOrders returns a single tender with its order lines and
// their products.
func (r *TenderRepository) GetByIDWithOrders(id string) (*models.TenderWithOrders, error) {
	var tender models.Tender
	if err := r.db.Get(&tender, `SELECT `+tenderColumns+` FROM tenders WHERE id = $1`, id); err != nil {
		return nil, err
	}

	q := `SELECT ` + orderWithProductColumns + `
        FROM orders o
        JOIN products p ON p.id = o.product_id
        WHERE o.tender_id = $1
        ORDER BY o.created_at`

	orders := []models.OrderWithProduct{}
	if err := r.db.Select(&orders, q, id); err != nil {
		return nil, err
	}

	return &models.TenderWithOrders{Tender: tender, Orders: orders}, nil
}

// CountProductsExisting returns how many of the given product ids exist.
// Callers compare against the number of distinct ids they asked for.
func (r *TenderRepository) CountProductsExisting(productIDs []string) (int, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(1) FROM products WHERE id = ANY($1::uuid[])`, pq.Array(productIDs)); err != nil {
		return 0, err
	}
	return n, nil
}

// CreateWithOrders inserts a tender and all of its order lines in a single
// transaction: either every row is written or none are. Returns the new
// tender id.
func (r *TenderRepository) CreateWithOrders(t *models.Tender, lines []models.Order) (string, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return "", fmt.Errorf("begin tender transaction: %w", err)
	}
	defer tx.Rollback()

	const insertTender = `
        INSERT INTO tenders (client, award_date, delivery_date, delivery_address, contact_phone, contact_email, margin)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	err = tx.QueryRow(insertTender,
		t.Client, t.AwardDate, t.DeliveryDate, t.DeliveryAddress, t.ContactPhone, t.ContactEmail, t.Margin,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return "", fmt.Errorf("insert tender: %w", err)
	}

	const insertOrder = `
        INSERT INTO orders (tender_id, product_id, quantity, price, observation)
        VALUES ($1, $2, $3, $4, $5)`

	for _, line := range lines {
		if _, err := tx.Exec(insertOrder, t.ID, line.ProductID, line.Quantity, line.Price, line.Observation); err != nil {
			return "", fmt.Errorf("insert order line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit tender transaction: %w", err)
	}
	return t.ID, nil
}

// Exists reports whether a tender with the given id exists.
func (r *TenderRepository) Exists(id string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(1) FROM tenders WHERE id = $1`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes a tender; its order lines go with it via ON DELETE CASCADE.
func (r *TenderRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM tenders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
