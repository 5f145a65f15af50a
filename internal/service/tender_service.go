package service

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/licitapro/licita_api/internal/finance"
	"github.com/licitapro/licita_api/internal/models"
	"github.com/licitapro/licita_api/internal/repository"
	"github.com/licitapro/licita_api/internal/utils"
	"github.com/licitapro/licita_api/internal/validation"
)

// Target margin ratio applied when the form leaves it out.
var defaultTargetMargin = decimal.NewFromFloat(0.4)

// TenderService handles tender CRUD plus the atomic create-with-orders batch.
type TenderService struct {
	tenderRepo *repository.TenderRepository
}

// NewTenderService constructs a TenderService.
func NewTenderService(tenderRepo *repository.TenderRepository) *TenderService {
	return &TenderService{tenderRepo: tenderRepo}
}

// TenderLineRequest is one product line of the tender form. Price is an
// optional recorded unit price, kept for display only.
type TenderLineRequest struct {
	ProductID   string          `json:"productId"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Observation string          `json:"observation"`
}

// TenderRequest represents the form input to create a tender together with
// its initial set of order lines.
type TenderRequest struct {
	Client          string              `json:"client"`
	AwardDate       string              `json:"awardDate"`
	DeliveryDate    string              `json:"deliveryDate"`
	DeliveryAddress string              `json:"deliveryAddress"`
	ContactPhone    string              `json:"contactPhone"`
	ContactEmail    string              `json:"contactEmail"`
	Margin          *decimal.Decimal    `json:"margin"`
	Products        []TenderLineRequest `json:"products"`
}

// Input converts the request into the validator's form shape.
func (r *TenderRequest) Input() validation.TenderInput {
	lines := make([]validation.TenderLineInput, len(r.Products))
	for i, p := range r.Products {
		lines[i] = validation.TenderLineInput{ProductID: p.ProductID, Quantity: p.Quantity}
	}
	return validation.TenderInput{
		Client:    r.Client,
		AwardDate: r.AwardDate,
		Lines:     lines,
	}
}

// TenderView is a tender with its order lines and the computed summary,
// as served by list and detail endpoints.
type TenderView struct {
	models.TenderWithOrders
	Summary models.TenderSummary `json:"summary"`
}

func toView(t models.TenderWithOrders) TenderView {
	return TenderView{TenderWithOrders: t, Summary: finance.SummarizeTender(t)}
}

// ListTenders returns every tender with orders, products, and summary,
// award date descending.
func (s *TenderService) ListTenders() ([]TenderView, error) {
	tenders, err := s.tenderRepo.GetAllWithOrders()
	if err != nil {
		return nil, err
	}

	views := make([]TenderView, len(tenders))
	for i, t := range tenders {
		views[i] = toView(t)
	}
	return views, nil
}

// GetTender returns a single tender with orders, products, and summary.
func (s *TenderService) GetTender(id string) (*TenderView, error) {
	tender, err := s.tenderRepo.GetByIDWithOrders(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrTenderNotFound
		}
		return nil, err
	}

	view := toView(*tender)
	return &view, nil
}

// CreateTender verifies every referenced product exists, then writes the
// tender and all of its order lines in one transaction and returns the
// full record. Input is assumed to have passed validation.
func (s *TenderService) CreateTender(req *TenderRequest) (*TenderView, error) {
	awardDate, err := time.Parse("2006-01-02", req.AwardDate)
	if err != nil {
		return nil, utils.ErrInvalidDate
	}

	var deliveryDate *time.Time
	if req.DeliveryDate != "" {
		d, err := time.Parse("2006-01-02", req.DeliveryDate)
		if err != nil {
			return nil, utils.ErrInvalidDate
		}
		deliveryDate = &d
	}

	// Existence check against distinct ids so a product appearing on two
	// lines is only counted once. A malformed id can never match a row.
	seen := make(map[string]bool, len(req.Products))
	distinct := make([]string, 0, len(req.Products))
	for _, line := range req.Products {
		if _, err := uuid.Parse(line.ProductID); err != nil {
			return nil, utils.ErrUnknownProducts
		}
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			distinct = append(distinct, line.ProductID)
		}
	}
	found, err := s.tenderRepo.CountProductsExisting(distinct)
	if err != nil {
		return nil, err
	}
	if found != len(distinct) {
		return nil, utils.ErrUnknownProducts
	}

	margin := defaultTargetMargin
	if req.Margin != nil && !req.Margin.IsZero() {
		margin = *req.Margin
	}

	tender := &models.Tender{
		Client:          req.Client,
		AwardDate:       awardDate,
		DeliveryDate:    deliveryDate,
		DeliveryAddress: req.DeliveryAddress,
		ContactPhone:    req.ContactPhone,
		ContactEmail:    req.ContactEmail,
		Margin:          margin,
	}

	lines := make([]models.Order, len(req.Products))
	for i, p := range req.Products {
		lines[i] = models.Order{
			ProductID:   p.ProductID,
			Quantity:    p.Quantity,
			Price:       p.Price,
			Observation: p.Observation,
		}
	}

	id, err := s.tenderRepo.CreateWithOrders(tender, lines)
	if err != nil {
		return nil, err
	}

	return s.GetTender(id)
}

// DeleteTender removes a tender; its order lines cascade with it.
func (s *TenderService) DeleteTender(id string) error {
	exists, err := s.tenderRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return utils.ErrTenderNotFound
	}
	return s.tenderRepo.Delete(id)
}
