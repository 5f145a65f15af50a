// Command seed loads demo/bootstrap data into the database from JSON
// files: products.json and tenders.json in the seed directory. Tenders
// reference products by sku so the files stay portable across databases.
// It can also wipe existing rows first and provision an admin user.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/licitapro/licita_api/internal/config"
	"github.com/licitapro/licita_api/internal/database"
	"github.com/licitapro/licita_api/internal/repository"
	"github.com/licitapro/licita_api/internal/service"
	"github.com/licitapro/licita_api/internal/validation"
)

type seedProduct struct {
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	SalePrice   decimal.Decimal `json:"salePrice"`
	CostPrice   decimal.Decimal `json:"costPrice"`
}

type seedTenderLine struct {
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Observation string          `json:"observation"`
}

type seedTender struct {
	Client          string           `json:"client"`
	AwardDate       string           `json:"awardDate"`
	DeliveryDate    string           `json:"deliveryDate"`
	DeliveryAddress string           `json:"deliveryAddress"`
	ContactPhone    string           `json:"contactPhone"`
	ContactEmail    string           `json:"contactEmail"`
	Margin          *decimal.Decimal `json:"margin"`
	Products        []seedTenderLine `json:"products"`
}

func main() {
	dir := flag.String("dir", "seed", "directory containing products.json and tenders.json")
	reset := flag.Bool("reset", false, "delete all existing orders, tenders, and products first")
	adminEmail := flag.String("admin-email", "", "create an admin user with this email")
	adminPassword := flag.String("admin-password", "", "password for the admin user")
	adminName := flag.String("admin-name", "Administrator", "display name for the admin user")
	flag.Parse()

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	if *reset {
		log.Info().Msg("Clearing existing data")
		for _, table := range []string{"orders", "tenders", "products"} {
			if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
				log.Fatal().Err(err).Str("table", table).Msg("failed to clear table")
			}
		}
	}

	productRepo := repository.NewProductRepository(db)
	tenderRepo := repository.NewTenderRepository(db)
	productSvc := service.NewProductService(productRepo)
	tenderSvc := service.NewTenderService(tenderRepo)

	if *adminEmail != "" {
		if *adminPassword == "" {
			log.Fatal().Msg("admin-password is required when admin-email is set")
		}
		adminSvc := service.NewAdminAuthService(repository.NewAdminUserRepository(db))
		if err := adminSvc.CreateAdmin(*adminEmail, *adminPassword, *adminName); err != nil {
			log.Fatal().Err(err).Msg("failed to create admin user")
		}
		log.Info().Str("email", *adminEmail).Msg("Admin user created")
	}

	products, err := readSeedFile[seedProduct](filepath.Join(*dir, "products.json"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read products.json")
	}
	tenders, err := readSeedFile[seedTender](filepath.Join(*dir, "tenders.json"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read tenders.json")
	}

	// Insert products, remembering sku -> id for tender lines.
	idBySKU := make(map[string]string, len(products))
	for _, p := range products {
		req := &service.ProductRequest{
			Name:        p.Name,
			SKU:         p.SKU,
			Description: p.Description,
			SalePrice:   p.SalePrice,
			CostPrice:   p.CostPrice,
		}
		if errs := validation.ValidateProduct(req.Input()); len(errs) > 0 {
			log.Fatal().Strs("errors", errs).Str("sku", p.SKU).Msg("invalid seed product")
		}
		created, err := productSvc.CreateProduct(req)
		if err != nil {
			log.Fatal().Err(err).Str("sku", p.SKU).Msg("failed to create product")
		}
		idBySKU[created.SKU] = created.ID
	}
	log.Info().Int("count", len(products)).Msg("Products seeded")

	for _, t := range tenders {
		req := &service.TenderRequest{
			Client:          t.Client,
			AwardDate:       t.AwardDate,
			DeliveryDate:    t.DeliveryDate,
			DeliveryAddress: t.DeliveryAddress,
			ContactPhone:    t.ContactPhone,
			ContactEmail:    t.ContactEmail,
			Margin:          t.Margin,
		}
		for _, line := range t.Products {
			id, ok := idBySKU[line.SKU]
			if !ok {
				log.Fatal().Str("sku", line.SKU).Str("client", t.Client).Msg("tender references unknown sku")
			}
			req.Products = append(req.Products, service.TenderLineRequest{
				ProductID:   id,
				Quantity:    line.Quantity,
				Price:       line.Price,
				Observation: line.Observation,
			})
		}
		if errs := validation.ValidateTender(req.Input()); len(errs) > 0 {
			log.Fatal().Strs("errors", errs).Str("client", t.Client).Msg("invalid seed tender")
		}
		if _, err := tenderSvc.CreateTender(req); err != nil {
			log.Fatal().Err(err).Str("client", t.Client).Msg("failed to create tender")
		}
	}
	log.Info().Int("count", len(tenders)).Msg("Tenders seeded")
}

// readSeedFile parses a JSON array file into the given element type.
func readSeedFile[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return items, nil
}
