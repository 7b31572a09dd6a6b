package catalog

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/priya1793/shopverse/internal/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCouponNotFound  = errors.New("coupon not found")
)

// Repository reads the static catalog (products, categories, coupons) from
// SQLite. The catalog is seeded by migrations and never written at runtime.
type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

// RunMigrations applies the embedded schema and seed migrations.
func (r *Repository) RunMigrations() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not open migration source: %w", err)
	}

	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

const productColumns = `
	id, name, price, original_price, description, short_description,
	category, brand, rating, review_count, image, images, sizes, colors,
	in_stock, tags, featured, trending
`

// GetAllProducts returns the full catalog ordered by id.
func (r *Repository) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

// GetProduct returns the product with the given id or ErrProductNotFound.
func (r *Repository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	numID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, ErrProductNotFound
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`

	rows, err := r.db.QueryContext(ctx, query, numID)
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("row iteration error: %w", err)
		}
		return nil, ErrProductNotFound
	}

	p, err := scanProduct(rows)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetCategories returns the category descriptors ordered by name.
func (r *Repository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT name, slug, product_count, image FROM categories ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Name, &c.Slug, &c.ProductCount, &c.Image); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return categories, nil
}

// GetCoupon looks a coupon up by code, case-insensitively, returning
// ErrCouponNotFound when no definition matches.
func (r *Repository) GetCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	query := `SELECT code, type, value, min_order FROM coupons WHERE code = ? COLLATE NOCASE`

	var c domain.Coupon
	err := r.db.QueryRowContext(ctx, query, code).Scan(&c.Code, &c.Type, &c.Value, &c.MinOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query coupon: %w", err)
	}

	return &c, nil
}

// GetAllCoupons returns every coupon definition, used to validate the seed.
func (r *Repository) GetAllCoupons(ctx context.Context) ([]domain.Coupon, error) {
	query := `SELECT code, type, value, min_order FROM coupons ORDER BY code`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query coupons: %w", err)
	}
	defer rows.Close()

	var coupons []domain.Coupon
	for rows.Next() {
		var c domain.Coupon
		if err := rows.Scan(&c.Code, &c.Type, &c.Value, &c.MinOrder); err != nil {
			return nil, fmt.Errorf("failed to scan coupon: %w", err)
		}
		coupons = append(coupons, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return coupons, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (domain.Product, error) {
	var (
		p                          domain.Product
		id                         int64
		images, sizes, colors, tag sql.NullString
		originalPrice              sql.NullFloat64
	)

	err := row.Scan(
		&id,
		&p.Name,
		&p.Price,
		&originalPrice,
		&p.Description,
		&p.ShortDescription,
		&p.Category,
		&p.Brand,
		&p.Rating,
		&p.ReviewCount,
		&p.Image,
		&images,
		&sizes,
		&colors,
		&p.InStock,
		&tag,
		&p.Featured,
		&p.Trending,
	)
	if err != nil {
		return p, fmt.Errorf("failed to scan product: %w", err)
	}

	p.ID = strconv.FormatInt(id, 10)
	p.OriginalPrice = originalPrice.Float64

	if err := unmarshalColumn(images, &p.Images); err != nil {
		return p, err
	}
	if err := unmarshalColumn(sizes, &p.Sizes); err != nil {
		return p, err
	}
	if err := unmarshalColumn(colors, &p.Colors); err != nil {
		return p, err
	}
	if err := unmarshalColumn(tag, &p.Tags); err != nil {
		return p, err
	}

	return p, nil
}

// unmarshalColumn decodes a JSON list column; NULL decodes to nil.
func unmarshalColumn(col sql.NullString, dest any) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(col.String), dest); err != nil {
		return fmt.Errorf("failed to decode catalog column: %w", err)
	}
	return nil
}
