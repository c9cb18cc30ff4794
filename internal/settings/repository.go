package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newline-apparel/po-backend/internal/numbering"
)

// Repository persists the singleton settings row.
type Repository interface {
	Get(ctx context.Context) (AppSettings, error)
	Update(ctx context.Context, patch UpdatePatch, updatedAt time.Time) (AppSettings, error)
	NextNumber(ctx context.Context, kind numbering.Kind) (int64, string, error)
	SetLogo(ctx context.Context, logo LogoAsset, updatedAt time.Time) error
	ClearLogo(ctx context.Context, updatedAt time.Time) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository returns a PostgreSQL-backed settings repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const settingsColumns = `next_po_number, next_pi_number, po_prefix, pi_prefix,
	use_po_prefix, use_pi_prefix, default_unit_price,
	logo_base64, logo_filename, logo_path, logo_url, updated_at`

// ensure lazily creates the singleton row with defaults.
func (r *repository) ensure(ctx context.Context) error {
	query := `INSERT INTO app_settings (id, next_po_number, next_pi_number, po_prefix, pi_prefix,
		use_po_prefix, use_pi_prefix, default_unit_price, updated_at)
		VALUES (1, 1, 1, $1, $2, FALSE, FALSE, 0, NOW())
		ON CONFLICT (id) DO NOTHING`
	if _, err := r.db.Exec(ctx, query, DefaultPOPrefix, DefaultPIPrefix); err != nil {
		return fmt.Errorf("settings: ensure row: %w", err)
	}
	return nil
}

func (r *repository) Get(ctx context.Context) (AppSettings, error) {
	if err := r.ensure(ctx); err != nil {
		return AppSettings{}, err
	}
	var s AppSettings
	err := r.db.QueryRow(ctx, `SELECT `+settingsColumns+` FROM app_settings WHERE id = 1`).Scan(
		&s.NextPONumber, &s.NextPINumber, &s.POPrefix, &s.PIPrefix,
		&s.UsePOPrefix, &s.UsePIPrefix, &s.DefaultUnitPrice,
		&s.LogoBase64, &s.LogoFilename, &s.LogoPath, &s.LogoURL, &s.UpdatedAt)
	if err != nil {
		return AppSettings{}, fmt.Errorf("settings: get: %w", err)
	}
	return s, nil
}

func (r *repository) Update(ctx context.Context, patch UpdatePatch, updatedAt time.Time) (AppSettings, error) {
	if err := r.ensure(ctx); err != nil {
		return AppSettings{}, err
	}
	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}
	if patch.POPrefix != nil {
		add("po_prefix", *patch.POPrefix)
	}
	if patch.PIPrefix != nil {
		add("pi_prefix", *patch.PIPrefix)
	}
	if patch.UsePOPrefix != nil {
		add("use_po_prefix", *patch.UsePOPrefix)
	}
	if patch.UsePIPrefix != nil {
		add("use_pi_prefix", *patch.UsePIPrefix)
	}
	if patch.DefaultUnitPrice != nil {
		add("default_unit_price", *patch.DefaultUnitPrice)
	}
	add("updated_at", updatedAt)

	query := `UPDATE app_settings SET ` + strings.Join(sets, ", ") + ` WHERE id = 1 RETURNING ` + settingsColumns
	var s AppSettings
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&s.NextPONumber, &s.NextPINumber, &s.POPrefix, &s.PIPrefix,
		&s.UsePOPrefix, &s.UsePIPrefix, &s.DefaultUnitPrice,
		&s.LogoBase64, &s.LogoFilename, &s.LogoPath, &s.LogoURL, &s.UpdatedAt)
	if err != nil {
		return AppSettings{}, fmt.Errorf("settings: update: %w", err)
	}
	return s, nil
}

// NextNumber bumps the counter for kind in a single statement so that
// concurrent issues never observe the same value. The value issued is the
// stored "next" value; counters start at 1.
func (r *repository) NextNumber(ctx context.Context, kind numbering.Kind) (int64, string, error) {
	if err := r.ensure(ctx); err != nil {
		return 0, "", err
	}
	counter, prefix := "next_po_number", "po_prefix"
	if kind == numbering.KindPI {
		counter, prefix = "next_pi_number", "pi_prefix"
	}
	query := `UPDATE app_settings SET ` + counter + ` = ` + counter + ` + 1, updated_at = NOW()
		WHERE id = 1 RETURNING ` + counter + ` - 1, ` + prefix
	var raw int64
	var pfx string
	if err := r.db.QueryRow(ctx, query).Scan(&raw, &pfx); err != nil {
		return 0, "", fmt.Errorf("settings: next number: %w", err)
	}
	return raw, pfx, nil
}

func (r *repository) SetLogo(ctx context.Context, logo LogoAsset, updatedAt time.Time) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	query := `UPDATE app_settings SET logo_base64 = $1, logo_filename = $2, logo_path = $3,
		logo_url = $4, updated_at = $5 WHERE id = 1`
	if _, err := r.db.Exec(ctx, query, logo.Base64, logo.Filename, logo.Path, logo.URL, updatedAt); err != nil {
		return fmt.Errorf("settings: set logo: %w", err)
	}
	return nil
}

func (r *repository) ClearLogo(ctx context.Context, updatedAt time.Time) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	query := `UPDATE app_settings SET logo_base64 = NULL, logo_filename = NULL, logo_path = NULL,
		logo_url = NULL, updated_at = $1 WHERE id = 1`
	if _, err := r.db.Exec(ctx, query, updatedAt); err != nil {
		return fmt.Errorf("settings: clear logo: %w", err)
	}
	return nil
}
