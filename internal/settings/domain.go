// Package settings manages the singleton application settings document:
// numbering counters and prefixes, pricing defaults and the logo asset.
package settings

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/newline-apparel/po-backend/internal/platform/httpx"
)

// AppSettings is the singleton configuration record. Logo fields are nil
// until a logo has been uploaded.
type AppSettings struct {
	NextPONumber     int64           `json:"next_po_number"`
	NextPINumber     int64           `json:"next_pi_number"`
	POPrefix         string          `json:"po_prefix"`
	PIPrefix         string          `json:"pi_prefix"`
	UsePOPrefix      bool            `json:"use_po_prefix"`
	UsePIPrefix      bool            `json:"use_pi_prefix"`
	DefaultUnitPrice decimal.Decimal `json:"default_unit_price"`
	LogoBase64       *string         `json:"logo_base64"`
	LogoFilename     *string         `json:"logo_filename"`
	LogoPath         *string         `json:"logo_path"`
	LogoURL          *string         `json:"logo_url"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// UpdatePatch carries the settable fields. Anything else in an update
// payload is ignored rather than rejected.
type UpdatePatch struct {
	POPrefix         *string          `json:"po_prefix"`
	PIPrefix         *string          `json:"pi_prefix"`
	UsePOPrefix      *bool            `json:"use_po_prefix"`
	UsePIPrefix      *bool            `json:"use_pi_prefix"`
	DefaultUnitPrice *decimal.Decimal `json:"default_unit_price"`
}

// Empty reports whether no settable field is present.
func (p UpdatePatch) Empty() bool {
	return p.POPrefix == nil && p.PIPrefix == nil &&
		p.UsePOPrefix == nil && p.UsePIPrefix == nil && p.DefaultUnitPrice == nil
}

// LogoAsset bundles the stored representations of an uploaded logo.
type LogoAsset struct {
	Base64   string
	Filename string
	Path     string
	URL      string
}

// Defaults used when the singleton row is first created.
const (
	DefaultPOPrefix = "NA/"
	DefaultPIPrefix = "PI/"
)

// ErrNoChanges indicates an update payload with no recognized fields.
var ErrNoChanges = fmt.Errorf("settings: %w", httpx.ErrNoChanges)
