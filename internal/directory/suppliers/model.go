package suppliers

import (
	"fmt"
	"time"

	"github.com/newline-apparel/po-backend/internal/platform/httpx"
)

// Supplier is a reusable supplier directory record.
type Supplier struct {
	ID            string    `json:"id"`
	CompanyName   string    `json:"company_name"`
	Address1      string    `json:"address1,omitempty"`
	Address2      string    `json:"address2,omitempty"`
	Address3      string    `json:"address3,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	GSTIN         string    `json:"gstin,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	CompanyName   *string `json:"company_name"`
	Address1      *string `json:"address1"`
	Address2      *string `json:"address2"`
	Address3      *string `json:"address3"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	GSTIN         *string `json:"gstin"`
	Notes         *string `json:"notes"`
}

var (
	// ErrNotFound indicates the supplier does not exist.
	ErrNotFound = fmt.Errorf("supplier: %w", httpx.ErrNotFound)
	// ErrValidation indicates invalid input.
	ErrValidation = fmt.Errorf("supplier: %w", httpx.ErrValidation)
)
