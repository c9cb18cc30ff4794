package orders

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/newline-apparel/po-backend/internal/platform/httpx"
)

// Document types sharing the purchase order schema.
type DocType string

const (
	DocTypePO DocType = "PO"
	DocTypePI DocType = "PI"
)

// Party identifies a company taking part in an order.
type Party struct {
	Company      string   `json:"company" validate:"required"`
	AddressLines []string `json:"address_lines"`
	GSTIN        string   `json:"gstin,omitempty"`
	ContactName  string   `json:"contact_name,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
}

// OrderLine is a single style on the order.
type OrderLine struct {
	StyleCode          string          `json:"style_code"`
	ProductDescription string          `json:"product_description"`
	FabricGSM          string          `json:"fabric_gsm"`
	Colors             StringList      `json:"colors"`
	SizeRange          StringList      `json:"size_range"`
	Quantity           int             `json:"quantity" validate:"gte=0"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	Unit               string          `json:"unit"`
}

// BreakdownColor is one colour of the size x colour matrix with its price.
type BreakdownColor struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SizeColourBreakdown is the size x colour quantity matrix for the order.
// GrandTotal is caller-supplied and not cross-checked against Values.
type SizeColourBreakdown struct {
	Sizes      []string                  `json:"sizes"`
	Colors     BreakdownColorList        `json:"colors"`
	Values     map[string]map[string]int `json:"values"`
	GrandTotal int                       `json:"grand_total"`
}

// PackingInstructions holds free-form packing fields.
type PackingInstructions struct {
	Folding           string `json:"folding,omitempty"`
	PackingType       string `json:"packing_type,omitempty"`
	SizePacking       string `json:"size_packing,omitempty"`
	CartonBagMarkings string `json:"carton_bag_markings,omitempty"`
	PackingRatio      string `json:"packing_ratio,omitempty"`
}

// OtherTerms holds free-form commercial terms.
type OtherTerms struct {
	QC             string `json:"qc,omitempty"`
	LabelsTags     string `json:"labels_tags,omitempty"`
	ShortageExcess string `json:"shortage_excess,omitempty"`
	Penalty        string `json:"penalty,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// Authorisation names the signatories on both sides.
type Authorisation struct {
	BuyerDesignation    string `json:"buyer_designation,omitempty"`
	BuyerName           string `json:"buyer_name,omitempty"`
	SupplierDesignation string `json:"supplier_designation,omitempty"`
	SupplierName        string `json:"supplier_name,omitempty"`
}

// PurchaseOrder is the stored PO/PI document.
type PurchaseOrder struct {
	ID                  string              `json:"id"`
	DocType             DocType             `json:"doc_type"`
	PONumber            string              `json:"po_number"`
	PODate              string              `json:"po_date"`
	BillTo              Party               `json:"bill_to"`
	Buyer               Party               `json:"buyer"`
	Supplier            Party               `json:"supplier"`
	DeliveryDate        string              `json:"delivery_date"`
	DeliveryTerms       string              `json:"delivery_terms"`
	PaymentTerms        string              `json:"payment_terms"`
	Currency            string              `json:"currency"`
	OrderLines          []OrderLine         `json:"order_lines"`
	SizeColourBreakdown SizeColourBreakdown `json:"size_colour_breakdown"`
	PackingInstructions PackingInstructions `json:"packing_instructions"`
	OtherTerms          OtherTerms          `json:"other_terms"`
	Authorisation       Authorisation       `json:"authorisation"`
	LogoURL             string              `json:"logo_url,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// DefaultBuyer is the company profile used when a document omits the buyer.
func DefaultBuyer() Party {
	return Party{
		Company: "Newline Apparel",
		AddressLines: []string{
			"61, GKD Nagar, PN Palayam",
			"Coimbatore – 641037",
			"Tamil Nadu",
		},
		GSTIN: "33AABCN1234F1Z5",
	}
}

var (
	// ErrNotFound indicates the purchase order does not exist.
	ErrNotFound = fmt.Errorf("purchase order: %w", httpx.ErrNotFound)
	// ErrValidation indicates invalid input.
	ErrValidation = fmt.Errorf("purchase order: %w", httpx.ErrValidation)
)
