package orders

// CreateInput is the payload for creating a purchase order. Field shapes
// match the stored document; colour and size fields tolerate the legacy
// delimited-string and bare-name forms via their canonical types.
type CreateInput struct {
	DocType             DocType             `json:"doc_type"`
	PONumber            string              `json:"po_number" validate:"required"`
	PODate              string              `json:"po_date" validate:"required"`
	BillTo              Party               `json:"bill_to"`
	Buyer               *Party              `json:"buyer,omitempty"`
	Supplier            Party               `json:"supplier"`
	DeliveryDate        string              `json:"delivery_date" validate:"required"`
	DeliveryTerms       string              `json:"delivery_terms" validate:"required"`
	PaymentTerms        string              `json:"payment_terms" validate:"required"`
	Currency            string              `json:"currency"`
	OrderLines          []OrderLine         `json:"order_lines"`
	SizeColourBreakdown SizeColourBreakdown `json:"size_colour_breakdown"`
	PackingInstructions PackingInstructions `json:"packing_instructions"`
	OtherTerms          OtherTerms          `json:"other_terms"`
	Authorisation       Authorisation       `json:"authorisation"`
	LogoURL             string              `json:"logo_url,omitempty"`
}

// UpdateInput is a partial update. A nil field leaves the stored value
// untouched; a non-nil field replaces it. DocType is immutable.
type UpdateInput struct {
	PONumber            *string              `json:"po_number"`
	PODate              *string              `json:"po_date"`
	BillTo              *Party               `json:"bill_to"`
	Buyer               *Party               `json:"buyer"`
	Supplier            *Party               `json:"supplier"`
	DeliveryDate        *string              `json:"delivery_date"`
	DeliveryTerms       *string              `json:"delivery_terms"`
	PaymentTerms        *string              `json:"payment_terms"`
	Currency            *string              `json:"currency"`
	OrderLines          *[]OrderLine         `json:"order_lines"`
	SizeColourBreakdown *SizeColourBreakdown `json:"size_colour_breakdown"`
	PackingInstructions *PackingInstructions `json:"packing_instructions"`
	OtherTerms          *OtherTerms          `json:"other_terms"`
	Authorisation       *Authorisation       `json:"authorisation"`
	LogoURL             *string              `json:"logo_url"`
}

// ListFilters narrows the listing. Both filters are case-insensitive
// substring matches and combine with AND.
type ListFilters struct {
	Search   string
	Supplier string
}
