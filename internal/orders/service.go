package orders

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/newline-apparel/po-backend/internal/numbering"
)

// Repository describes storage operations used by Service.
type Repository interface {
	Insert(ctx context.Context, po PurchaseOrder) error
	List(ctx context.Context, filters ListFilters) ([]PurchaseOrder, error)
	Get(ctx context.Context, id string) (PurchaseOrder, error)
	Update(ctx context.Context, id string, patch UpdateInput, updatedAt time.Time) (PurchaseOrder, error)
	Delete(ctx context.Context, id string) error
}

// NumberIssuer draws fresh document numbers on duplication.
type NumberIssuer interface {
	Issue(ctx context.Context, kind numbering.Kind) (numbering.IssuedNumber, error)
}

// Service orchestrates purchase order CRUD and duplication.
type Service struct {
	repo     Repository
	numbers  NumberIssuer
	validate *validator.Validate
	now      func() time.Time
}

// NewService constructs the purchase order service.
func NewService(repo Repository, numbers NumberIssuer) *Service {
	return &Service{repo: repo, numbers: numbers, validate: validator.New(), now: time.Now}
}

// Create normalizes, validates and persists a new document. The server
// assigns id and timestamps.
func (s *Service) Create(ctx context.Context, input CreateInput) (PurchaseOrder, error) {
	input.OrderLines = normalizeLines(input.OrderLines, input.SizeColourBreakdown)
	if err := s.validateCreate(input); err != nil {
		return PurchaseOrder{}, err
	}

	now := s.now().UTC()
	po := PurchaseOrder{
		ID:                  uuid.NewString(),
		DocType:             defaultDocType(input.DocType),
		PONumber:            input.PONumber,
		PODate:              input.PODate,
		BillTo:              input.BillTo,
		Buyer:               DefaultBuyer(),
		Supplier:            input.Supplier,
		DeliveryDate:        input.DeliveryDate,
		DeliveryTerms:       input.DeliveryTerms,
		PaymentTerms:        input.PaymentTerms,
		Currency:            defaultString(input.Currency, "INR"),
		OrderLines:          input.OrderLines,
		SizeColourBreakdown: input.SizeColourBreakdown,
		PackingInstructions: input.PackingInstructions,
		OtherTerms:          input.OtherTerms,
		Authorisation:       input.Authorisation,
		LogoURL:             input.LogoURL,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if input.Buyer != nil && input.Buyer.Company != "" {
		po.Buyer = *input.Buyer
	}
	if err := s.repo.Insert(ctx, po); err != nil {
		return PurchaseOrder{}, err
	}
	return po, nil
}

// List returns all documents matching the filters, newest first.
func (s *Service) List(ctx context.Context, filters ListFilters) ([]PurchaseOrder, error) {
	return s.repo.List(ctx, filters)
}

// Get fetches a single document by id.
func (s *Service) Get(ctx context.Context, id string) (PurchaseOrder, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a partial update. Fields absent from the patch are left
// untouched; updated_at is always refreshed. When the patch carries order
// lines they are re-normalized against the effective breakdown (the
// patched one when supplied, the stored one otherwise).
func (s *Service) Update(ctx context.Context, id string, patch UpdateInput) (PurchaseOrder, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return PurchaseOrder{}, err
	}
	if err := validatePatch(patch); err != nil {
		return PurchaseOrder{}, err
	}
	if patch.OrderLines != nil {
		breakdown := existing.SizeColourBreakdown
		if patch.SizeColourBreakdown != nil {
			breakdown = *patch.SizeColourBreakdown
		}
		lines := normalizeLines(*patch.OrderLines, breakdown)
		patch.OrderLines = &lines
	}
	return s.repo.Update(ctx, id, patch, s.now().UTC())
}

// Delete removes the document by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Duplicate clones the document into a fully independent copy with a new
// id, a freshly issued number for the source's doc type, and both dates
// reset to today.
func (s *Service) Duplicate(ctx context.Context, id string) (PurchaseOrder, error) {
	src, err := s.repo.Get(ctx, id)
	if err != nil {
		return PurchaseOrder{}, err
	}
	issued, err := s.numbers.Issue(ctx, numberKind(src.DocType))
	if err != nil {
		return PurchaseOrder{}, err
	}

	now := s.now().UTC()
	today := now.Format("2006-01-02")
	dup := src.Clone()
	dup.ID = uuid.NewString()
	dup.PONumber = issued.Number
	dup.PODate = today
	dup.DeliveryDate = today
	dup.CreatedAt = now
	dup.UpdatedAt = now
	if err := s.repo.Insert(ctx, dup); err != nil {
		return PurchaseOrder{}, err
	}
	return dup, nil
}

// Clone produces a deep copy so later edits to either document do not
// affect the other.
func (p PurchaseOrder) Clone() PurchaseOrder {
	out := p
	out.BillTo = p.BillTo.clone()
	out.Buyer = p.Buyer.clone()
	out.Supplier = p.Supplier.clone()
	out.OrderLines = make([]OrderLine, len(p.OrderLines))
	for i, line := range p.OrderLines {
		line.Colors = append(StringList(nil), line.Colors...)
		line.SizeRange = append(StringList(nil), line.SizeRange...)
		out.OrderLines[i] = line
	}
	out.SizeColourBreakdown.Sizes = append([]string(nil), p.SizeColourBreakdown.Sizes...)
	out.SizeColourBreakdown.Colors = append(BreakdownColorList(nil), p.SizeColourBreakdown.Colors...)
	out.SizeColourBreakdown.Values = make(map[string]map[string]int, len(p.SizeColourBreakdown.Values))
	for color, bySize := range p.SizeColourBreakdown.Values {
		counts := make(map[string]int, len(bySize))
		for size, n := range bySize {
			counts[size] = n
		}
		out.SizeColourBreakdown.Values[color] = counts
	}
	return out
}

func (p Party) clone() Party {
	p.AddressLines = append([]string(nil), p.AddressLines...)
	return p
}

func defaultDocType(t DocType) DocType {
	if t == "" {
		return DocTypePO
	}
	return t
}

func numberKind(t DocType) numbering.Kind {
	if t == DocTypePI {
		return numbering.KindPI
	}
	return numbering.KindPO
}

func defaultString(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
