package orders

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

func (s *Service) validateCreate(in CreateInput) error {
	if err := s.validate.Struct(in); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return fmt.Errorf("%w: %s failed on %s", ErrValidation, fieldErrs[0].Field(), fieldErrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if in.BillTo.Company == "" {
		return fmt.Errorf("%w: bill_to.company is required", ErrValidation)
	}
	if in.Supplier.Company == "" {
		return fmt.Errorf("%w: supplier.company is required", ErrValidation)
	}
	if in.DocType != "" && in.DocType != DocTypePO && in.DocType != DocTypePI {
		return fmt.Errorf("%w: doc_type must be PO or PI", ErrValidation)
	}
	return validateLines(in.OrderLines)
}

func validateLines(lines []OrderLine) error {
	for i, line := range lines {
		if line.Quantity < 0 {
			return fmt.Errorf("%w: order_lines[%d].quantity must not be negative", ErrValidation, i)
		}
		if line.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: order_lines[%d].unit_price must not be negative", ErrValidation, i)
		}
	}
	return nil
}

func validatePatch(patch UpdateInput) error {
	if patch.BillTo != nil && patch.BillTo.Company == "" {
		return fmt.Errorf("%w: bill_to.company is required", ErrValidation)
	}
	if patch.Supplier != nil && patch.Supplier.Company == "" {
		return fmt.Errorf("%w: supplier.company is required", ErrValidation)
	}
	if patch.OrderLines != nil {
		return validateLines(*patch.OrderLines)
	}
	return nil
}
