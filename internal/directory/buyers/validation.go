package buyers

import (
	"fmt"
	"strings"
)

func (s *Service) validate(b Buyer) error {
	if strings.TrimSpace(b.CompanyName) == "" {
		return fmt.Errorf("%w: company_name is required", ErrValidation)
	}
	return nil
}

func (s *Service) validatePatch(p Patch) error {
	if p.CompanyName != nil && strings.TrimSpace(*p.CompanyName) == "" {
		return fmt.Errorf("%w: company_name must not be blank", ErrValidation)
	}
	return nil
}
