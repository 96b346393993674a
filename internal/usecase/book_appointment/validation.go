package book_appointment

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// phonePattern допускает международный формат с необязательным плюсом
var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// validateRequest валидирует контактные данные запроса
func validateRequest(req *Request) error {
	if req.FlowID == "" {
		return fmt.Errorf("%w: flow id is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	phone := strings.ReplaceAll(strings.ReplaceAll(req.Phone, " ", ""), "-", "")
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	if !validAppointmentType(req.Type) {
		return fmt.Errorf("%w: unknown appointment type %q", ErrInvalidInput, req.Type)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

func validAppointmentType(t domain.AppointmentType) bool {
	switch t {
	case domain.TypePortrait, domain.TypeFamily, domain.TypeWedding, domain.TypeProduct, domain.TypeDocuments:
		return true
	default:
		return false
	}
}
