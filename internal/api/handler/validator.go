package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator adapts go-playground/validator to the echo.Validator
// interface so handlers can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate collects every failed rule into one semicolon-joined message;
// the intake frontend shows the text as-is.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, ruleMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// ruleMessage renders one failed rule. The claim and credential payloads
// only carry required and email tags; anything else falls through to the
// generic form.
func ruleMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
	}
}
