package validation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// StructError is a field-to-message map returned when tag-based struct
// validation fails.
type StructError map[string]string

// Error implements the error interface.
func (se StructError) Error() string {
	if len(se) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(se)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (se StructError) Values() map[string]string {
	return se
}

// StructValidator validates structs by `validate` tags using
// go-playground/validator v10 with English translations.
//
// It backs wiring-time checks such as module dependency structs; domain
// entities go through RuleSet instead so messages stay under our control.
type StructValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewStructValidator constructs a StructValidator with English translations.
func NewStructValidator() (*StructValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	return &StructValidator{validate: validate, translator: enTrans}, nil
}

// Validate validates a struct and returns a StructError on failure.
func (v *StructValidator) Validate(data any) error {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return err
	}

	se := make(StructError, len(validateErrs))
	for _, fe := range validateErrs {
		se[fe.Field()] = fe.Translate(v.translator)
	}

	return se
}
