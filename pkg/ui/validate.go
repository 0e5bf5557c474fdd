package ui

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used by the
// component constructors.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their prop names rather than Go field names.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
			e, ok := fl.Field().Interface().(interface{ Valid() bool })
			return ok && e.Valid()
		})

		v.RegisterStructValidation(func(sl validator.StructLevel) {
			p := sl.Current().Interface().(TextProps)
			if p.Content == "" && len(p.Children) == 0 {
				sl.ReportError(p.Content, "content", "Content", "required", "")
			}
		}, TextProps{})

		validateInst = v
	})
	return validateInst
}

// validateProps runs the struct rules on props and converts the first
// failure into a PropError.
func validateProps(component string, props any) error {
	err := validatorInstance().Struct(props)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	pe := &PropError{
		Component: component,
		Prop:      fe.Field(),
		Value:     fmt.Sprint(fe.Value()),
		Err:       ErrInvalidProp,
	}
	switch fe.Tag() {
	case "required":
		pe.Err = ErrMissingContent
	case "enum":
		if o, ok := fe.Value().(interface{ Options() []string }); ok {
			pe.Allowed = o.Options()
		}
	}
	return pe
}
