package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/vango-dev/styled/internal/errors"
	"github.com/vango-dev/styled/pkg/styled"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("primitive", func(fl validator.FieldLevel) bool {
			_, ok := styled.Primitive(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("styleprop", func(fl validator.FieldLevel) bool {
			return styled.IsAllowed(fl.Field().String())
		})

		// Declared components must not shadow a primitive.
		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			if strings.TrimSpace(name) == "" {
				return false
			}
			_, shadows := styled.Primitive(name)
			return !shadows
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the configuration. Unknown base primitives and alias
// presets get their own error codes; everything else is E102.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return c.convertValidationError(err)
	}

	for _, name := range c.ComponentNames() {
		seen := make(map[string]bool)
		for i, ex := range c.Components[name].Examples {
			if seen[ex.Name] {
				return errors.New("E102").
					WithDetail(fmt.Sprintf("components.%s.examples[%d]: duplicate example name %q", name, i, ex.Name))
			}
			seen[ex.Name] = true
		}
	}
	return nil
}

// ValidatePublish checks the settings needed to upload the showcase.
func (c *Config) ValidatePublish() error {
	if strings.TrimSpace(c.Publish.Bucket) == "" {
		return errors.New("E161").
			WithSuggestion("Add publish.bucket to " + ConfigFileName)
	}
	return nil
}

func (c *Config) convertValidationError(err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return errors.New("E102").Wrap(err)
	}

	fe := ves[0]
	field := yamlishFieldName(fe)
	value := fmt.Sprint(fe.Value())

	switch {
	case fe.Tag() == "primitive":
		return errors.New("E103").
			WithDetail(fmt.Sprintf("%s: %q is not a primitive", field, value)).
			WithSuggestion("Use one of " + strings.Join(styled.PrimitiveNames(), ", "))
	case fe.Tag() == "oneof" && fe.StructField() == "AliasPreset":
		return errors.New("E104").
			WithDetail(fmt.Sprintf("%s: unknown preset %q", field, value)).
			WithSuggestion("Use none, default or text")
	case fe.Tag() == "styleprop":
		return errors.New("E102").
			WithDetail(fmt.Sprintf("%s: alias target %q is not a style property", field, value)).
			WithSuggestion("Run 'styled props' to list the style properties")
	case fe.Tag() == "component_name":
		return errors.New("E102").
			WithDetail(fmt.Sprintf("%s: component name %q is empty or shadows a primitive", field, value))
	default:
		return errors.New("E102").
			WithDetail(fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag()))
	}
}

// yamlishFieldName turns a struct namespace such as
// "Config.Components[Heading].AliasPreset" into "components[Heading].aliasPreset".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToLower(part[:1]) + part[1:]
	}
	return strings.Join(parts, ".")
}
