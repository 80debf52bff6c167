package component

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	forgeerrors "github.com/uiforge/uiforge/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	componentNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			return componentNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// LoadDefinitions reads a definition document from disk, validates it, and
// returns the component trees it declares.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, forgeerrors.NewParseError(path, err)
	}

	var file DefinitionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, forgeerrors.NewParseError(path, err)
	}

	if err := ValidateDefinitions(file.Components); err != nil {
		return nil, err
	}

	return file.Components, nil
}

// ValidateDefinitions performs schema validation on each tree and rejects
// nesting beyond MaxDepth.
func ValidateDefinitions(defs []Definition) error {
	if len(defs) == 0 {
		return forgeerrors.NewValidationError("components", "at least one component is required", nil)
	}

	v := validatorInstance()
	for i := range defs {
		if err := v.Struct(&defs[i]); err != nil {
			return convertValidationError(err)
		}
		if err := checkDepth(&defs[i], 1); err != nil {
			return err
		}
	}

	return nil
}

func checkDepth(def *Definition, depth int) error {
	if depth > MaxDepth {
		return forgeerrors.NewValidationError(def.Name, fmt.Sprintf("component nesting exceeds %d levels", MaxDepth), nil)
	}
	for i := range def.Children {
		if err := checkDepth(&def.Children[i], depth+1); err != nil {
			return err
		}
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return forgeerrors.NewValidationError(fe.Namespace(), fmt.Sprintf("failed %q validation", fe.Tag()), err)
	}

	return forgeerrors.NewValidationError("", err.Error(), err)
}
