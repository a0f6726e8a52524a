package fields

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"acordier/expense-extract/internal/models"
)

// defaultSpecs describes the summary fields of an expense-report cover
// page. The labels mirror the report layout exactly.
var defaultSpecs = []models.FieldSpec{
	{Name: models.FieldNameLegalEntity, Label: "Custom 10-Legal Entity", Type: models.FieldToken},
	{Name: models.FieldNameCurrency, Label: "Currency", Type: models.FieldFreeText},
	{Name: models.FieldNameAmountDueEmployee, Label: "Amount Due Employee", Type: models.FieldAmount},
	{Name: models.FieldNameAmountDueCompanyCard, Label: "Amount Due Company Card", Type: models.FieldAmount},
	{Name: models.FieldNameTotalPaidByCompany, Label: "Total Paid By Company", Type: models.FieldAmount},
}

// Registry is an ordered set of compiled field patterns.
type Registry struct {
	patterns []Pattern
}

// NewRegistry compiles the given specs into a registry, preserving order.
func NewRegistry(specs []models.FieldSpec) (*Registry, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("field registry needs at least one pattern")
	}

	patterns := make([]Pattern, 0, len(specs))
	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate field pattern '%s'", spec.Name)
		}
		seen[spec.Name] = true

		p, err := Compile(spec)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return &Registry{patterns: patterns}, nil
}

// DefaultRegistry returns the built-in expense-report pattern set.
func DefaultRegistry() *Registry {
	patterns := make([]Pattern, 0, len(defaultSpecs))
	for _, spec := range defaultSpecs {
		patterns = append(patterns, MustCompile(spec))
	}
	return &Registry{patterns: patterns}
}

// LoadRegistry reads field specs from a YAML file. An empty path returns
// the built-in defaults.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field patterns file: %w", err)
	}

	var specs []models.FieldSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("failed to parse field patterns file '%s': %w", path, err)
	}

	return NewRegistry(specs)
}

// Patterns returns the compiled patterns in registry order.
func (r *Registry) Patterns() []Pattern {
	return r.patterns
}
