package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Variant string

const (
	VariantFirstYear  Variant = "first_year"
	VariantSecondYear Variant = "second_year"
	VariantSpotlight  Variant = "spotlight"
)

// StepCount is the number of wizard steps for every variant.
const StepCount = 5

func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantFirstYear, VariantSecondYear, VariantSpotlight:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown form variant: %q", s)
}

// Field is one entry of a variant's ordered field table. Name is the wizard
// field name as the form posts it; Column is the name it maps to in the
// persisted application payload.
type Field struct {
	Name     string
	Column   string
	Step     int
	Rule     string // validator tag, checked only when the field is required
	Required bool
}

// DerivedField is recomputed from two other fields whenever they change.
type DerivedField struct {
	Name      string
	Column    string
	Numerator string
	Divisor   string
}

type DocumentType struct {
	Name     string
	Label    string
	Required bool // enforced again at submit time, not just on the documents step
}

type Schema struct {
	Variant   Variant
	Fields    []Field
	Derived   []DerivedField
	Documents []DocumentType
}

var registry = map[Variant]*Schema{
	VariantFirstYear:  firstYearSchema,
	VariantSecondYear: secondYearSchema,
	VariantSpotlight:  spotlightSchema,
}

func SchemaFor(v Variant) (*Schema, error) {
	s, ok := registry[v]
	if !ok {
		return nil, fmt.Errorf("unknown form variant: %q", v)
	}
	return s, nil
}

var validate = validator.New()

// RequiredFields returns the names of the fields that must be present and
// valid before the given step can be advanced.
func (s *Schema) RequiredFields(step int) []string {
	var names []string
	for _, f := range s.Fields {
		if f.Step == step && f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// ValidateStep checks only the given step's required fields and returns a
// field -> message map. An empty map means the step passes; steps with no
// required fields pass trivially.
func (s *Schema) ValidateStep(step int, values map[string]string) map[string]string {
	errs := map[string]string{}
	for _, f := range s.Fields {
		if f.Step != step || !f.Required {
			continue
		}
		v := strings.TrimSpace(values[f.Name])
		if v == "" {
			errs[f.Name] = "this field is required"
			continue
		}
		if f.Rule == "" {
			continue
		}
		if err := validate.Var(v, f.Rule); err != nil {
			errs[f.Name] = ruleMessage(f.Rule)
		}
	}
	return errs
}

// RequiredDocuments returns the document types that must be attached before
// an application can be submitted.
func (s *Schema) RequiredDocuments() []DocumentType {
	var req []DocumentType
	for _, d := range s.Documents {
		if d.Required {
			req = append(req, d)
		}
	}
	return req
}

// DocumentNames returns all document type names for the variant, required or
// not. These names are also excluded from draft persistence: file fields do
// not survive serialization.
func (s *Schema) DocumentNames() []string {
	names := make([]string, 0, len(s.Documents))
	for _, d := range s.Documents {
		names = append(names, d.Name)
	}
	return names
}

// Payload maps wizard field names to record field names. Empty optional
// values become explicit nulls so the backend can tell "not provided" from
// "provided empty".
func (s *Schema) Payload(values map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(s.Fields)+len(s.Derived))
	for _, f := range s.Fields {
		if v := strings.TrimSpace(values[f.Name]); v != "" {
			out[f.Column] = v
		} else {
			out[f.Column] = nil
		}
	}
	for _, d := range s.Derived {
		if v := strings.TrimSpace(values[d.Name]); v != "" {
			out[d.Column] = v
		} else {
			out[d.Column] = nil
		}
	}
	return out
}

func ruleMessage(rule string) string {
	switch {
	case strings.Contains(rule, "email"):
		return "must be a valid email address"
	case strings.Contains(rule, "datetime"):
		return "must be a valid date (YYYY-MM-DD)"
	case strings.Contains(rule, "oneof"):
		return "is not one of the allowed values"
	case strings.Contains(rule, "numeric"):
		return "must be a number of the expected length"
	case strings.Contains(rule, "alphanum"):
		return "must be alphanumeric"
	default:
		return "invalid value"
	}
}
