package writers

import (
	"fqlint/internal/lint"
	"fqlint/pkg/api"
)

// ToAPIFinding converts a Finding to the stable wire schema (v1).
func ToAPIFinding(f lint.Finding) api.FindingV1 {
	d := f.Diagnosis
	v := api.FindingV1{
		Path:     f.Path,
		Record:   f.Record,
		Line:     f.Line(),
		Code:     d.Code,
		Check:    d.CheckName,
		Severity: f.Severity.String(),
		Field:    d.Field.String(),
		Message:  d.Message,
	}
	if n, ok := d.Position.Get(); ok {
		v.Position = &n
	}
	return v
}
