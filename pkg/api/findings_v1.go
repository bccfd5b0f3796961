// pkg/api/findings_v1.go
package api

// FindingV1 is the stable JSON/JSONL/msgpack schema for one lint finding.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type FindingV1 struct {
	Path     string `json:"path" msgpack:"path"`
	Record   int    `json:"record" msgpack:"record"` // 1-based
	Line     int    `json:"line" msgpack:"line"`     // name line of the record
	Code     string `json:"code" msgpack:"code"`
	Check    string `json:"check" msgpack:"check"`
	Severity string `json:"severity" msgpack:"severity"` // "low" | "medium" | "high"
	Field    string `json:"field" msgpack:"field"`
	Position *int   `json:"position,omitempty" msgpack:"position,omitempty"`
	Message  string `json:"message" msgpack:"message"`
}
