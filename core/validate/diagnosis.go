package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names the record line a diagnosis points at.
type Field uint8

const (
	FieldName Field = iota
	FieldSequence
	FieldSeparator
	FieldQuality
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldSequence:
		return "sequence"
	case FieldSeparator:
		return "separator"
	case FieldQuality:
		return "quality"
	}
	return "Field(" + strconv.Itoa(int(f)) + ")"
}

// Position is an optional 1-based column. The zero value means "no position",
// which is distinct from any real column.
type Position struct {
	col   int
	valid bool
}

// NoPosition marks a record-wide failure.
var NoPosition = Position{}

// At returns the 1-based position n.
func At(n int) Position { return Position{col: n, valid: true} }

// Get returns the column and whether one is set.
func (p Position) Get() (int, bool) { return p.col, p.valid }

func (p Position) String() string {
	if !p.valid {
		return ""
	}
	return strconv.Itoa(p.col)
}

// Diagnosis describes one failed check. It implements error so validators
// can return it directly; use errors.As to recover it.
type Diagnosis struct {
	Code      string
	CheckName string
	Message   string
	Field     Field
	Position  Position
}

func NewDiagnosis(code, checkName, message string, field Field, pos Position) *Diagnosis {
	return &Diagnosis{Code: code, CheckName: checkName, Message: message, Field: field, Position: pos}
}

// Error renders "[CODE] CheckName: field[:pos]: message".
func (d *Diagnosis) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Code, d.CheckName, d.Field)
	if col, ok := d.Position.Get(); ok {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(col))
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}
