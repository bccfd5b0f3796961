package validate

import "fqlint/core/fastq"

// Descriptor is the identity shared by both validator kinds.
type Descriptor interface {
	// Code is a short identifier, unique across validators (e.g. "S002").
	Code() string
	Name() string
	Level() Severity
}

// Validator is a single-pass check decidable from one record alone.
// Validate returns nil or the first *Diagnosis found, scanning fields in
// record order and bytes left to right. It must not keep state between calls.
type Validator interface {
	Descriptor
	Validate(r *fastq.Record) error
}

// StatefulValidator is a two-pass check. Insert is pass 1 and sees every
// record of the run; Verify is pass 2 and must visit records in the same
// order. Verify may update internal state. Calling Verify before pass 1 has
// finished can miss failures but never reports a false one.
type StatefulValidator interface {
	Descriptor
	Insert(r *fastq.Record)
	Verify(r *fastq.Record) error
	// IsEmpty reports that pass 1 left nothing to verify, so pass 2 can be
	// skipped entirely.
	IsEmpty() bool
}
