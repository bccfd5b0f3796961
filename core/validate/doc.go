// Package validate holds the record validation contracts and the validators
// built on them.
//
// Two execution protocols exist and are kept as separate interfaces so a
// driver can tell statically which one a validator needs:
//
//   - Validator: single pass. Validate is a pure function of one record and
//     may run concurrently over distinct records.
//   - StatefulValidator: two passes. Insert is called for every record of the
//     run, in order; only then is Verify called for every record, in the same
//     order.
//
// Validators never abort a run. A failing check returns a *Diagnosis; what to
// do with it (stop, collect, filter by Severity) is the caller's decision.
//
// The package depends only on core/fastq for the Record shape; it never
// imports the CLI, writers or driver.
package validate
