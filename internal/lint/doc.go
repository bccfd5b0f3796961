// Package lint drives validators over a FASTQ file.
//
// A run reads the file once for pass 1: every stateless validator checks
// each record (fanned out to workers a batch at a time) and every stateful
// validator sees Insert. If any stateful validator has something left to
// verify, the file is read a second time in the same order for Verify.
// Stdin cannot be reopened, so its records are kept in memory for pass 2.
//
// Findings are reported in record order within a pass; pass 2 findings come
// after all pass 1 findings.
package lint
