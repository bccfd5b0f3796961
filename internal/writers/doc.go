// Package writers turns lint findings into serialized reports.
//
// Design:
//   - Writers own all presentation knowledge (text lines, JSON/JSONL, msgpack).
//   - The lint driver stays presentation-free; it only emits Findings.
//   - JSON/JSONL/msgpack go through pkg/api (v1) for a stable wire format.
package writers
