// core/fastq/record.go
package fastq

// Record is one four-line FASTQ entry. Lines are held verbatim, without their
// terminators. Consumers treat a Record as read-only; the accessors hand out
// the underlying slices.
type Record struct {
	name      []byte
	sequence  []byte
	separator []byte
	quality   []byte
}

// NewRecord builds a Record from string fields (handy in tests and generators).
func NewRecord(name, sequence, separator, quality string) *Record {
	return &Record{
		name:      []byte(name),
		sequence:  []byte(sequence),
		separator: []byte(separator),
		quality:   []byte(quality),
	}
}

// FromBytes builds a Record that takes ownership of the given slices.
func FromBytes(name, sequence, separator, quality []byte) *Record {
	return &Record{name: name, sequence: sequence, separator: separator, quality: quality}
}

func (r *Record) Name() []byte      { return r.name }
func (r *Record) Sequence() []byte  { return r.sequence }
func (r *Record) Separator() []byte { return r.separator }
func (r *Record) Quality() []byte   { return r.quality }

// Clone returns a deep copy.
func (r *Record) Clone() *Record {
	return &Record{
		name:      append([]byte(nil), r.name...),
		sequence:  append([]byte(nil), r.sequence...),
		separator: append([]byte(nil), r.separator...),
		quality:   append([]byte(nil), r.quality...),
	}
}
