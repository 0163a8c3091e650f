package diag

// Buffer is an append-only list of severity-tagged diagnostics, indexable
// by severity count. It is the single accumulator threaded explicitly
// through a compilation's lexing and parsing stages; the toolkit holds no
// global state of its own.
type Buffer struct {
	messages []Diagnostic
	counts   map[Severity]int
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{counts: make(map[Severity]int)}
}

// Emit appends d to the buffer.
func (b *Buffer) Emit(d Diagnostic) {
	b.messages = append(b.messages, d)
	b.counts[d.Severity]++
}

// CountWithSeverity returns how many diagnostics of severity s have been
// emitted so far.
func (b *Buffer) CountWithSeverity(s Severity) int {
	return b.counts[s]
}

// Messages returns a read-only view of every diagnostic emitted so far, in
// emission order.
func (b *Buffer) Messages() []Diagnostic {
	out := make([]Diagnostic, len(b.messages))
	copy(out, b.messages)
	return out
}

// HasErrors returns whether any diagnostic at Error severity or worse
// (Error, FatalError, InternalError) has been emitted.
func (b *Buffer) HasErrors() bool {
	return b.CountWithSeverity(Error) > 0 ||
		b.CountWithSeverity(FatalError) > 0 ||
		b.CountWithSeverity(InternalError) > 0
}
