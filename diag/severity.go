package diag

// Severity tags a Diagnostic's importance. The "Internal" severities mark
// problems in the toolkit itself (or its caller's misuse of it) rather than
// in the source text being processed.
type Severity int

const (
	Note Severity = iota
	Info
	Warning
	Error
	FatalError
	InternalWarning
	InternalError
)

func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case FatalError:
		return "fatal error"
	case InternalWarning:
		return "internal warning"
	case InternalError:
		return "internal error"
	default:
		return "unknown severity"
	}
}
