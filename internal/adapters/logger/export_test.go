package logger

// Exported for white-box tests of the error renderer.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// ErrorEntry exposes errorEntry fields to tests.
func ErrorEntry(message string, metadata map[string]any) errorEntry {
	return errorEntry{message: message, metadata: metadata}
}

// Entry aliases errorEntry for building expected values.
type Entry = errorEntry
