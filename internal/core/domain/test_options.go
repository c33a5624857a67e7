package domain

// TestOptions parameterizes the wrapper's test operation.
type TestOptions struct {
	// Verbose trades parallel, minimally-captured execution for
	// single-threaded, fully-captured output.
	Verbose bool
	// Args are caller-supplied trailing arguments, appended after every
	// fixed flag so they win conflicting test-selection filters.
	Args []string
}
