package main

// Exit codes shared by all commands.
const (
	ExitSuccess       = 0 // Success
	ExitError         = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError   = 2 // Configuration error (missing repository, invalid config)
	ExitProviderError = 3 // Embedding provider not available
	ExitCorpusError   = 4 // Corpus missing or malformed
	ExitModelNotFound = 5 // Embedding model not found
	ExitIndexStale    = 6 // Vector index is stale or missing
)
