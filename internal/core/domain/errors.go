package domain

import "go.trai.ch/zerr"

var (
	// ErrStoreCreateFailed is returned when the cache store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache store directory")

	// ErrStoreReadFailed is returned when a cache entry cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache entry")

	// ErrStoreWriteFailed is returned when a cache entry cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache entry")

	// ErrStoreMarshalFailed is returned when a cache entry cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal cache entry")

	// ErrStoreUnmarshalFailed is returned when a cache entry cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cache entry")

	// ErrStoreInvalidateFailed is returned when cache invalidation fails.
	ErrStoreInvalidateFailed = zerr.New("failed to invalidate cache entries")

	// ErrProjectNotFound is returned when a project directory does not exist.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrSessionNotFound is returned when a session transcript does not exist.
	ErrSessionNotFound = zerr.New("session transcript not found")

	// ErrTranscriptReadFailed is returned when a transcript cannot be read.
	ErrTranscriptReadFailed = zerr.New("failed to read transcript")

	// ErrModuleNotConfigured is returned when no evals module is configured.
	ErrModuleNotConfigured = zerr.New("no evals module configured")

	// ErrModuleReadFailed is returned when the evals module cannot be read.
	ErrModuleReadFailed = zerr.New("failed to read evals module")

	// ErrModuleParseFailed is returned when the evals module cannot be parsed.
	ErrModuleParseFailed = zerr.New("failed to parse evals module")

	// ErrModuleInterpretFailed is returned when the evals module cannot be interpreted.
	ErrModuleInterpretFailed = zerr.New("failed to interpret evals module")

	// ErrBadFunctionSignature is returned when a registered function has an unsupported signature.
	ErrBadFunctionSignature = zerr.New("unsupported function signature in evals module")

	// ErrItemNotFound is returned when a named item is not registered.
	ErrItemNotFound = zerr.New("item not registered")

	// ErrUnknownKind is returned when an item kind discriminator is invalid.
	ErrUnknownKind = zerr.New("unknown item kind")

	// ErrItemPanicked is returned when a user function panics during execution.
	ErrItemPanicked = zerr.New("item function panicked")

	// ErrConditionFailed is returned when a gating condition itself fails.
	ErrConditionFailed = zerr.New("condition evaluation failed")

	// ErrSchedulerStopped is returned when work is scheduled on a stopped scheduler.
	ErrSchedulerStopped = zerr.New("scheduler stopped")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUncacheableTranscript is returned when a transcript hash cannot be computed.
	ErrUncacheableTranscript = zerr.New("transcript hash unavailable")
)
