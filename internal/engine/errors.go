package engine

import "errors"

// Failure taxonomy of the pipeline. Everything is caught at the Translate
// boundary and flattened into the call's Result; only the tagged
// developer API lets these escape as errors.
var (
	ErrBackendDisabled = errors.New("translation backend disabled")
	ErrBackendNotReady = errors.New("translation backend not ready")
	ErrEncode          = errors.New("encode failed")
	ErrBatchCall       = errors.New("batch translation call failed")
	ErrDecode          = errors.New("decode failed")
)
