package session

import "time"

// Config carries the ambient knobs a running client is constructed
// from: the server URL, reconnect backoff bounds, the resize-debounce
// interval, and a debug flag gating verbose logging (SPEC_FULL.md
// AMBIENT STACK). Mirrors the teacher's flat config-struct-plus-
// defaults idiom rather than a builder.
type Config struct {
	ServerURL              string
	ReconnectBaseDelay     time.Duration
	ReconnectMaxDelay      time.Duration
	ResizeDebounceInterval time.Duration
	Debug                  bool
}

// DefaultConfig returns the spec-mandated defaults (250ms base / 5000ms
// cap reconnect backoff, 333ms resize debounce) for the given ServerURL.
func DefaultConfig(serverURL string) Config {
	return Config{
		ServerURL:              serverURL,
		ReconnectBaseDelay:     reconnectBaseDelay,
		ReconnectMaxDelay:      reconnectMaxDelay,
		ResizeDebounceInterval: resizeDebounceInterval,
		Debug:                  false,
	}
}
