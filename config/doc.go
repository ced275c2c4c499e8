// Package config loads and validates benchmark run settings.
//
// Settings come from an optional TOML file decoded strictly — unknown
// keys are rejected, so a typoed knob fails loudly instead of silently
// running with a default. Default() carries the stock tunables: the four
// benchmark input sizes, five runs per size, the engines' size threshold
// and depth limit, and the two value ranges (the analysis benchmark draws
// from [1, 1e6], the standalone sorter pipeline from [1, 1000]).
//
// Errors:
//
//   - ErrUnknownKey: the TOML file contains a key Config does not declare.
//   - ErrInvalidConfig: a loaded or constructed value fails Validate.
package config
