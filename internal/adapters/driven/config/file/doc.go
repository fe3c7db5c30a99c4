// Package file provides the TOML-backed ConfigStore adapter.
// Configuration lives in ~/.jobfit/config.toml with nested tables
// exposed as dot-notation keys.
package file
