// Package internal contains shared infrastructure for scrollkit: the
// structured loggers used by every package.
// Types and functions in this package are not part of the public API.
package internal
