// Package mas holds the error kinds shared by the alignment and homology
// statistics engines. Callers can tell a bad setting from a bad input file
// from an input that is simply too thin to work with.
package mas

import "fmt"

// ConfigError is returned for unusable settings, such as an unknown
// substitution matrix name or a malformed matrix table.
type ConfigError struct {
	Msg string
}

// Error returns the reason the configuration was rejected.
func (e *ConfigError) Error() string { return e.Msg }

// Configf creates a ConfigError with a formatted message.
func Configf(format string, args ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// FormatError is returned when an input file or sequence cannot be parsed.
type FormatError struct {
	Msg string
}

// Error returns the parse failure description.
func (e *FormatError) Error() string { return e.Msg }

// Formatf creates a FormatError with a formatted message.
func Formatf(format string, args ...interface{}) error {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

// DataError is returned when the input parsed fine but does not carry
// enough usable data, eg fewer than two sequences or no hits surviving
// the homology threshold.
type DataError struct {
	Msg string
}

// Error returns the data shortage description.
func (e *DataError) Error() string { return e.Msg }

// Dataf creates a DataError with a formatted message.
func Dataf(format string, args ...interface{}) error {
	return &DataError{Msg: fmt.Sprintf(format, args...)}
}
