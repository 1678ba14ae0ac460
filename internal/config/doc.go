// Package config defines the format-agnostic settings model of the
// application and the Loader interface implemented by concrete settings-file
// formats, such as the HCL loader in internal/hcl.
//
// Every field of Model is optional. Command-line flags take precedence over
// the model, and the model takes precedence over built-in defaults.
package config
