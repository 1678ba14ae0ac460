// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the comparison pipeline, decoupled from any
// specific entrypoint like a CLI.
//
// A run fetches the Pontoon locales and the repository locales, computes the
// repository locales Pontoon does not track, and writes them as a report. The
// report is only written once both fetches have succeeded.
package app
