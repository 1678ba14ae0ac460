// Package locales holds the pure parts of the comparison: the ignore set that
// decides which repository directories are not locale folders, and the differ
// that computes which repository locales Pontoon does not know about yet.
package locales
