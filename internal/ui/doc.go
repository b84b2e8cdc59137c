// Package ui provides semantic text formatting for CLI output.
//
// Formatters carry both a color and a plain-text fallback so output stays
// readable when color is disabled via NO_COLOR or terminal detection.
package ui
