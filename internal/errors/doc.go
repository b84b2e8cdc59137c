// Package errors defines sentinel errors shared across envelock.
//
// Errors are grouped by category: configuration, discovery, password, and
// cryptographic. Callers wrap these with fmt.Errorf("%w: ...") to add
// context and match them with errors.Is at the CLI boundary, where each
// category maps to a user-facing message and exit code.
package errors
