// Package utils provides terminal helpers shared across commands:
// hidden passphrase input, yes/no confirmation, and path-list formatting.
package utils
