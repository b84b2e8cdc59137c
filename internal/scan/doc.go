// Package scan discovers candidate files for encryption and decryption.
//
// Discovery walks the whole target tree, matches basenames against the
// pattern set, and never selects an encrypted artifact as plaintext input.
// The returned selection is deduplicated and path-sorted so summaries are
// reproducible run to run.
package scan
