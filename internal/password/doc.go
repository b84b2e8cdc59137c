// Package password validates and acquires encryption passwords.
//
// Validation separates two concerns: Policy holds the toggleable strength
// requirements (length and character classes) and reports every violation
// in a single pass, while Reject covers the hard failures no policy can
// waive (empty secrets and tab characters).
//
// Acquire drives the interactive prompt-validate-confirm loop used by
// encrypt mode; decrypt mode uses AcquireOnce, a single unvalidated read,
// since it is unlocking existing data rather than minting a new secret.
package password
