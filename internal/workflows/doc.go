// Package workflows orchestrates the encrypt, decrypt, init, and status
// operations behind the CLI commands.
//
// Batches run in two phases. Planning (PlanEncrypt, PlanDecrypt) resolves
// the file selection and fails fast on configuration and discovery errors;
// no password is requested until a non-empty plan exists. Running applies
// the cryptographic transform per file with failure isolation: one file's
// error is recorded in the Summary and the batch continues.
//
// The cmd layer owns everything interactive (prompts, confirmation,
// spinners) and everything process-level (exit codes).
package workflows
