// Package vault implements password-based file encryption and decryption.
//
// # Artifact Format
//
// Artifacts use the OpenSSL salted container so they can be recovered
// without envelock:
//
//	"Salted__" || 8-byte random salt || AES-256-CBC ciphertext
//
// Key and IV are derived from the password and salt with PBKDF2-SHA256 at
// 100,000 iterations, the same material layout as
// `openssl enc -aes-256-cbc -pbkdf2 -iter 100000`. Plaintext is padded
// with PKCS#7. These parameters are a compatibility contract exposed as
// named constants on Config; changing them orphans existing artifacts.
//
// # Atomicity
//
// Encryption writes <path>.enc directly and removes it on failure, so no
// partial artifact survives. Decryption writes to a temporary sibling and
// renames it onto the target only after the plaintext is fully written,
// so a failed decryption never disturbs an existing plaintext file.
//
// # Security Considerations
//
// CBC mode carries no authentication tag. A wrong password and corrupted
// ciphertext both fail the padding check and are indistinguishable; the
// error text preserves that ambiguity on purpose. Files are processed
// whole in memory, which matches the intended use on small credential
// files, not bulk data.
package vault
