package patterns

// DefaultContent is the pattern file scaffold written by envelock init.
// The rules cover the usual suspects: credential stores, environment files,
// and private key material.
const DefaultContent = `# Sensitive file patterns for envelock.
# One glob per line, matched against file basenames.
# Lines starting with '!' exclude matches; '#' starts a comment.

credentials.*
secrets.*
*.env
.env*
*.pem
*.key
*.p12
*.pfx
id_rsa
id_ed25519

# Public halves of key pairs are safe to commit as-is.
!*.pub
`
