package password

import (
	"fmt"
	"strings"

	lockerrors "github.com/mkerring/envelock/internal/errors"
)

// Policy describes the strength requirements for a new encryption
// password. Every requirement can be toggled independently; the zero value
// enforces nothing.
type Policy struct {
	MinLength      int
	RequireLower   bool
	RequireUpper   bool
	RequireDigit   bool
	RequireSpecial bool
}

// DefaultPolicy returns the policy applied when encrypting: at least 12
// characters drawn from all four character classes.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:      12,
		RequireLower:   true,
		RequireUpper:   true,
		RequireDigit:   true,
		RequireSpecial: true,
	}
}

// Violation describes one unmet policy requirement.
type Violation string

// Validate checks candidate against the policy and returns every violated
// requirement in one pass, so the user sees the complete remediation list
// rather than one complaint per attempt.
func Validate(candidate string, policy Policy) []Violation {
	var violations []Violation

	if policy.MinLength > 0 && len(candidate) < policy.MinLength {
		violations = append(violations,
			Violation(fmt.Sprintf("must be at least %d characters long", policy.MinLength)))
	}

	// Character classes are ASCII by contract: anything outside
	// [A-Za-z0-9] counts as special.
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range candidate {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if policy.RequireLower && !hasLower {
		violations = append(violations, "must contain at least one lowercase letter")
	}
	if policy.RequireUpper && !hasUpper {
		violations = append(violations, "must contain at least one uppercase letter")
	}
	if policy.RequireDigit && !hasDigit {
		violations = append(violations, "must contain at least one digit")
	}
	if policy.RequireSpecial && !hasSpecial {
		violations = append(violations, "must contain at least one special character")
	}

	return violations
}

// Reject applies the hard rejections that no policy can disable: an empty
// or all-whitespace secret, and a tab character. Tabs break the secret
// hand-off to the cipher backend and get their own distinct error so the
// user isn't left guessing.
func Reject(candidate string) error {
	if strings.TrimSpace(candidate) == "" {
		return lockerrors.ErrEmptySecret
	}
	if strings.ContainsRune(candidate, '\t') {
		return lockerrors.ErrTabInSecret
	}
	return nil
}
