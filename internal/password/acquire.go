package password

import (
	"fmt"

	lockerrors "github.com/mkerring/envelock/internal/errors"
	logger "github.com/mkerring/envelock/internal/logging"
	"github.com/mkerring/envelock/internal/ui"
)

// PromptFunc reads one secret from the user without echo. The cmd layer
// passes a terminal reader; tests pass a canned sequence.
type PromptFunc func(prompt string) ([]byte, error)

// maxAttempts bounds the acquisition loop so a detached stdin cannot spin
// forever.
const maxAttempts = 5

// Acquire runs the interactive loop for a new encryption password: prompt,
// hard-reject checks, policy validation with the full violation list,
// then a confirmation prompt compared for exact equality. Any failure
// restarts the loop; only a validated, confirmed secret is returned.
//
// Returns ErrSecretAborted when the prompter fails or the attempt budget
// is exhausted.
func Acquire(prompt PromptFunc, policy Policy, log logger.Logger) ([]byte, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		secret, err := prompt("Enter encryption password: ")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", lockerrors.ErrSecretAborted, err)
		}

		if err := Reject(string(secret)); err != nil {
			Wipe(secret)
			log.WarnfAlways("%v", err)
			continue
		}

		if violations := Validate(string(secret), policy); len(violations) > 0 {
			Wipe(secret)
			log.WarnfAlways("Password does not meet the policy:")
			for _, v := range violations {
				fmt.Println("  " + ui.Warning.Sprint("- "+string(v)))
			}
			continue
		}

		confirm, err := prompt("Confirm encryption password: ")
		if err != nil {
			Wipe(secret)
			return nil, fmt.Errorf("%w: %v", lockerrors.ErrSecretAborted, err)
		}

		if string(secret) != string(confirm) {
			Wipe(secret)
			Wipe(confirm)
			log.WarnfAlways("%v", lockerrors.ErrSecretMismatch)
			continue
		}

		Wipe(confirm)
		return secret, nil
	}

	return nil, fmt.Errorf("%w: too many attempts", lockerrors.ErrSecretAborted)
}

// AcquireOnce reads a single password without validation. Decrypt mode
// uses it: the secret unlocks existing data, so strength rules would only
// lock the user out of their own files.
func AcquireOnce(prompt PromptFunc) ([]byte, error) {
	secret, err := prompt("Enter decryption password: ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lockerrors.ErrSecretAborted, err)
	}
	if len(secret) == 0 {
		return nil, lockerrors.ErrEmptySecret
	}
	return secret, nil
}

// Wipe zeroes a secret buffer once it is no longer needed. Best effort:
// the runtime may have copied the bytes, but there is no reason to keep
// the canonical copy around.
func Wipe(secret []byte) {
	for i := range secret {
		secret[i] = 0
	}
}
