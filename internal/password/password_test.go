package password

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	lockerrors "github.com/mkerring/envelock/internal/errors"
	logger "github.com/mkerring/envelock/internal/logging"
)

func TestValidate_TooShort(t *testing.T) {
	violations := Validate("weak", DefaultPolicy())
	if len(violations) == 0 {
		t.Fatal("Expected violations for a 4-character password")
	}

	found := false
	for _, v := range violations {
		if strings.Contains(string(v), "12 characters") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a length violation, got: %v", violations)
	}
}

func TestValidate_MissingSpecialOnly(t *testing.T) {
	violations := Validate("LongPassword123", DefaultPolicy())
	if len(violations) != 1 {
		t.Fatalf("Expected exactly 1 violation, got %d: %v", len(violations), violations)
	}
	if !strings.Contains(string(violations[0]), "special character") {
		t.Errorf("Expected the special-character violation, got: %v", violations[0])
	}
}

func TestValidate_Accepted(t *testing.T) {
	if violations := Validate("TestPass123!@#", DefaultPolicy()); len(violations) != 0 {
		t.Errorf("Expected no violations, got: %v", violations)
	}
}

func TestValidate_AllViolationsInOnePass(t *testing.T) {
	// Too short and missing upper, digit, special: four violations at once.
	violations := Validate("lowercase", DefaultPolicy())
	if len(violations) != 4 {
		t.Errorf("Expected 4 violations, got %d: %v", len(violations), violations)
	}
}

func TestValidate_TogglesOff(t *testing.T) {
	policy := Policy{MinLength: 4}
	if violations := Validate("abcd", policy); len(violations) != 0 {
		t.Errorf("Expected no violations with relaxed policy, got: %v", violations)
	}
}

func TestReject(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      error
	}{
		{"empty", "", lockerrors.ErrEmptySecret},
		{"whitespace only", "   \n ", lockerrors.ErrEmptySecret},
		{"contains tab", "Test\tPass123!", lockerrors.ErrTabInSecret},
		{"valid", "TestPass123!@#", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reject(tt.candidate); !errors.Is(got, tt.want) {
				t.Errorf("Reject(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

// scriptedPrompt replays a fixed sequence of entries.
func scriptedPrompt(entries ...string) PromptFunc {
	i := 0
	return func(prompt string) ([]byte, error) {
		if i >= len(entries) {
			return nil, fmt.Errorf("prompt called %d times, only %d entries scripted", i+1, len(entries))
		}
		entry := entries[i]
		i++
		return []byte(entry), nil
	}
}

func TestAcquire_FirstTry(t *testing.T) {
	prompt := scriptedPrompt("TestPass123!@#", "TestPass123!@#")

	secret, err := Acquire(prompt, DefaultPolicy(), logger.Logger{})
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if string(secret) != "TestPass123!@#" {
		t.Errorf("Unexpected secret: %q", secret)
	}
}

func TestAcquire_RetriesAfterWeakPassword(t *testing.T) {
	prompt := scriptedPrompt("weak", "TestPass123!@#", "TestPass123!@#")

	secret, err := Acquire(prompt, DefaultPolicy(), logger.Logger{})
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if string(secret) != "TestPass123!@#" {
		t.Errorf("Unexpected secret: %q", secret)
	}
}

func TestAcquire_RetriesAfterMismatch(t *testing.T) {
	prompt := scriptedPrompt(
		"TestPass123!@#", "SomethingElse1!",
		"TestPass123!@#", "TestPass123!@#",
	)

	secret, err := Acquire(prompt, DefaultPolicy(), logger.Logger{})
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if string(secret) != "TestPass123!@#" {
		t.Errorf("Unexpected secret: %q", secret)
	}
}

func TestAcquire_RejectsTab(t *testing.T) {
	prompt := scriptedPrompt("Bad\tPass123!@#", "TestPass123!@#", "TestPass123!@#")

	secret, err := Acquire(prompt, DefaultPolicy(), logger.Logger{})
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if string(secret) != "TestPass123!@#" {
		t.Errorf("Unexpected secret: %q", secret)
	}
}

func TestAcquire_AbortsOnPromptError(t *testing.T) {
	prompt := func(string) ([]byte, error) {
		return nil, errors.New("EOF")
	}

	_, err := Acquire(prompt, DefaultPolicy(), logger.Logger{})
	if !errors.Is(err, lockerrors.ErrSecretAborted) {
		t.Errorf("Expected ErrSecretAborted, got: %v", err)
	}
}

func TestAcquire_ExhaustsAttempts(t *testing.T) {
	prompt := func(string) ([]byte, error) {
		return []byte("weak"), nil
	}

	_, err := Acquire(prompt, DefaultPolicy(), logger.Logger{})
	if !errors.Is(err, lockerrors.ErrSecretAborted) {
		t.Errorf("Expected ErrSecretAborted after attempt budget, got: %v", err)
	}
}

func TestAcquireOnce(t *testing.T) {
	secret, err := AcquireOnce(scriptedPrompt("anything-goes"))
	if err != nil {
		t.Fatalf("AcquireOnce failed: %v", err)
	}
	if string(secret) != "anything-goes" {
		t.Errorf("Unexpected secret: %q", secret)
	}

	_, err = AcquireOnce(scriptedPrompt(""))
	if !errors.Is(err, lockerrors.ErrEmptySecret) {
		t.Errorf("Expected ErrEmptySecret, got: %v", err)
	}
}

func TestWipe(t *testing.T) {
	secret := []byte("TestPass123!@#")
	Wipe(secret)
	if !bytes.Equal(secret, make([]byte, len(secret))) {
		t.Errorf("Expected zeroed buffer, got %v", secret)
	}
}
