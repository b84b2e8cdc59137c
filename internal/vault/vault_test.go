package vault

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	lockerrors "github.com/mkerring/envelock/internal/errors"
)

// writeTestFile is a helper to write test files with 0644 permissions.
// #nosec G306 -- Test files are temporary and don't contain sensitive data.
func writeTestFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.WriteFile(path, content, 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := DefaultConfig()
	password := []byte("TestPass123!@#")

	original := []byte("API_KEY=abc123\nDB_PASSWORD=hunter2\n")
	source := filepath.Join(tmpDir, "credentials.json")
	writeTestFile(t, source, original)

	encPath, err := cfg.EncryptFile(source, password)
	if err != nil {
		t.Fatalf("EncryptFile failed: %v", err)
	}
	if encPath != source+Suffix {
		t.Errorf("Expected output %s, got %s", source+Suffix, encPath)
	}

	ciphertext, err := os.ReadFile(encPath)
	if err != nil {
		t.Fatalf("Failed to read artifact: %v", err)
	}
	if !bytes.HasPrefix(ciphertext, []byte("Salted__")) {
		t.Error("Artifact should start with the OpenSSL salt magic")
	}
	if bytes.Contains(ciphertext, original) {
		t.Error("Artifact must not contain the plaintext")
	}

	// Remove the original so decryption has to recreate it.
	if err := os.Remove(source); err != nil {
		t.Fatalf("Failed to remove original: %v", err)
	}

	decPath, err := cfg.DecryptFile(encPath, password)
	if err != nil {
		t.Fatalf("DecryptFile failed: %v", err)
	}
	if decPath != source {
		t.Errorf("Expected target %s, got %s", source, decPath)
	}

	restored, err := os.ReadFile(source)
	if err != nil {
		t.Fatalf("Failed to read restored file: %v", err)
	}
	if !bytes.Equal(restored, original) {
		t.Errorf("Round trip mismatch: got %q, want %q", restored, original)
	}
}

func TestEncryptEmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := DefaultConfig()
	password := []byte("TestPass123!@#")

	source := filepath.Join(tmpDir, "empty.env")
	writeTestFile(t, source, nil)

	encPath, err := cfg.EncryptFile(source, password)
	if err != nil {
		t.Fatalf("EncryptFile failed: %v", err)
	}
	os.Remove(source)

	if _, err := cfg.DecryptFile(encPath, password); err != nil {
		t.Fatalf("DecryptFile failed: %v", err)
	}
	restored, err := os.ReadFile(source)
	if err != nil {
		t.Fatalf("Failed to read restored file: %v", err)
	}
	if len(restored) != 0 {
		t.Errorf("Expected empty plaintext, got %d bytes", len(restored))
	}
}

func TestDecryptWrongPasswordLeavesTargetUntouched(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := DefaultConfig()

	original := []byte("SECRET=value\n")
	source := filepath.Join(tmpDir, "secrets.yaml")
	writeTestFile(t, source, original)

	encPath, err := cfg.EncryptFile(source, []byte("TestPass123!@#"))
	if err != nil {
		t.Fatalf("EncryptFile failed: %v", err)
	}

	// The pre-existing plaintext must survive a failed decryption.
	preExisting := []byte("locally edited, not yet re-encrypted\n")
	writeTestFile(t, source, preExisting)

	_, err = cfg.DecryptFile(encPath, []byte("WrongPass456$%^"))
	if err == nil {
		t.Fatal("Expected decryption with the wrong password to fail")
	}
	if !errors.Is(err, lockerrors.ErrDecryptFailed) {
		t.Errorf("Expected ErrDecryptFailed, got: %v", err)
	}

	after, err := os.ReadFile(source)
	if err != nil {
		t.Fatalf("Failed to read target: %v", err)
	}
	if !bytes.Equal(after, preExisting) {
		t.Errorf("Target was modified by failed decryption: got %q", after)
	}

	// No scratch file may be left behind.
	if _, err := os.Stat(source + tmpSuffix); !os.IsNotExist(err) {
		t.Errorf("Temporary file %s was left behind", source+tmpSuffix)
	}
}

func TestDecryptCorruptedArtifact(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := DefaultConfig()
	password := []byte("TestPass123!@#")

	source := filepath.Join(tmpDir, "token.env")
	writeTestFile(t, source, []byte("TOKEN=xyz\n"))

	encPath, err := cfg.EncryptFile(source, password)
	if err != nil {
		t.Fatalf("EncryptFile failed: %v", err)
	}

	// Drop the last byte so the ciphertext is no longer block-aligned.
	data, err := os.ReadFile(encPath)
	if err != nil {
		t.Fatalf("Failed to read artifact: %v", err)
	}
	writeTestFile(t, encPath, data[:len(data)-1])

	_, err = cfg.DecryptFile(encPath, password)
	if !errors.Is(err, lockerrors.ErrDecryptFailed) {
		t.Errorf("Expected ErrDecryptFailed for corrupted artifact, got: %v", err)
	}
}

func TestDecryptTruncatedArtifact(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := DefaultConfig()

	for name, content := range map[string][]byte{
		"empty.enc":      {},
		"no-magic.enc":   []byte("not an envelock artifact"),
		"magic-only.enc": []byte("Salted__"),
		"ragged.enc":     []byte("Salted__12345678ragged"),
	} {
		path := filepath.Join(tmpDir, name)
		writeTestFile(t, path, content)

		_, err := cfg.DecryptFile(path, []byte("TestPass123!@#"))
		if !errors.Is(err, lockerrors.ErrDecryptFailed) {
			t.Errorf("%s: expected ErrDecryptFailed, got: %v", name, err)
		}
	}
}

func TestEncryptOverwritesExistingArtifact(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := DefaultConfig()
	password := []byte("TestPass123!@#")

	source := filepath.Join(tmpDir, "credentials.json")
	writeTestFile(t, source, []byte("v1"))

	encPath, err := cfg.EncryptFile(source, password)
	if err != nil {
		t.Fatalf("First EncryptFile failed: %v", err)
	}
	first, _ := os.ReadFile(encPath)

	writeTestFile(t, source, []byte("v2"))
	if _, err := cfg.EncryptFile(source, password); err != nil {
		t.Fatalf("Second EncryptFile failed: %v", err)
	}
	second, _ := os.ReadFile(encPath)

	if bytes.Equal(first, second) {
		t.Error("Expected fresh salt to produce a different artifact")
	}

	os.Remove(source)
	if _, err := cfg.DecryptFile(encPath, password); err != nil {
		t.Fatalf("DecryptFile after overwrite failed: %v", err)
	}
	restored, _ := os.ReadFile(source)
	if !bytes.Equal(restored, []byte("v2")) {
		t.Errorf("Expected v2 after overwrite, got %q", restored)
	}
}

func TestEncryptMissingSource(t *testing.T) {
	cfg := DefaultConfig()
	_, err := cfg.EncryptFile(filepath.Join(t.TempDir(), "nope.env"), []byte("TestPass123!@#"))
	if !errors.Is(err, lockerrors.ErrEncryptFailed) {
		t.Errorf("Expected ErrEncryptFailed, got: %v", err)
	}
}

func TestIsEncrypted(t *testing.T) {
	if !IsEncrypted("credentials.json.enc") {
		t.Error("Expected .enc path to be recognized")
	}
	if IsEncrypted("credentials.json") {
		t.Error("Expected plain path to not be recognized")
	}
}

func TestPKCS7(t *testing.T) {
	for length := 0; length <= 33; length++ {
		data := bytes.Repeat([]byte{0xAB}, length)
		padded := padPKCS7(data, 16)
		if len(padded)%16 != 0 {
			t.Fatalf("len %d: padded length %d not a block multiple", length, len(padded))
		}
		unpadded, ok := unpadPKCS7(padded, 16)
		if !ok {
			t.Fatalf("len %d: unpad rejected valid padding", length)
		}
		if !bytes.Equal(unpadded, data) {
			t.Fatalf("len %d: unpad mismatch", length)
		}
	}

	if _, ok := unpadPKCS7([]byte{}, 16); ok {
		t.Error("Expected empty input to fail unpadding")
	}
	bad := bytes.Repeat([]byte{0x11}, 16)
	bad[15] = 0x00
	if _, ok := unpadPKCS7(bad, 16); ok {
		t.Error("Expected zero padding byte to fail unpadding")
	}
}
