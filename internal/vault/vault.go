package vault

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	lockerrors "github.com/mkerring/envelock/internal/errors"
)

// Artifact naming. Encrypted output is always a sibling of the original.
const (
	// Suffix is the reserved extension for encrypted artifacts.
	Suffix = ".enc"

	// tmpSuffix marks the scratch file used during decryption. Plaintext is
	// materialized here in full before the atomic rename onto the target.
	tmpSuffix = ".tmp_decrypt"
)

// saltMagic is the OpenSSL salted-container marker preceding the salt.
const saltMagic = "Salted__"

// Config fixes the cipher parameters. Together they form a compatibility
// contract: output is readable by
//
//	openssl enc -d -aes-256-cbc -pbkdf2 -iter 100000 -in file.enc
//
// Changing any of them breaks decryption of previously produced artifacts.
type Config struct {
	// Iterations is the PBKDF2 iteration count.
	Iterations int

	// KeyLen is the AES key length in bytes (32 for AES-256).
	KeyLen int

	// SaltLen is the length of the random salt embedded in each artifact.
	SaltLen int
}

// DefaultIterations is the PBKDF2 iteration count used for new artifacts.
const DefaultIterations = 100_000

// DefaultConfig returns the fixed production cipher configuration:
// AES-256-CBC with key and IV derived via PBKDF2-SHA256.
func DefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		KeyLen:     32,
		SaltLen:    8,
	}
}

// deriveKeyIV stretches the password into an AES key and CBC IV, matching
// OpenSSL's -pbkdf2 key material layout (key followed by IV).
func (c Config) deriveKeyIV(password, salt []byte) (key, iv []byte) {
	material := pbkdf2.Key(password, salt, c.Iterations, c.KeyLen+aes.BlockSize, sha256.New)
	return material[:c.KeyLen], material[c.KeyLen:]
}

// EncryptFile encrypts the file at path into a sibling <path>.enc,
// overwriting any existing artifact. The whole file is read into memory.
// On failure the partially written artifact is removed; no corrupt .enc
// file survives a failed encryption.
func (c Config) EncryptFile(path string, password []byte) (string, error) {
	plaintext, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", lockerrors.ErrEncryptFailed, path, err)
	}

	salt := make([]byte, c.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("%w: generating salt: %v", lockerrors.ErrEncryptFailed, err)
	}

	key, iv := c.deriveKeyIV(password, salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", lockerrors.ErrEncryptFailed, err)
	}

	padded := padPKCS7(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	out := make([]byte, 0, len(saltMagic)+len(salt)+len(ciphertext))
	out = append(out, saltMagic...)
	out = append(out, salt...)
	out = append(out, ciphertext...)

	outputPath := path + Suffix
	if err := os.WriteFile(outputPath, out, 0600); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("%w: writing %s: %v", lockerrors.ErrEncryptFailed, outputPath, err)
	}

	return outputPath, nil
}

// DecryptFile decrypts the artifact at path (which must end in .enc) back
// to its original sibling path. Plaintext is written to a temporary file
// and renamed into place only once fully materialized, so a pre-existing
// plaintext file is never touched by a failed decryption.
//
// CBC offers no authentication: a wrong password and corrupted ciphertext
// both surface as a padding failure and are reported as one ambiguous
// ErrDecryptFailed.
func (c Config) DecryptFile(path string, password []byte) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", lockerrors.ErrDecryptFailed, path, err)
	}

	header := len(saltMagic) + c.SaltLen
	if len(data) < header || string(data[:len(saltMagic)]) != saltMagic {
		return "", fmt.Errorf("%w: %s", lockerrors.ErrDecryptFailed, path)
	}
	salt := data[len(saltMagic):header]
	ciphertext := data[header:]

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: %s", lockerrors.ErrDecryptFailed, path)
	}

	key, iv := c.deriveKeyIV(password, salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", lockerrors.ErrDecryptFailed, err)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, ok := unpadPKCS7(padded, aes.BlockSize)
	if !ok {
		return "", fmt.Errorf("%w: %s", lockerrors.ErrDecryptFailed, path)
	}

	targetPath := strings.TrimSuffix(path, Suffix)
	tmpPath := targetPath + tmpSuffix

	// #nosec G306 -- restored plaintext should be editable by the user.
	if err := os.WriteFile(tmpPath, plaintext, 0644); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: writing %s: %v", lockerrors.ErrDecryptFailed, tmpPath, err)
	}
	if err := os.Rename(tmpPath, targetPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: renaming %s: %v", lockerrors.ErrDecryptFailed, tmpPath, err)
	}

	return targetPath, nil
}

// IsEncrypted reports whether the basename carries the reserved artifact
// suffix.
func IsEncrypted(path string) bool {
	return strings.HasSuffix(path, Suffix)
}

// padPKCS7 appends PKCS#7 padding up to the next block boundary. Input
// already on a boundary gets a full block of padding.
func padPKCS7(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

// unpadPKCS7 strips and verifies PKCS#7 padding. The check is what detects
// a wrong password in CBC mode, so a false return is deliberately
// uninformative.
func unpadPKCS7(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}
