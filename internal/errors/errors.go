package errors

import "errors"

// Configuration errors indicate problems with the pattern file.
var (
	// ErrPatternFileNotFound indicates the pattern file is missing from the target directory.
	ErrPatternFileNotFound = errors.New("pattern file not found")

	// ErrNoIncludeRules indicates the pattern file contains no include rules.
	ErrNoIncludeRules = errors.New("pattern file contains no include rules")

	// ErrPatternFileExists indicates an init would overwrite an existing pattern file.
	ErrPatternFileExists = errors.New("pattern file already exists")
)

// Discovery errors indicate problems locating candidate files.
var (
	// ErrDirectoryNotFound indicates the target directory does not exist or is not a directory.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrNoFilesFound indicates no files matched the configured patterns.
	ErrNoFilesFound = errors.New("no matching files found")
)

// Password errors indicate problems with secret acquisition or validation.
var (
	// ErrEmptySecret indicates the entered secret was empty or all whitespace.
	ErrEmptySecret = errors.New("password must not be empty")

	// ErrTabInSecret indicates the entered secret contains a tab character,
	// which cannot be passed safely to the cipher backend.
	ErrTabInSecret = errors.New("password must not contain tab characters")

	// ErrSecretMismatch indicates the confirmation entry did not match.
	ErrSecretMismatch = errors.New("passwords do not match")

	// ErrSecretAborted indicates the user aborted secret entry.
	ErrSecretAborted = errors.New("password entry aborted")
)

// Cryptographic errors indicate failures during encryption or decryption.
var (
	// ErrEncryptFailed indicates file encryption failed.
	ErrEncryptFailed = errors.New("failed to encrypt file")

	// ErrDecryptFailed indicates file decryption failed. CBC mode carries no
	// authentication tag, so a wrong password and corrupted ciphertext are
	// indistinguishable here.
	ErrDecryptFailed = errors.New("failed to decrypt: wrong password or corrupted input")

	// ErrPartialDecrypt indicates at least one file in a decrypt batch failed.
	ErrPartialDecrypt = errors.New("failed to decrypt one or more files")
)
