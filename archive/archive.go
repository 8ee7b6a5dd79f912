// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package archive validates and extracts uploaded source-code archives.
package archive

import (
	"archive/zip"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidZip   = errors.New("invalid zip file")
	ErrEncryptedZip = errors.New("encrypted zip file")
)

const digestBlockSize = 4096

// ValidateZip checks that the file is a well-formed, unencrypted zip
// archive. Encryption is detected via bit 0 of the per-entry flags.
func ValidateZip(path string) error {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return ErrInvalidZip
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.Flags&0x1 != 0 {
			return ErrEncryptedZip
		}
	}
	return nil
}

// Sha256Sum computes the hex encoded SHA-256 digest of a file, reading it
// in fixed-size blocks.
func Sha256Sum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hash := sha256.New()
	buf := make([]byte, digestBlockSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			hash.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// Extract unpacks a validated zip archive below dest. Entries escaping the
// destination directory are rejected.
func Extract(path, dest string) error {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return ErrInvalidZip
	}
	defer reader.Close()

	for _, file := range reader.File {
		if err := extractFile(file, dest); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(file *zip.File, dest string) error {
	target := filepath.Join(dest, file.Name) // nolint:gosec // checked right below
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return errors.Errorf("illegal file path in archive: %s", file.Name)
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.Mode())
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src) // nolint:gosec // trusted size, validated upload
	return err
}
