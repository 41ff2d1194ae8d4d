package utils

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short URL-safe identifier for non-primary-key
// uses (export object names, share codes).
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// NewInvoiceNumber builds a human-readable invoice number, e.g.
// INV-2026-Xq3fK9a.
func NewInvoiceNumber(now time.Time) string {
	suffix, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		suffix = fmt.Sprintf("%d", now.UnixNano()%1_000_000)
	}
	return fmt.Sprintf("INV-%d-%s", now.Year(), suffix)
}
