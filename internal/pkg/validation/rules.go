package validation

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Student public ID pattern - "SH" followed by 6 digits
	StudentIDPattern = `^SH\d{6}$`
)

// MaxAttachmentBytes is the decoded size limit for base64 attachment fields.
const MaxAttachmentBytes = 2 * 1024 * 1024

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email     *regexp.Regexp
	StudentID *regexp.Regexp
}{
	Email:     regexp.MustCompile(EmailPattern),
	StudentID: regexp.MustCompile(StudentIDPattern),
}

// IsValidEmail reports whether the string looks like an email address.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.TrimSpace(email))
}

// CheckAttachmentSize validates that a base64-encoded attachment decodes to at
// most MaxAttachmentBytes. The limit applies to decoded bytes, not the encoded
// string. Data-URI prefixes ("data:image/png;base64,....") are stripped first.
func CheckAttachmentSize(encoded, label string) error {
	if encoded == "" {
		return nil
	}

	payload := encoded
	if idx := strings.IndexByte(payload, ','); idx >= 0 && strings.Contains(payload[:idx], ";base64") {
		payload = payload[idx+1:]
	}

	decoded := base64.StdEncoding.DecodedLen(len(payload))
	// DecodedLen overestimates by up to two bytes of padding; decode for the
	// exact length only when the estimate is near the limit.
	if decoded > MaxAttachmentBytes+2 {
		return fmt.Errorf("%s must be at most 2MB", label)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("%s is not valid base64 data", label)
	}
	if len(raw) > MaxAttachmentBytes {
		return fmt.Errorf("%s must be at most 2MB", label)
	}
	return nil
}
