package validation

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"hr@acme.com",
		"first.last+tag@sub.domain.co.in",
		"  padded@mail.com  ",
	}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@missing-local.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestStudentIDPattern(t *testing.T) {
	if !CompiledPatterns.StudentID.MatchString("SH123456") {
		t.Error("SH123456 should match")
	}
	for _, id := range []string{"SH12345", "SH1234567", "sh123456", "XX123456"} {
		if CompiledPatterns.StudentID.MatchString(id) {
			t.Errorf("%q should not match", id)
		}
	}
}

func TestCheckAttachmentSizeEmpty(t *testing.T) {
	if err := CheckAttachmentSize("", "resume"); err != nil {
		t.Errorf("empty attachment should pass, got %v", err)
	}
}

func TestCheckAttachmentSizeWithinLimit(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(make([]byte, 1024))
	if err := CheckAttachmentSize(payload, "resume"); err != nil {
		t.Errorf("1KB attachment should pass, got %v", err)
	}
}

func TestCheckAttachmentSizeAtLimit(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(make([]byte, MaxAttachmentBytes))
	if err := CheckAttachmentSize(payload, "resume"); err != nil {
		t.Errorf("attachment at exactly the limit should pass, got %v", err)
	}
}

func TestCheckAttachmentSizeOverLimit(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(make([]byte, 3*1024*1024))
	err := CheckAttachmentSize(payload, "resume")
	if err == nil {
		t.Fatal("3MB attachment should be rejected")
	}
	if !strings.Contains(err.Error(), "resume") {
		t.Errorf("error %q should name the field", err)
	}
}

func TestCheckAttachmentSizeDataURIPrefix(t *testing.T) {
	// The decoded limit applies to the payload after the data-URI prefix.
	small := "data:image/png;base64," + base64.StdEncoding.EncodeToString(make([]byte, 512))
	if err := CheckAttachmentSize(small, "photo"); err != nil {
		t.Errorf("prefixed small attachment should pass, got %v", err)
	}

	big := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(make([]byte, 3*1024*1024))
	if err := CheckAttachmentSize(big, "photo"); err == nil {
		t.Error("prefixed 3MB attachment should be rejected")
	}
}

func TestCheckAttachmentSizeInvalidBase64(t *testing.T) {
	if err := CheckAttachmentSize("%%%not-base64%%%", "photo"); err == nil {
		t.Error("invalid base64 should be rejected")
	}
}
