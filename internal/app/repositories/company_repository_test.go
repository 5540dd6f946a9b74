package repositories

import (
	"strings"
	"testing"

	"github.com/snpzone/skillhunt/internal/app/models"
)

func TestCompanyCompleteProfileQueryKeepsOmittedFields(t *testing.T) {
	r := NewCompanyRepository(nil)
	website := "https://acme.example"
	patch := &models.CompanyProfilePatch{CompanyWebsite: &website}

	sql, args, err := r.completeProfileQuery("hr@acme.com", patch, "hashed")
	if err != nil {
		t.Fatalf("completeProfileQuery: %v", err)
	}

	// Every patch column writes through COALESCE, so a nil argument keeps
	// whatever the row already holds.
	for _, col := range []string{"company_type", "industry_type", "company_website", "gst_number", "company_logo", "registration_certificate"} {
		if !strings.Contains(sql, col+" = COALESCE(") {
			t.Errorf("query should COALESCE %s:\n%s", col, sql)
		}
	}

	// Args follow the column order: company_type first, company_website third.
	if v, ok := args[0].(*string); !ok || v != nil {
		t.Errorf("omitted company_type should bind NULL, got %#v", args[0])
	}
	if v, ok := args[2].(*string); !ok || v == nil || *v != website {
		t.Errorf("company_website arg = %#v, want %q", args[2], website)
	}

	// The credential hash is written unconditionally.
	if !strings.Contains(sql, "password_hash = $") {
		t.Errorf("query should set password_hash directly:\n%s", sql)
	}
	if args[len(args)-1] != "hr@acme.com" {
		t.Errorf("last arg = %#v, want the email key", args[len(args)-1])
	}
}
