package repositories

import (
	"strings"
	"testing"

	"github.com/snpzone/skillhunt/internal/app/models"
)

func TestStudentCompleteProfileQueryKeepsOmittedFields(t *testing.T) {
	r := NewStudentRepository(nil)
	gender := "Female"
	patch := &models.StudentProfilePatch{Gender: &gender}

	sql, args, err := r.completeProfileQuery("jane@mail.com", patch, "SH123456", "hashed")
	if err != nil {
		t.Fatalf("completeProfileQuery: %v", err)
	}

	for _, col := range []string{"date_of_birth", "gender", "mobile_number", "skills", "resume", "photo"} {
		if !strings.Contains(sql, col+" = COALESCE(") {
			t.Errorf("query should COALESCE %s:\n%s", col, sql)
		}
	}

	// The arguments are flipped for the public ID: a previously assigned
	// student_id wins over the freshly minted one.
	if !strings.Contains(sql, "student_id = COALESCE(student_id, ") {
		t.Errorf("query should keep an existing student_id:\n%s", sql)
	}

	// Args follow the column order: date_of_birth first, gender second.
	if v, ok := args[0].(*string); !ok || v != nil {
		t.Errorf("omitted date_of_birth should bind NULL, got %#v", args[0])
	}
	if v, ok := args[1].(*string); !ok || v == nil || *v != gender {
		t.Errorf("gender arg = %#v, want %q", args[1], gender)
	}
	if args[len(args)-1] != "jane@mail.com" {
		t.Errorf("last arg = %#v, want the email key", args[len(args)-1])
	}
}
