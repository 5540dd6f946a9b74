package services

import (
	"testing"
	"time"

	"github.com/snpzone/skillhunt/internal/app/models"
)

func TestJobIDPrefix(t *testing.T) {
	tests := []struct {
		companyName string
		want        string
	}{
		{"Acme Corp", "AC"},
		{"zeta systems", "ZE"},
		{"3M Industries", "MI"},
		{"X", "XX"},
		{"", "XX"},
		{"42", "XX"},
		{"  Tesla", "TE"},
	}
	for _, tt := range tests {
		if got := jobIDPrefix(tt.companyName); got != tt.want {
			t.Errorf("jobIDPrefix(%q) = %q, want %q", tt.companyName, got, tt.want)
		}
	}
}

func TestJobSummaryOf(t *testing.T) {
	created := time.Now()
	job := &models.Job{
		ID:             7,
		JobID:          "AC123456",
		JobRoleName:    "Backend Developer",
		JobLocation:    strptr("Pune"),
		JobMode:        strptr("Remote"),
		JobDescription: strptr("long text the board never shows"),
		CompanyName:    strptr("Acme Corp"),
		CompanyLogo:    strptr("data:image/png;base64,xyz"),
		CreatedAt:      created,
	}

	got := jobSummaryOf(job)
	if got.JobID != "AC123456" || got.JobRoleName != "Backend Developer" {
		t.Errorf("summary = %+v, want job ID and role carried over", got)
	}
	if got.CompanyName != "Acme Corp" {
		t.Errorf("companyName = %q, want Acme Corp", got.CompanyName)
	}
	if got.JobLocation == nil || *got.JobLocation != "Pune" {
		t.Errorf("jobLocation = %v, want Pune", got.JobLocation)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("createdAt = %v, want %v", got.CreatedAt, created)
	}

	// A row without joined company info still maps cleanly.
	if s := jobSummaryOf(&models.Job{JobID: "XX000001"}); s.CompanyName != "" {
		t.Errorf("companyName = %q, want empty for an unjoined row", s.CompanyName)
	}
}
