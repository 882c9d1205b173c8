package services

import (
	"strings"
	"testing"
)

func TestIntakePolicyFileTypes(t *testing.T) {
	policy := NewIntakePolicy(16 * 1024 * 1024)

	tests := []struct {
		name     string
		filename string
		accepted bool
	}{
		{"png", "scan.png", true},
		{"jpg", "photo.jpg", true},
		{"jpeg", "photo.jpeg", true},
		{"pdf", "lab_results.pdf", true},
		{"txt", "notes.txt", true},
		{"uppercase extension", "REPORT.PDF", true},
		{"executable", "x.exe", false},
		{"no extension", "README", false},
		{"double extension trick", "report.pdf.exe", false},
		{"docx", "letter.docx", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.Validate(tc.filename, 1024)
			if tc.accepted && err != nil {
				t.Errorf("Expected %q to be accepted, got %q", tc.filename, err.Message)
			}
			if !tc.accepted {
				if err == nil {
					t.Fatalf("Expected %q to be rejected", tc.filename)
				}
				if !strings.Contains(err.Message, "File type not allowed") {
					t.Errorf("Expected type rejection message, got %q", err.Message)
				}
			}
		})
	}
}

func TestIntakePolicySizeLimit(t *testing.T) {
	policy := NewIntakePolicy(16 * 1024 * 1024)

	if err := policy.Validate("scan.png", 16*1024*1024); err != nil {
		t.Fatalf("Expected file at the limit to be accepted, got %q", err.Message)
	}

	err := policy.Validate("scan.png", 16*1024*1024+1)
	if err == nil {
		t.Fatal("Expected oversized file to be rejected")
	}
	if !strings.Contains(err.Message, "16MB") {
		t.Errorf("Expected rejection message to state the limit in MB, got %q", err.Message)
	}
}

func TestIntakePolicyTypeCheckedBeforeSize(t *testing.T) {
	policy := NewIntakePolicy(16 * 1024 * 1024)

	// An oversized disallowed file reports the type violation, not the size.
	err := policy.Validate("dump.exe", 100*1024*1024)
	if err == nil {
		t.Fatal("Expected rejection")
	}
	if !strings.Contains(err.Message, "File type not allowed") {
		t.Errorf("Expected type rejection to win, got %q", err.Message)
	}
}
