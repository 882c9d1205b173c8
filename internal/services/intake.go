package services

import (
	"fmt"
	"strings"
)

// allowedExtensions is the fixed upload allow-set.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"pdf":  true,
	"txt":  true,
}

// IntakeError is a user-facing upload rejection naming the violated rule.
type IntakeError struct {
	Message string
}

func (e *IntakeError) Error() string {
	return e.Message
}

// IntakePolicy validates uploaded files before anything is persisted.
// It is a pure predicate; the caller owns persistence and deletion.
type IntakePolicy struct {
	MaxBytes int64
}

func NewIntakePolicy(maxBytes int64) *IntakePolicy {
	return &IntakePolicy{MaxBytes: maxBytes}
}

// Validate checks the filename extension against the allow-set and the size
// against the configured maximum. A nil return means the file is accepted.
func (p *IntakePolicy) Validate(filename string, size int64) *IntakeError {
	if !allowedFile(filename) {
		return &IntakeError{Message: "File type not allowed. Please upload PNG, JPG, JPEG, or PDF files only."}
	}
	if size > p.MaxBytes {
		return &IntakeError{Message: fmt.Sprintf("File too large. Maximum size is %dMB.", p.MaxBytes/1048576)}
	}
	return nil
}

func allowedFile(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	return allowedExtensions[ext]
}
