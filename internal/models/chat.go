package models

import "strings"

// ChatResponse is the chatbot endpoint's reply body. The field names are a
// preserved external contract.
type ChatResponse struct {
	Response string `json:"response"`
	Type     string `json:"type"` // "success" or "error"
	HasFile  bool   `json:"has_file"`
}

// UploadedFile describes a persisted chat attachment. It exists for the
// duration of one request; the stored file must be removed before the
// handler returns.
type UploadedFile struct {
	OriginalName string
	StoredPath   string
	ContentType  string
	Size         int64
}

// IsImage reports whether the attachment declared an image content type.
func (f *UploadedFile) IsImage() bool {
	return f != nil && strings.HasPrefix(f.ContentType, "image/")
}

// IsPDF reports whether the attachment declared a PDF content type.
func (f *UploadedFile) IsPDF() bool {
	return f != nil && f.ContentType == "application/pdf"
}
