package services

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"healthai-backend/internal/models"
)

// Fixed advisories for attachment-processing failures. The gateway is never
// invoked when these are returned.
const (
	adviceImageTrouble  = "⚠️ I had trouble analyzing the image. Please make sure it's a clear image and try again, or consult a healthcare professional directly."
	advicePDFUnreadable = "⚠️ I couldn't read the PDF file properly. Please make sure it's not password protected and contains extractable text."
)

// ChatService selects the payload shape for a chat request and obtains the
// response text through the gateway.
type ChatService struct {
	gateway   *Gateway
	extractor *PDFExtractor
}

func NewChatService(gateway *Gateway, extractor *PDFExtractor) *ChatService {
	return &ChatService{gateway: gateway, extractor: extractor}
}

// Respond answers a chat message, optionally grounded on a stored attachment.
// ok reports whether text is a real model answer; advisories (upstream faults,
// unreadable attachments) come back with ok=false so the caller can mark the
// response degraded. The error return is reserved for unexpected failures the
// handler reports as a server error.
func (s *ChatService) Respond(ctx context.Context, message string, file *models.UploadedFile) (text string, ok bool, err error) {
	switch {
	case file.IsImage():
		return s.respondWithImage(ctx, message, file)
	case file.IsPDF():
		return s.respondWithDocument(ctx, message, file)
	default:
		// Text-only request. A plain-text attachment is stored and counted
		// but contributes no prompt context, matching the original contract.
		text, ok = s.gateway.Generate(ctx, chatModelName, genai.Text(buildTextPrompt(message)))
		return text, ok, nil
	}
}

func (s *ChatService) respondWithImage(ctx context.Context, message string, file *models.UploadedFile) (string, bool, error) {
	data, err := os.ReadFile(file.StoredPath)
	if err != nil {
		log.Printf("Image analysis error: %v", err)
		return adviceImageTrouble, false, nil
	}

	text, ok := s.gateway.Generate(ctx, visionModelName,
		genai.Text(buildImagePrompt(message)),
		genai.ImageData(imageFormat(file.ContentType), data),
	)
	if ok {
		// Extra disclaimer for image analysis, appended only to real answers.
		text += imageDisclaimer
	}
	return text, ok, nil
}

func (s *ChatService) respondWithDocument(ctx context.Context, message string, file *models.UploadedFile) (string, bool, error) {
	documentText, err := s.extractor.ExtractText(file.StoredPath)
	if err != nil {
		var exErr *ExtractionError
		if errors.As(err, &exErr) {
			log.Printf("PDF analysis error: %s", exErr.Reason)
			return advicePDFUnreadable, false, nil
		}
		return "", false, err
	}

	text, ok := s.gateway.Generate(ctx, documentModelName, genai.Text(buildDocumentPrompt(documentText, message)))
	return text, ok, nil
}

// imageFormat derives the genai image format from a declared content type,
// e.g. "image/png" -> "png".
func imageFormat(contentType string) string {
	return strings.TrimPrefix(contentType, "image/")
}
