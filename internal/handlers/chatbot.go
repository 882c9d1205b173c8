package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"healthai-backend/internal/models"
	"healthai-backend/internal/services"
)

// chatResponder produces the response text for a normalized chat request.
// ok reports whether the text is a real answer rather than an advisory.
type chatResponder interface {
	Respond(ctx context.Context, message string, file *models.UploadedFile) (text string, ok bool, err error)
}

// ChatbotHandler orchestrates the chat pipeline: request parsing, intake
// validation, file persistence, dispatch and unconditional cleanup.
type ChatbotHandler struct {
	chat      chatResponder
	policy    *services.IntakePolicy
	uploadDir string
}

func NewChatbotHandler(chat chatResponder, policy *services.IntakePolicy, uploadDir string) *ChatbotHandler {
	return &ChatbotHandler{
		chat:      chat,
		policy:    policy,
		uploadDir: uploadDir,
	}
}

// chatRequest is a chat request normalized from any of the accepted
// encodings. The file part is still unread at this point.
type chatRequest struct {
	Message string
	File    *multipart.FileHeader
}

// multipartMemoryLimit is how much of a parsed multipart body is held in
// memory before spilling to temp files.
const multipartMemoryLimit = 32 << 20

var errBadJSONBody = errors.New("bad json body")

// parseChatRequest resolves the request encoding once at entry: JSON body,
// multipart form, or plain form fields as a fallback.
func parseChatRequest(r *http.Request) (*chatRequest, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		// A pointer target distinguishes a JSON null document, which decodes
		// without error, from an object body.
		var body *struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body == nil {
			return nil, errBadJSONBody
		}
		return &chatRequest{Message: strings.TrimSpace(body.Message)}, nil
	}

	if strings.Contains(contentType, "multipart/form-data") {
		// A malformed multipart body parses to an empty request and is
		// rejected by the presence check below.
		r.ParseMultipartForm(multipartMemoryLimit)
	} else {
		r.ParseForm()
	}

	req := &chatRequest{Message: strings.TrimSpace(r.FormValue("message"))}
	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["file"]; len(files) > 0 {
			req.File = files[0]
		}
	}
	return req, nil
}

// Chat handles POST /chatbot.
func (h *ChatbotHandler) Chat(w http.ResponseWriter, r *http.Request) {
	// Oversized files must fail the intake check with its advisory, so the
	// transport cap sits one MiB above the policy limit to leave room for
	// multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, h.policy.MaxBytes+1<<20)

	req, err := parseChatRequest(r)
	if err != nil {
		writeChat(w, http.StatusBadRequest, "Please provide a message in JSON format.", "error", false)
		return
	}

	if req.Message == "" && req.File == nil {
		writeChat(w, http.StatusBadRequest, "Please enter a message or upload a file.", "error", false)
		return
	}

	var file *models.UploadedFile
	hasFile := false

	if req.File != nil && req.File.Filename != "" {
		hasFile = true

		// Intake checks run before anything touches disk.
		if ierr := h.policy.Validate(req.File.Filename, req.File.Size); ierr != nil {
			writeChat(w, http.StatusBadRequest, ierr.Message, "error", false)
			return
		}

		storedPath, err := h.saveUpload(req.File)
		if err != nil {
			log.Printf("!!! Chatbot upload error: %v", err)
			writeChat(w, http.StatusInternalServerError, "An error occurred: "+err.Error(), "error", false)
			return
		}
		// The stored file lives for this request only, whatever happens next.
		defer h.removeUpload(storedPath)

		file = &models.UploadedFile{
			OriginalName: req.File.Filename,
			StoredPath:   storedPath,
			ContentType:  req.File.Header.Get("Content-Type"),
			Size:         req.File.Size,
		}
	}

	text, ok, err := h.chat.Respond(r.Context(), req.Message, file)
	if err != nil {
		log.Printf("!!! Chatbot error: %v", err)
		writeChat(w, http.StatusInternalServerError, "An error occurred: "+err.Error(), "error", false)
		return
	}

	// Advisories replace the answer but are not transport failures, so the
	// request still succeeds at the HTTP level.
	kind := "success"
	if !ok {
		kind = "error"
	}
	writeChat(w, http.StatusOK, text, kind, hasFile)
}

// saveUpload persists the file part under a request-unique name so that
// concurrent uploads of the same filename cannot collide.
func (h *ChatbotHandler) saveUpload(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	storedPath := filepath.Join(h.uploadDir, uuid.New().String()+"_"+sanitizeFilename(fh.Filename))
	dst, err := os.Create(storedPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(storedPath)
		return "", err
	}
	return storedPath, nil
}

// removeUpload deletes a stored file. Cleanup failures are logged and never
// override the response already computed.
func (h *ChatbotHandler) removeUpload(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Error cleaning up file %s: %v", path, err)
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// sanitizeFilename strips path components and replaces anything outside a
// conservative character set.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == ".." {
		name = "upload"
	}
	return name
}

func writeChat(w http.ResponseWriter, status int, text, kind string, hasFile bool) {
	writeJSON(w, status, models.ChatResponse{
		Response: text,
		Type:     kind,
		HasFile:  hasFile,
	})
}
