package api

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/insightdelivered/statement-extractor/internal/convert"
	"github.com/insightdelivered/statement-extractor/internal/extractor"
	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/parser"
	"github.com/insightdelivered/statement-extractor/internal/writer"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// ConvertResponse is the JSON response from the /api/convert endpoint.
type ConvertResponse struct {
	Success   bool       `json:"success"`
	Error     string     `json:"error,omitempty"`
	ErrorKind string     `json:"errorKind,omitempty"`
	Kind      string     `json:"kind,omitempty"`
	Columns   []string   `json:"columns,omitempty"`
	Rows      [][]string `json:"rows"`
	Count     int        `json:"count"`
	Skipped   int        `json:"skipped"`
	CSV       string     `json:"csv,omitempty"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Log zerolog.Logger
}

// NewApp returns a fiber app with all routes registered.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "statement-extractor",
		BodyLimit:             32 << 20,
		DisableStartupMessage: true,
	})
	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/convert", h.HandleConvert)
	return app
}

func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": Version,
	})
}

// HandleConvert accepts a multipart form with either a "file" field
// holding a PDF or a "text" field holding already extracted text, and an
// optional "type" field (auto, account, securities).
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	kind, err := parser.ParseKind(c.FormValue("type"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "", err.Error())
	}

	var lines []string
	if text := c.FormValue("text"); text != "" {
		lines = extractor.LinesFromText(text)
	} else {
		var reqErr *requestError
		lines, reqErr = h.extractUpload(c)
		if reqErr != nil {
			return writeError(c, reqErr.status, reqErr.kind, reqErr.msg)
		}
	}

	detected, table, err := convert.Lines(lines, kind, h.Log)
	if err != nil {
		errKind := models.KindOf(err)
		h.Log.Debug().Err(err).Str("kind", string(errKind)).Msg("conversion failed")
		return writeError(c, statusFor(errKind), errKind, err.Error())
	}

	var csvBuf bytes.Buffer
	if err := (&writer.CSVWriter{}).Write(&csvBuf, table); err != nil {
		return writeError(c, http.StatusInternalServerError, models.KindOutputWrite, fmt.Sprintf("CSV generation failed: %v", err))
	}

	return c.JSON(ConvertResponse{
		Success: true,
		Kind:    string(detected),
		Columns: table.Columns,
		Rows:    table.Rows,
		Count:   table.Len(),
		Skipped: table.Skipped,
		CSV:     csvBuf.String(),
	})
}

// requestError is a failure that maps directly to an error response.
type requestError struct {
	status int
	kind   models.ErrorKind
	msg    string
}

// extractUpload stores the uploaded PDF in a temporary file and extracts
// its lines.
func (h *Handler) extractUpload(c *fiber.Ctx) ([]string, *requestError) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, &requestError{http.StatusBadRequest, models.KindMissingInput, "No file uploaded. Use form field 'file' or 'text'."}
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return nil, &requestError{http.StatusBadRequest, "", "Only PDF files are supported."}
	}

	tmpFile, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return nil, &requestError{http.StatusInternalServerError, "", "Failed to create temp file."}
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(header, tmpPath); err != nil {
		return nil, &requestError{http.StatusInternalServerError, "", "Failed to save uploaded file."}
	}

	lines, err := extractor.ExtractLines(tmpPath, h.Log)
	if err != nil {
		return nil, &requestError{http.StatusUnprocessableEntity, models.KindNoText, fmt.Sprintf("PDF extraction failed: %v", err)}
	}
	return lines, nil
}

func statusFor(kind models.ErrorKind) int {
	switch kind {
	case models.KindMissingInput:
		return http.StatusBadRequest
	case models.KindNoText, models.KindInsufficientData, models.KindMalformedRecord, models.KindUncategorized:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *fiber.Ctx, status int, kind models.ErrorKind, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success:   false,
		Error:     msg,
		ErrorKind: string(kind),
	})
}
