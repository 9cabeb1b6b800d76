package extract

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ledongthuc/pdf"

	"github.com/campuskit/coursegen-service/internal/models"
	"github.com/campuskit/coursegen-service/internal/utils"
)

// Extractor converts stored binary documents into plain text. Extraction
// never fails: any reader error degrades to the raw byte content, and the
// worst case is an empty string.
type Extractor struct {
	scratchDir string
	logger     utils.Logger
}

func NewExtractor(scratchDir string, logger utils.Logger) *Extractor {
	return &Extractor{
		scratchDir: scratchDir,
		logger:     logger,
	}
}

// Extract returns the sanitized, length-capped text content of one stored
// file.
func (e *Extractor) Extract(file *models.StoredFile) string {
	content := ""

	switch file.Extension() {
	case "pdf":
		text, err := e.readPDF(file)
		if err != nil {
			e.logger.Warn("pdf parse failed, falling back to raw bytes",
				"file_id", file.ID, "filename", file.Name, "error", err)
		} else {
			content = text
		}
	case "docx":
		text, err := extractDocxText(file.Content)
		if err != nil {
			e.logger.Warn("docx parse failed, falling back to raw bytes",
				"file_id", file.ID, "filename", file.Name, "error", err)
		} else {
			content = text
		}
	case "pptx":
		text, err := extractPptxText(file.Content)
		if err != nil {
			e.logger.Warn("pptx parse failed, falling back to raw bytes",
				"file_id", file.ID, "filename", file.Name, "error", err)
		} else {
			content = text
		}
	}

	// Legacy .doc/.ppt and every parse failure land here.
	if content == "" {
		content = string(file.Content)
	}

	content = SafeUTF8(content)
	return Shorten(content, MaxExtractLen)
}

// readPDF parses the file with the PDF reader. The reader wants a path, so
// the content is decoded once into the scratch directory keyed by content
// hash; a concurrent duplicate write produces identical bytes and is
// harmless.
func (e *Extractor) readPDF(file *models.StoredFile) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	path, err := e.scratchCopy(file)
	if err != nil {
		return "", err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to drain pdf text: %w", err)
	}
	return buf.String(), nil
}

// scratchCopy writes a temp decoded copy of the file unless one already
// exists for the same content hash.
func (e *Extractor) scratchCopy(file *models.StoredFile) (string, error) {
	hash := file.ContentHash
	if hash == "" {
		sum := sha1.Sum(file.Content)
		hash = hex.EncodeToString(sum[:])
	}

	path := filepath.Join(e.scratchDir, hash+"."+file.Extension())
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(e.scratchDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create scratch dir: %w", err)
	}
	if err := os.WriteFile(path, file.Content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write scratch copy: %w", err)
	}
	return path, nil
}
