package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// OOXML documents (docx, pptx) are zip archives of XML parts. Text lives in
// <w:t> runs for Word and <a:t> runs for PowerPoint; paragraph and shape
// boundaries become newlines.

func extractDocxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx archive: %w", err)
	}

	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document part: %w", err)
			}
			defer rc.Close()
			return collectRuns(rc, "t", "p")
		}
	}
	return "", fmt.Errorf("docx archive has no word/document.xml")
}

func extractPptxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pptx archive: %w", err)
	}

	var slides []*zip.File
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			slides = append(slides, f)
		}
	}
	if len(slides) == 0 {
		return "", fmt.Errorf("pptx archive has no slides")
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].Name < slides[j].Name })

	var b strings.Builder
	for _, slide := range slides {
		rc, err := slide.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open slide %s: %w", slide.Name, err)
		}
		text, err := collectRuns(rc, "t", "p")
		rc.Close()
		if err != nil {
			return "", err
		}
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// collectRuns walks an XML part collecting character data inside elements
// with the given local run name, inserting a newline at the end of each
// element with the given local break name.
func collectRuns(r io.Reader, runName, breakName string) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	depth := 0

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == runName {
				depth++
			}
		case xml.EndElement:
			if t.Name.Local == runName && depth > 0 {
				depth--
			}
			if t.Name.Local == breakName {
				b.WriteString("\n")
			}
		case xml.CharData:
			if depth > 0 {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
