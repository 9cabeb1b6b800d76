package generation

import (
	"fmt"
	"strings"

	"github.com/campuskit/coursegen-service/internal/extract"
	"github.com/campuskit/coursegen-service/internal/models"
)

// MaxContextLen caps the concatenated file-content block handed to the quiz
// prompt family.
const MaxContextLen = 14000

// Placeholders used when a selection yields no titles or no readable text.
const (
	noFileTitles  = "- (no file titles provided)"
	noTopicList   = "(no explicit topic list; infer from content)"
	noFileContent = "(No readable text found in selected files; use only file names and course name to guess topics.)"
)

// SourceDoc pairs one selected file with its section name and extracted text.
// Text stays empty for the question-bank family, which is steered by topic
// labels rather than raw content.
type SourceDoc struct {
	File        *models.StoredFile
	SectionName string
	Text        string
}

// Context is the assembled prompt material for one generation request.
type Context struct {
	// FileSummary lists the selected files with section and path, one line
	// per file. Used as light-weight topic hints by the question-bank family.
	FileSummary string

	// ContentBlock concatenates the extracted texts with separators, capped
	// at MaxContextLen. Primary content for the quiz family.
	ContentBlock string

	// Topics is the deduplicated allow-list built from section names and
	// extension-stripped file basenames.
	Topics []string

	// TopicsLine is Topics joined for direct prompt embedding.
	TopicsLine string
}

// BuildContext aggregates the selected documents into prompt material. All
// files contribute equally; zero files produces placeholder text rather than
// an error.
func BuildContext(docs []SourceDoc) Context {
	var summary []string
	var contents []string
	var topics []string
	seen := make(map[string]bool)

	addTopic := func(t string) {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		topics = append(topics, t)
	}

	for _, doc := range docs {
		section := doc.SectionName
		if section == "" {
			section = "Unknown"
		}

		summary = append(summary, fmt.Sprintf("- %s (Section: %s, Path: %s)",
			doc.File.Name, section, doc.File.Path))

		if doc.Text != "" {
			contents = append(contents, fmt.Sprintf("FILE: %s\n%s", doc.File.Name, doc.Text))
		}

		addTopic(doc.SectionName)
		addTopic(doc.File.BaseName())
	}

	ctx := Context{
		FileSummary:  strings.Join(summary, "\n"),
		ContentBlock: strings.Join(contents, "\n\n-----\n\n"),
		Topics:       topics,
	}

	if ctx.FileSummary == "" {
		ctx.FileSummary = noFileTitles
	}
	if ctx.ContentBlock == "" {
		ctx.ContentBlock = noFileContent
	} else if len([]rune(ctx.ContentBlock)) > MaxContextLen {
		ctx.ContentBlock = extract.Shorten(ctx.ContentBlock, MaxContextLen)
	}

	if len(topics) == 0 {
		ctx.TopicsLine = noTopicList
	} else {
		ctx.TopicsLine = strings.Join(topics, ", ")
	}

	return ctx
}
