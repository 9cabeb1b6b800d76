package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ProducesPDF(t *testing.T) {
	text := "CS201 - IA QUESTION BANK\n\nQ1 (2 marks): Define a binary tree.\n\nQ2 (5 marks): Derive the height bound of an AVL tree."

	out, err := NewPDFRenderer().Render(text, "Question Bank - CS201")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
	assert.Greater(t, len(out), 500)
}

func TestRender_NonLatinTextDoesNotFail(t *testing.T) {
	text := "CS201 - IA QUESTION BANK\n\nQ1 (2 marks): Explain the term дерево."

	out, err := NewPDFRenderer().Render(text, "Question Bank - CS201")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestRender_EmptyTextRejected(t *testing.T) {
	_, err := NewPDFRenderer().Render("   \n  ", "whatever")

	assert.Error(t, err)
}
