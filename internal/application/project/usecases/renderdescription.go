package usecases

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var descriptionMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

var descriptionPolicy = bluemonday.UGCPolicy()

// renderDescription converts a markdown project description to sanitized
// HTML. Rendering happens once at write time and the result is persisted.
func renderDescription(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := descriptionMarkdown.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render description: %w", err)
	}
	return descriptionPolicy.Sanitize(buf.String()), nil
}
