package content

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	mdOnce   sync.Once
	md       goldmark.Markdown
	mdPolicy *bluemonday.Policy
)

func markdown() (goldmark.Markdown, *bluemonday.Policy) {
	mdOnce.Do(func() {
		md = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Typographer))
		mdPolicy = bluemonday.UGCPolicy()
		mdPolicy.RequireNoFollowOnLinks(true)
		mdPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	})
	return md, mdPolicy
}

// RenderMarkdown converts a long-form description to sanitized HTML.
// Empty input yields an empty string.
func RenderMarkdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	conv, policy := markdown()
	var buf bytes.Buffer
	if err := conv.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil
}
