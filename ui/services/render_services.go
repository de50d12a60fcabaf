package services

import (
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// RenderService renders page content that is authored as markdown
type RenderService struct {
	flags html.Flags
}

func NewRenderService() *RenderService {
	return &RenderService{
		flags: html.CommonFlags | html.SkipHTML,
	}
}

// Notice converts a markdown notice into HTML. Raw HTML in the source is dropped.
func (s *RenderService) Notice(source string) template.HTML {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: s.flags})
	return template.HTML(markdown.ToHTML([]byte(source), p, renderer))
}
