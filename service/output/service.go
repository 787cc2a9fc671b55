// Package output provides a service for rendering results to the console.
package output

import (
	"fmt"
	"io"

	"github.com/thirukguru/hermetic-selfcheck/model"
)

// NewService creates a new output service with the specified format
// writing to out.
func NewService(format string, out io.Writer) Service {
	return newService(format, out, &realRenderer{})
}

func newService(format string, out io.Writer, renderer Renderer) *service {
	f := FormatText
	switch format {
	case "json":
		f = FormatJSON
	case "table":
		f = FormatTable
	}

	return &service{
		format:   f,
		out:      out,
		renderer: renderer,
	}
}

func (s *service) RenderBanner(input model.Banner) error {
	var err error
	switch s.format {
	case FormatJSON:
		err = s.renderer.OutputBannerJSON(s.out, input)
	case FormatTable:
		err = s.renderer.DrawBannerTable(s.out, input)
	default:
		err = s.renderer.DrawBanner(s.out, input)
	}
	if err != nil {
		return fmt.Errorf("failed to render banner: %w", err)
	}
	return nil
}

func (s *service) RenderVersion(name string, info model.VersionInfo) error {
	var err error
	if s.format == FormatJSON {
		err = s.renderer.OutputVersionJSON(s.out, info)
	} else {
		err = s.renderer.DrawVersion(s.out, name, info)
	}
	if err != nil {
		return fmt.Errorf("failed to render version: %w", err)
	}
	return nil
}
