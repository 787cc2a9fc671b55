package output

import (
	"io"

	"github.com/thirukguru/hermetic-selfcheck/model"
	"github.com/thirukguru/hermetic-selfcheck/utils/banner"
	jsonoutput "github.com/thirukguru/hermetic-selfcheck/utils/json_output"
)

// Format represents the output format type
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// Renderer defines the interface for drawing results
type Renderer interface {
	DrawBanner(w io.Writer, input model.Banner) error
	DrawBannerTable(w io.Writer, input model.Banner) error
	DrawVersion(w io.Writer, name string, info model.VersionInfo) error
	OutputBannerJSON(w io.Writer, input model.Banner) error
	OutputVersionJSON(w io.Writer, info model.VersionInfo) error
}

type realRenderer struct{}

func (r *realRenderer) DrawBanner(w io.Writer, input model.Banner) error {
	return banner.DrawBanner(w, input)
}

func (r *realRenderer) DrawBannerTable(w io.Writer, input model.Banner) error {
	return banner.DrawBannerTable(w, input)
}

func (r *realRenderer) DrawVersion(w io.Writer, name string, info model.VersionInfo) error {
	return banner.DrawVersion(w, name, info)
}

func (r *realRenderer) OutputBannerJSON(w io.Writer, input model.Banner) error {
	return jsonoutput.OutputBannerJSON(w, input)
}

func (r *realRenderer) OutputVersionJSON(w io.Writer, info model.VersionInfo) error {
	return jsonoutput.OutputVersionJSON(w, info)
}

// service is the internal implementation
type service struct {
	format   Format
	out      io.Writer
	renderer Renderer
}

// Service defines the interface for output operations
type Service interface {
	RenderBanner(input model.Banner) error
	RenderVersion(name string, info model.VersionInfo) error
}
