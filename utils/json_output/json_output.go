// Package jsonoutput renders self-check results as JSON.
package jsonoutput

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/thirukguru/hermetic-selfcheck/model"
)

// OutputBannerJSON writes the banner as an indented JSON object.
func OutputBannerJSON(w io.Writer, banner model.Banner) error {
	return printJSON(w, banner)
}

// OutputVersionJSON writes the build metadata as an indented JSON object.
func OutputVersionJSON(w io.Writer, info model.VersionInfo) error {
	return printJSON(w, info)
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}
