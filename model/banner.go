package model

// Banner is the self-check message split for structured output.
// Text is the exact banner as printed in text mode.
type Banner struct {
	Lines    []string `json:"lines"`
	Commands []string `json:"commands"`
	Text     string   `json:"text"`
}
