package flag

import "github.com/thirukguru/hermetic-selfcheck/model"

type service struct {
	name string
}

// Service is the interface for CLI flag service.
type Service interface {
	GetParsedFlags(args []string) (model.Flags, error)
	Usage() string
}
