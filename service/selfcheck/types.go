package selfcheck

import "github.com/thirukguru/hermetic-selfcheck/model"

type service struct{}

// Service is the interface for the self-check banner.
type Service interface {
	Banner(binaryPath string) model.Banner
}
