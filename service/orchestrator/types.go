package orchestrator

import (
	"github.com/thirukguru/hermetic-selfcheck/model"
	"github.com/thirukguru/hermetic-selfcheck/service/output"
	"github.com/thirukguru/hermetic-selfcheck/service/selfcheck"
)

type service struct {
	name             string
	outputService    output.Service
	selfcheckService selfcheck.Service
	versionInfo      model.VersionInfo
}

// Service is the interface for orchestrator service.
type Service interface {
	Orchestrate(flags model.Flags) error
}
