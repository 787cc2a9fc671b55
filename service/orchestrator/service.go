// Package orchestrator coordinates the self-check workflows.
package orchestrator

import (
	"github.com/thirukguru/hermetic-selfcheck/model"
	"github.com/thirukguru/hermetic-selfcheck/service/output"
	"github.com/thirukguru/hermetic-selfcheck/service/selfcheck"
)

// NewService creates a new orchestrator service.
func NewService(
	name string,
	outputService output.Service,
	selfcheckService selfcheck.Service,
	versionInfo model.VersionInfo,
) Service {
	return &service{
		name:             name,
		outputService:    outputService,
		selfcheckService: selfcheckService,
		versionInfo:      versionInfo,
	}
}

func (s *service) Orchestrate(flags model.Flags) error {
	if flags.Version {
		return s.versionWorkflow()
	}

	return s.bannerWorkflow(flags)
}

func (s *service) versionWorkflow() error {
	return s.outputService.RenderVersion(s.name, s.versionInfo)
}

func (s *service) bannerWorkflow(flags model.Flags) error {
	banner := s.selfcheckService.Banner(flags.BinaryPath)
	return s.outputService.RenderBanner(banner)
}
