// Package plugin exposes the validator as a build completion hook.
//
// A host build tool registers Process through Apply and calls it once per
// finished build with the compilation's module list:
//
//	p := plugin.New(map[string]any{
//		"mandatoryDependencies": []string{"react"},
//		"disallowedDependencies": []string{"moment"},
//		"failOnInvalid": true,
//	}, logger)
//	p.Apply(host)
//
// The returned Outcome tells the host whether to fail the build.
package plugin

import (
	"github.com/ethanolivertroy/bundle-checker/internal/config"
	"github.com/ethanolivertroy/bundle-checker/internal/models"
	"github.com/ethanolivertroy/bundle-checker/internal/reporter"
)

// Name is the name the hook is registered under
const Name = "Bundle Content Validator Plugin"

// Module is one module of a finished compilation
type Module struct {
	// Resource is the absolute path of the file the module was built from;
	// empty for runtime and virtual modules
	Resource string
}

// Compilation is what the host hands over when a build is done
type Compilation struct {
	Modules []Module
}

// DoneFunc is the single-shot completion callback shape
type DoneFunc func(Compilation) models.Outcome

// Hooks is the registration surface of a host build tool
type Hooks interface {
	TapDone(name string, fn DoneFunc)
}

// Plugin validates the bundle content of every completed build
type Plugin struct {
	options map[string]any
	logger  reporter.Logger
}

// New creates a plugin. Options are validated when a build completes so a
// bad configuration fails that build rather than the host's startup.
func New(options map[string]any, logger reporter.Logger) *Plugin {
	return &Plugin{options: options, logger: logger}
}

// Apply registers Process as the build completion hook
func (p *Plugin) Apply(hooks Hooks) {
	hooks.TapDone(Name, p.Process)
}

// Process validates one compilation
func (p *Plugin) Process(c Compilation) models.Outcome {
	p.logger.Info(Name+" started", "options", p.options)

	opts, err := config.DecodeOptions(p.options)
	if err != nil {
		return reporter.Fail(p.logger, err)
	}

	return reporter.Run(p.logger, resources(c), opts.Validation)
}

func resources(c Compilation) []string {
	out := make([]string, 0, len(c.Modules))
	for _, m := range c.Modules {
		if m.Resource != "" {
			out = append(out, m.Resource)
		}
	}
	return out
}
