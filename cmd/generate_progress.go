package cmd

import (
	"github.com/HampterPW/Crypted/generator"
	"github.com/HampterPW/Crypted/logging/colors"
)

// generateProgress reports the progress of a generation run through the command logger.
type generateProgress struct {
	// total describes the number of source files of the run.
	total int

	// generated describes the number of modules written so far.
	generated int
}

// subscribe registers the progress handlers with the events of the provided generator.
func (p *generateProgress) subscribe(gen *generator.Generator) {
	gen.Events.RunStarting.Subscribe(p.onRunStarting)
	gen.Events.ModuleGenerated.Subscribe(p.onModuleGenerated)
}

func (p *generateProgress) onRunStarting(event generator.RunStartingEvent) error {
	p.total = len(event.SourcePaths)
	p.generated = 0
	cmdLogger.Info("Generating ", colors.Bold, p.total, colors.Reset, " module(s) into ", event.Generator.Config().Output.Directory)
	return nil
}

func (p *generateProgress) onModuleGenerated(event generator.ModuleGeneratedEvent) error {
	p.generated++
	cmdLogger.Info(colors.Cyan, "[", p.generated, "/", p.total, "] ", colors.Reset, event.Module.SourcePath, " -> ", colors.Green, event.Module.OutputPath, colors.Reset, " (", len(event.Module.Contracts), " contract(s))")
	return nil
}
