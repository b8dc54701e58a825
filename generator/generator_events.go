package generator

import (
	"github.com/HampterPW/Crypted/events"
	"github.com/Masterminds/semver"
)

// GeneratorEvents defines event emitters for a Generator. A handler returning an error aborts the run.
type GeneratorEvents struct {
	// RunStarting emits events when a run selected its compiler version and discovered every source file, before
	// anything is compiled.
	RunStarting events.EventEmitter[RunStartingEvent]

	// ModuleGenerated emits events each time a module was written.
	ModuleGenerated events.EventEmitter[ModuleGeneratedEvent]
}

// RunStartingEvent describes an event where a Generator is about to compile the source files of a run.
type RunStartingEvent struct {
	// Generator represents the instance of the Generator for which the event occurred.
	Generator *Generator

	// CompilerVersion describes the compiler version the run compiles with.
	CompilerVersion *semver.Version

	// SourcePaths describes the source files the run processes, in order.
	SourcePaths []string
}

// ModuleGeneratedEvent describes an event where a Generator wrote a module.
type ModuleGeneratedEvent struct {
	// Generator represents the instance of the Generator for which the event occurred.
	Generator *Generator

	// Module describes the module which was written.
	Module GeneratedModule
}
