// Package generator drives a generation run: it selects the compiler version, discovers the contracts of every source
// file, compiles each file, and writes one contract-data module per file before formatting the output directory.
package generator

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/HampterPW/Crypted/codegen"
	"github.com/HampterPW/Crypted/compilation"
	"github.com/HampterPW/Crypted/compilation/platforms"
	"github.com/HampterPW/Crypted/compilation/types"
	"github.com/HampterPW/Crypted/config"
	"github.com/HampterPW/Crypted/discovery"
	"github.com/HampterPW/Crypted/logging"
	"github.com/HampterPW/Crypted/logging/colors"
	"github.com/HampterPW/Crypted/naming"
	"github.com/HampterPW/Crypted/utils"
	"github.com/HampterPW/Crypted/version"
	"github.com/Masterminds/semver"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Generator generates contract-data modules for the source files of a project.
type Generator struct {
	// config describes the project configuration the generator was created with.
	config *config.ProjectConfig

	// versions lists and installs compiler versions.
	versions platforms.VersionManager

	// platform compiles a single source file.
	platform platforms.PlatformConfig

	// emitter writes generated modules.
	emitter *codegen.Emitter

	// formatter formats the output directory once all modules were written. Nil disables formatting.
	formatter Formatter

	// logger describes the Generator's log object that can be used to log important events
	logger *logging.Logger

	// Events describes the event system for the Generator.
	Events GeneratorEvents
}

// Result describes the outcome of a successful generation run.
type Result struct {
	// RunID describes the identifier attached to every log event of the run.
	RunID string

	// CompilerVersion describes the compiler version every source file was compiled with.
	CompilerVersion *semver.Version

	// Modules describes the generated modules, in the order their source files were processed.
	Modules []GeneratedModule
}

// GeneratedModule describes a module written during a run.
type GeneratedModule struct {
	// SourcePath describes the source file the module was generated from.
	SourcePath string

	// OutputPath describes the path the module was written to.
	OutputPath string

	// Contracts describes the names of the contracts in the module, in declaration order.
	Contracts []string
}

// sourceTarget is a source file along with the contracts discovered in it.
type sourceTarget struct {
	path         string
	declarations []discovery.Declaration
}

// NewGenerator returns a Generator for the provided project configuration. Compiler versions are managed with
// solc-select, and the compilation platform and formatter are taken from the configuration.
func NewGenerator(projectConfig *config.ProjectConfig) (*Generator, error) {
	if err := projectConfig.Validate(); err != nil {
		return nil, err
	}

	platform, err := projectConfig.Compilation.GetPlatformConfig()
	if err != nil {
		return nil, err
	}

	var formatter Formatter
	if projectConfig.Formatter.Enabled {
		formatter = NewCommandFormatter(projectConfig.Formatter.Command)
	}

	output := projectConfig.Output
	return &Generator{
		config:    projectConfig,
		versions:  platforms.NewSolcSelect(),
		platform:  platform,
		emitter:   codegen.NewEmitter(output.Directory, output.PackageName, output.SourcePrefix, version.ToolName),
		formatter: formatter,
		logger:    logging.GlobalLogger.NewSubLogger("module", logging.GENERATOR_SERVICE),
	}, nil
}

// Config returns the project configuration the Generator was created with.
func (g *Generator) Config() *config.ProjectConfig {
	return g.config
}

// Run performs a generation run. Every source file is discovered before anything is compiled, then each file is
// compiled and its module written in turn. The first error aborts the run, modules written before it are left in
// place. The formatter runs once, after every module was written, on every successful run.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	runID := uuid.New().String()
	logger := g.logger.NewSubLogger("run", runID)
	start := time.Now()

	// Select and install the compiler version shared by every file
	compilerVersion, err := compilation.ResolveCompilerVersion(ctx, g.versions, g.config.SolcVersion)
	if err != nil {
		return nil, err
	}
	logger.Info("Using solc ", colors.Bold, compilerVersion.String(), colors.Reset, " with the ", g.platform.Platform(), " platform")
	g.checkPinnedCompiler(ctx, logger, compilerVersion)

	// Discover every file up front so malformed sources fail before the compiler runs
	sourcePaths, err := g.sourceFiles()
	if err != nil {
		return nil, err
	}
	if len(sourcePaths) == 0 {
		logger.Warn("No ", g.config.SourceExtension, " files were found in ", g.config.SourceDirectory)
	}
	targets := make([]sourceTarget, 0, len(sourcePaths))
	for _, sourcePath := range sourcePaths {
		declarations, err := discovery.DiscoverContractsInFile(sourcePath)
		if err != nil {
			return nil, err
		}
		warnDuplicateDeclarations(logger, sourcePath, declarations)
		targets = append(targets, sourceTarget{path: sourcePath, declarations: declarations})
	}
	warnSharedPrefixes(logger, targets)

	err = g.Events.RunStarting.Publish(RunStartingEvent{Generator: g, CompilerVersion: compilerVersion, SourcePaths: sourcePaths})
	if err != nil {
		return nil, err
	}

	// Compile and emit file by file
	result := &Result{
		RunID:           runID,
		CompilerVersion: compilerVersion,
		Modules:         make([]GeneratedModule, 0, len(targets)),
	}
	for _, target := range targets {
		module, err := g.generateModule(ctx, logger, target, compilerVersion)
		if err != nil {
			return nil, err
		}
		result.Modules = append(result.Modules, *module)
		if err = g.Events.ModuleGenerated.Publish(ModuleGeneratedEvent{Generator: g, Module: *module}); err != nil {
			return nil, err
		}
	}

	// Format the whole output tree once, even when no module was written
	if g.formatter != nil {
		if err := utils.MakeDirectory(g.config.Output.Directory); err != nil {
			return nil, err
		}
		logger.Debug("Formatting ", g.config.Output.Directory)
		if err := g.formatter.Format(ctx, g.config.Output.Directory); err != nil {
			return nil, err
		}
	}

	summary := logging.NewLogBuffer()
	summary.Append("Generated ", colors.Bold, len(result.Modules), colors.Reset, " module(s) in ", g.config.Output.Directory)
	summary.Append(" (", time.Since(start).Round(time.Millisecond), ")")
	logger.Info(summary)
	return result, nil
}

// generateModule compiles a single source file, resolves every discovered contract, and writes the module.
func (g *Generator) generateModule(ctx context.Context, logger *logging.Logger, target sourceTarget, compilerVersion *semver.Version) (*GeneratedModule, error) {
	logger.Info("Compiling ", colors.Bold, target.path)
	comp, err := g.platform.Compile(ctx, target.path, compilerVersion)
	if err != nil {
		return nil, err
	}
	logger.Trace("Compiled ", target.path, " into ", strings.Join(comp.QualifiedKeys(), ", "))

	module := &codegen.Module{
		SourceFile:      filepath.Base(target.path),
		CompilerVersion: compilerVersion.String(),
		Contracts:       make([]codegen.Contract, 0, len(target.declarations)),
	}
	for _, declaration := range target.declarations {
		artifact, err := comp.ResolveContract(declaration.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", target.path, declaration.Line)
		}
		checkCompilerMetadata(logger, artifact, compilerVersion)
		module.Contracts = append(module.Contracts, codegen.NewContract(declaration.Name, artifact))
	}

	outputPath, err := g.emitter.Emit(module)
	if err != nil {
		return nil, err
	}
	logger.Debug("Wrote ", colors.Green, outputPath, colors.Reset, " (", len(module.Contracts), " contract(s))")

	return &GeneratedModule{
		SourcePath: target.path,
		OutputPath: outputPath,
		Contracts:  discovery.Names(target.declarations),
	}, nil
}

// warnDuplicateDeclarations warns about contracts declared more than once in a file. Their data is generated once.
func warnDuplicateDeclarations(logger *logging.Logger, sourcePath string, declarations []discovery.Declaration) {
	seen := make(map[string]bool, len(declarations))
	for _, declaration := range declarations {
		if seen[declaration.Name] {
			logger.Warn("Contract ", colors.Bold, declaration.Name, colors.Reset, " is declared more than once in ", sourcePath, " (line ", declaration.Line, ")")
		}
		seen[declaration.Name] = true
	}
}

// checkPinnedCompiler warns if the platform is tied to a compiler binary whose version differs from the version
// selected for the run.
func (g *Generator) checkPinnedCompiler(ctx context.Context, logger *logging.Logger, compilerVersion *semver.Version) {
	pinned, ok := g.platform.(platforms.PinnedVersionPlatform)
	if !ok {
		return
	}

	pinnedVersion, err := pinned.PinnedVersion(ctx)
	if err != nil {
		logger.Warn("Could not determine the version of the configured compiler", err)
		return
	}
	if pinnedVersion != nil && !pinnedVersion.Equal(compilerVersion) {
		logger.Warn(colors.Yellow, "The configured compiler is solc ", pinnedVersion.String(), " but solc ", compilerVersion.String(), " was selected for this run")
	}
}

// warnSharedPrefixes warns about contracts in different files that produce the same constant names. Every module is
// written into one package, so such modules will not compile together.
func warnSharedPrefixes(logger *logging.Logger, targets []sourceTarget) {
	owners := make(map[string]string)
	for _, target := range targets {
		for _, declaration := range target.declarations {
			prefix := naming.ContractNameToPrefix(declaration.Name)
			owner, exists := owners[prefix]
			if exists && owner != target.path {
				logger.Warn("Contract ", colors.Bold, declaration.Name, colors.Reset, " in ", target.path, " shares the ", prefix, " constants with ", owner)
			} else if !exists {
				owners[prefix] = target.path
			}
		}
	}
}

// checkCompilerMetadata warns if the compiler version embedded in an artifact's runtime bytecode differs from the
// version the run asked for, which happens when the toolchain ignores the version selection.
func checkCompilerMetadata(logger *logging.Logger, artifact *types.CompiledArtifact, compilerVersion *semver.Version) {
	runtimeBytecode, err := artifact.RuntimeBytecodeBytes()
	if err != nil {
		logger.Debug("Could not decode runtime bytecode of ", artifact.QualifiedKey, err)
		return
	}

	embeddedVersion := types.ExtractContractMetadata(runtimeBytecode).CompilerVersion()
	if embeddedVersion != "" && embeddedVersion != compilerVersion.String() {
		logger.Warn(colors.Yellow, artifact.QualifiedKey, " was compiled with solc ", embeddedVersion, ", expected ", compilerVersion.String())
	}
}
