// Package codegen writes generated Go modules holding compiled contract data.
package codegen

import (
	"bytes"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"github.com/HampterPW/Crypted/utils"
	"github.com/pkg/errors"
)

// ErrDuplicatePrefix indicates two different contracts in one module map to the same constant prefix.
var ErrDuplicatePrefix = errors.New("contracts share a constant prefix")

// ErrInvalidPrefix indicates a contract name produces constant names which are not valid Go identifiers.
var ErrInvalidPrefix = errors.New("contract name cannot be used for Go constant names")

// moduleTemplate is the layout of a generated module: a header naming the compiler version, followed by one block of
// constants per contract.
var moduleTemplate = template.Must(template.New("module").Parse(`// Code generated by {{.ToolName}}. DO NOT EDIT.
// Compiled with Solidity v{{.Module.CompilerVersion}}.

package {{.PackageName}}
{{range .Contracts}}
// source: {{$.SourcePath}}:{{.Name}}
const {{.Prefix}}_BYTECODE = {{printf "%q" .Bytecode}}
const {{.Prefix}}_RUNTIME = {{printf "%q" .RuntimeBytecode}}

var {{.Prefix}}_ABI = {{.AbiLiteral}}

var {{.Prefix}}_DATA = map[string]interface{}{
	"bytecode":         {{.Prefix}}_BYTECODE,
	"bytecode_runtime": {{.Prefix}}_RUNTIME,
	"abi":              {{.Prefix}}_ABI,
}
{{end}}`))

// templateData is the data the module template is executed with.
type templateData struct {
	ToolName    string
	PackageName string
	SourcePath  string
	Module      *Module
	Contracts   []Contract
}

// Emitter writes generated modules into an output directory.
type Emitter struct {
	// OutputDirectory describes the directory generated modules are written to.
	OutputDirectory string

	// PackageName describes the Go package name of generated modules.
	PackageName string

	// SourcePrefix describes the directory prepended to source file names in source attribution comments.
	SourcePrefix string

	// ToolName describes the generator named in the generated code header.
	ToolName string
}

// NewEmitter returns an Emitter writing into the provided output directory.
func NewEmitter(outputDirectory string, packageName string, sourcePrefix string, toolName string) *Emitter {
	return &Emitter{
		OutputDirectory: outputDirectory,
		PackageName:     packageName,
		SourcePrefix:    sourcePrefix,
		ToolName:        toolName,
	}
}

// OutputPath returns the path the provided module is written to.
func (e *Emitter) OutputPath(module *Module) string {
	return filepath.Join(e.OutputDirectory, module.FileName())
}

// Render renders the provided module. Contracts declared more than once are rendered once, at their first position.
// Returns ErrInvalidPrefix if a contract name does not produce valid Go identifiers, and ErrDuplicatePrefix if two
// differently named contracts would produce the same constant names.
func (e *Emitter) Render(module *Module) ([]byte, error) {
	// Drop repeated declarations and reject unusable or colliding prefixes
	contracts := make([]Contract, 0, len(module.Contracts))
	prefixOwners := make(map[string]string)
	for _, contract := range module.Contracts {
		if !token.IsIdentifier(contract.Prefix()) {
			return nil, errors.Wrapf(ErrInvalidPrefix, "%s in %s (prefix %q)", contract.Name, module.SourceFile, contract.Prefix())
		}
		owner, exists := prefixOwners[contract.Prefix()]
		if exists && owner == contract.Name {
			continue
		} else if exists {
			return nil, errors.Wrapf(ErrDuplicatePrefix, "%s and %s in %s", owner, contract.Name, module.SourceFile)
		}
		prefixOwners[contract.Prefix()] = contract.Name
		contracts = append(contracts, contract)
	}

	// Source attribution always uses forward slashes
	sourcePath := module.SourceFile
	if e.SourcePrefix != "" {
		sourcePath = path.Join(e.SourcePrefix, module.SourceFile)
	}

	var buf bytes.Buffer
	err := moduleTemplate.Execute(&buf, templateData{
		ToolName:    e.ToolName,
		PackageName: e.PackageName,
		SourcePath:  sourcePath,
		Module:      module,
		Contracts:   contracts,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}

// Emit renders the provided module and writes it to its output path, replacing any module already there. The old
// module is removed before anything is rendered so stale contracts never survive a regeneration. Returns the path
// written to.
func (e *Emitter) Emit(module *Module) (string, error) {
	outputPath := e.OutputPath(module)

	// Clean up the existing module, a missing one is fine
	if err := utils.DeleteFile(outputPath); err != nil {
		return "", err
	}

	b, err := e.Render(module)
	if err != nil {
		return "", err
	}

	if err := utils.MakeDirectory(e.OutputDirectory); err != nil {
		return "", err
	}
	if err := os.WriteFile(outputPath, b, 0644); err != nil {
		return "", errors.WithStack(err)
	}
	return outputPath, nil
}
