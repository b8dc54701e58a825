package codegen

import (
	"fmt"

	"github.com/HampterPW/Crypted/compilation/types"
	"github.com/HampterPW/Crypted/naming"
	"github.com/HampterPW/Crypted/utils"
)

// Module describes one generated module, holding the compiled data of every contract declared in a single source file.
type Module struct {
	// SourceFile describes the file name of the originating source file, e.g. "OffchainLookup.sol".
	SourceFile string

	// CompilerVersion describes the compiler version the contracts were compiled with.
	CompilerVersion string

	// Contracts describes the compiled contracts, in the order they were declared in the source file.
	Contracts []Contract
}

// Contract describes the generated data of a single contract.
type Contract struct {
	// Name describes the contract name as declared in source.
	Name string

	// Bytecode describes the normalized deployment bytecode.
	Bytecode string

	// RuntimeBytecode describes the normalized runtime bytecode.
	RuntimeBytecode string

	// Abi describes the decoded interface descriptor.
	Abi any
}

// NewContract creates a Contract from a resolved artifact.
func NewContract(name string, artifact *types.CompiledArtifact) Contract {
	return Contract{
		Name:            name,
		Bytecode:        types.NormalizeHex(artifact.Bytecode),
		RuntimeBytecode: types.NormalizeHex(artifact.RuntimeBytecode),
		Abi:             artifact.Abi,
	}
}

// Prefix returns the prefix shared by every constant generated for the contract.
func (c Contract) Prefix() string {
	return naming.ContractNameToPrefix(c.Name)
}

// AbiLiteral returns the interface descriptor as a Go composite literal. Map keys are emitted in sorted order, so the
// literal is deterministic.
func (c Contract) AbiLiteral() string {
	if c.Abi == nil {
		return "[]interface {}{}"
	}
	return fmt.Sprintf("%#v", c.Abi)
}

// Stem returns the source file name without its extension.
func (m *Module) Stem() string {
	return utils.GetFileNameWithoutExtension(m.SourceFile)
}

// FileName returns the file name of the generated module.
func (m *Module) FileName() string {
	return naming.ModuleFileName(m.Stem())
}
