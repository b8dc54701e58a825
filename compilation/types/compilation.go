package types

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common/compiler"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Compilation represents the artifacts produced by compiling a single source file. It is created and consumed within a
// single generation pass and is never persisted.
type Compilation struct {
	// SourcePath describes the path of the source file which was handed to the compiler.
	SourcePath string

	// CompilerVersion describes the compiler version used to produce the artifacts.
	CompilerVersion string

	// Artifacts maps toolchain-qualified keys ("<source path>:<contract name>") to their compiled artifacts. Artifacts
	// of imported source files are included as well.
	Artifacts map[string]*CompiledArtifact
}

// NewCompilation returns a new, empty Compilation for the provided source path and compiler version.
func NewCompilation(sourcePath string, compilerVersion string) *Compilation {
	return &Compilation{
		SourcePath:      sourcePath,
		CompilerVersion: compilerVersion,
		Artifacts:       make(map[string]*CompiledArtifact),
	}
}

// NewCompilationFromCombinedJSON parses solc's --combined-json output into a Compilation. Both the legacy (string
// encoded abi) and current output formats are accepted.
func NewCompilationFromCombinedJSON(sourcePath string, compilerVersion string, combinedJSON []byte) (*Compilation, error) {
	contracts, err := compiler.ParseCombinedJSON(combinedJSON, "", "", compilerVersion, "")
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse compiler output for %s", sourcePath)
	}

	compilation := NewCompilation(sourcePath, compilerVersion)
	for key, contract := range contracts {
		compilation.Artifacts[key] = &CompiledArtifact{
			QualifiedKey:    key,
			Abi:             contract.Info.AbiDefinition,
			Bytecode:        contract.Code,
			RuntimeBytecode: contract.RuntimeCode,
		}
	}
	return compilation, nil
}

// QualifiedKeys returns every artifact key in the compilation, sorted so that lookups are deterministic.
func (c *Compilation) QualifiedKeys() []string {
	keys := maps.Keys(c.Artifacts)
	slices.Sort(keys)
	return keys
}

// ResolveContract locates the compiled artifact for the provided contract name. A key matches when the contract name
// portion of the key equals the name exactly, so contracts sharing a suffix (e.g. Token and ERC20Token) never collide.
// If several keys match, the one compiled from this compilation's own source file is preferred.
// The returned artifact has its bytecode fields normalized, and its interface descriptor has been verified.
// Returns a ResolutionError wrapping ErrArtifactNotFound or ErrAmbiguousArtifact if exactly one artifact could not be
// selected.
func (c *Compilation) ResolveContract(contractName string) (*CompiledArtifact, error) {
	// Collect every exact match
	matches := make([]*CompiledArtifact, 0)
	for _, key := range c.QualifiedKeys() {
		if _, name := splitQualifiedKey(key); name == contractName {
			matches = append(matches, c.Artifacts[key])
		}
	}

	// If there is more than one match, narrow the candidates down to our own source file
	if len(matches) > 1 {
		local := make([]*CompiledArtifact, 0)
		for _, match := range matches {
			if sameSourcePath(match.SourcePath(), c.SourcePath) {
				local = append(local, match)
			}
		}
		if len(local) != 1 {
			candidates := make([]string, len(matches))
			for i, match := range matches {
				candidates[i] = match.QualifiedKey
			}
			return nil, &ResolutionError{ContractName: contractName, Candidates: candidates, err: ErrAmbiguousArtifact}
		}
		matches = local
	}

	if len(matches) == 0 {
		return nil, &ResolutionError{ContractName: contractName, err: ErrArtifactNotFound}
	}

	// Verify the interface descriptor before handing the artifact out
	artifact := matches[0].Normalized()
	if _, err := artifact.ParseABI(); err != nil {
		return nil, err
	}
	return artifact, nil
}

// ResolutionError describes a failure to map a contract name to exactly one compiled artifact.
type ResolutionError struct {
	// ContractName describes the contract which could not be resolved.
	ContractName string

	// Candidates describes the qualified keys which matched, if there were several.
	Candidates []string

	err error
}

// Error returns the error message string, implementing the `error` interface.
func (e *ResolutionError) Error() string {
	if len(e.Candidates) > 0 {
		return fmt.Sprintf("%v: %s (candidates: %s)", e.err, e.ContractName, strings.Join(e.Candidates, ", "))
	}
	return fmt.Sprintf("%v: %s", e.err, e.ContractName)
}

// Unwrap returns the sentinel error describing the kind of resolution failure.
func (e *ResolutionError) Unwrap() error {
	return e.err
}

// sameSourcePath reports whether two source paths refer to the same file.
func sameSourcePath(a string, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
