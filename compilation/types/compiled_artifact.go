package types

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// CompiledArtifact represents the compiled output for a single contract, as reported by the compiler toolchain.
type CompiledArtifact struct {
	// QualifiedKey is the toolchain-assigned identifier of the artifact, of the form "<source path>:<contract name>".
	QualifiedKey string

	// Abi describes the contract's interface descriptor in its decoded JSON form (typically a []any of entries).
	Abi any

	// Bytecode describes the hex-encoded bytecode used to deploy the contract.
	Bytecode string

	// RuntimeBytecode describes the hex-encoded bytecode expected once the contract has been deployed.
	RuntimeBytecode string
}

// SourcePath returns the source path portion of the artifact's qualified key.
func (c *CompiledArtifact) SourcePath() string {
	sourcePath, _ := splitQualifiedKey(c.QualifiedKey)
	return sourcePath
}

// ContractName returns the contract name portion of the artifact's qualified key.
func (c *CompiledArtifact) ContractName() string {
	_, contractName := splitQualifiedKey(c.QualifiedKey)
	return contractName
}

// Normalized returns a copy of the artifact with both bytecode fields in canonical hex form.
func (c *CompiledArtifact) Normalized() *CompiledArtifact {
	return &CompiledArtifact{
		QualifiedKey:    c.QualifiedKey,
		Abi:             c.Abi,
		Bytecode:        NormalizeHex(c.Bytecode),
		RuntimeBytecode: NormalizeHex(c.RuntimeBytecode),
	}
}

// ParseABI parses the artifact's interface descriptor into a go-ethereum abi.ABI. This verifies the descriptor is
// well-formed. Returns ErrInvalidABI if it is not.
func (c *CompiledArtifact) ParseABI() (*abi.ABI, error) {
	// A missing descriptor is treated as an empty interface
	descriptor := c.Abi
	if descriptor == nil {
		descriptor = []any{}
	}

	b, err := json.Marshal(descriptor)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidABI, "%s: %v", c.QualifiedKey, err)
	}
	parsed, err := abi.JSON(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidABI, "%s: %v", c.QualifiedKey, err)
	}
	return &parsed, nil
}

// RuntimeBytecodeBytes decodes the runtime bytecode. Bytecode with unlinked library placeholders cannot be decoded and
// yields an error.
func (c *CompiledArtifact) RuntimeBytecodeBytes() ([]byte, error) {
	return hexutil.Decode(NormalizeHex(c.RuntimeBytecode))
}

// splitQualifiedKey splits a "<source path>:<contract name>" key on its last colon. Keys without a colon are treated
// as a bare contract name.
func splitQualifiedKey(key string) (string, string) {
	index := strings.LastIndex(key, ":")
	if index == -1 {
		return "", key
	}
	return key[:index], key[index+1:]
}
