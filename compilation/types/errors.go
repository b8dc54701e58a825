package types

import "github.com/pkg/errors"

var (
	// ErrArtifactNotFound indicates no compiled artifact matched a discovered contract name.
	ErrArtifactNotFound = errors.New("could not find compiled data for contract")

	// ErrAmbiguousArtifact indicates more than one compiled artifact matched a contract name and none of them could be
	// preferred over the others.
	ErrAmbiguousArtifact = errors.New("found more than one compiled artifact for contract")

	// ErrInvalidABI indicates the interface descriptor of a compiled artifact could not be parsed.
	ErrInvalidABI = errors.New("invalid contract abi")
)
