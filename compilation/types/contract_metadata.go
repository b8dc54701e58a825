package types

import (
	"bytes"
	"fmt"

	"github.com/fxamacker/cbor"
)

// ContractMetadata is a CBOR-encoded structure describing contract information which is embedded at the end of runtime
// bytecode by the Solidity compiler (unless explicitly directed not to).
// Reference: https://docs.soliditylang.org/en/v0.8.17/metadata.html
type ContractMetadata map[string]any

// metadataPrefixes defines patterns used to locate CBOR-encoded contract metadata appended to bytecode.
var metadataPrefixes = [][]byte{
	{0xa1, 0x65, 98, 122, 122, 114, 48, 0x58, 0x20},  // a1 65 "bzzr0" 0x58 0x20 (solc <= 0.5.8)
	{0xa2, 0x65, 98, 122, 122, 114, 48, 0x58, 0x20},  // a2 65 "bzzr0" 0x58 0x20 (solc >= 0.5.9)
	{0xa2, 0x65, 98, 122, 122, 114, 49, 0x58, 0x20},  // a2 65 "bzzr1" 0x58 0x20 (solc >= 0.5.11)
	{0xa2, 0x64, 0x69, 0x70, 0x66, 0x73, 0x58, 0x22}, // a2 64 "ipfs" 0x58 0x22 (solc >= 0.6.0)
	{0xa3, 0x64, 0x69, 0x70, 0x66, 0x73, 0x58, 0x22}, // a3 64 "ipfs" 0x58 0x22 (experimental features enabled)
}

// solcVersionMetadataKey is the metadata key holding the compiler version.
const solcVersionMetadataKey = "solc"

// ExtractContractMetadata extracts contract metadata from the provided bytecode. If no metadata could be located or
// decoded, nil is returned.
func ExtractContractMetadata(bytecode []byte) ContractMetadata {
	for _, prefix := range metadataPrefixes {
		offset := bytes.LastIndex(bytecode, prefix)
		if offset == -1 {
			continue
		}

		// The trailer is followed by a two byte length, which the decoder treats as trailing data
		var metadata ContractMetadata
		if err := cbor.Unmarshal(bytecode[offset:], &metadata); err != nil {
			continue
		}
		return metadata
	}
	return nil
}

// CompilerVersion returns the compiler version recorded in the metadata, or an empty string if none was recorded.
// Release builds record the version as three bytes, pre-release builds as a full version string.
func (m ContractMetadata) CompilerVersion() string {
	value, ok := m[solcVersionMetadataKey]
	if !ok {
		return ""
	}

	switch v := value.(type) {
	case []byte:
		if len(v) == 3 {
			return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
		}
	case string:
		return v
	}
	return ""
}
