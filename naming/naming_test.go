package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFileStemToModuleName checks the conversion of source file stems into generated module names.
func TestFileStemToModuleName(t *testing.T) {
	testCases := []struct {
		stem     string
		expected string
	}{
		{"OffchainLookup", "offchain_lookup"},
		{"Math", "math"},
		{"StringContract", "string_contract"},
		{"EmitterContract", "emitter_contract"},
		{"ERC20Token", "e_r_c_20_token"},
		{"PayableTester", "payable_tester"},
		{"lowercase", "lowercase"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.EqualValues(t, tc.expected, FileStemToModuleName(tc.stem), "stem %q", tc.stem)
	}
}

// TestContractNameToPrefix checks the conversion of contract names into constant prefixes.
func TestContractNameToPrefix(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{"OffchainLookup", "OFFCHAIN_LOOKUP"},
		{"Foo", "FOO"},
		{"ERC20Token", "E_R_C20_TOKEN"},
		{"Revert2Contract", "REVERT2_CONTRACT"},
		{"SimpleStorage", "SIMPLE_STORAGE"},
		{"A", "A"},
	}

	for _, tc := range testCases {
		assert.EqualValues(t, tc.expected, ContractNameToPrefix(tc.name), "contract %q", tc.name)
	}
}

// TestFileStemRoundTrip verifies that the parts produced for a capitalized word run reconstruct the original
// identifier once they are recapitalized and joined back together.
func TestFileStemRoundTrip(t *testing.T) {
	identifiers := []string{"OffchainLookup", "Fallback", "ReflectionContract", "TupleContracts", "ABC"}
	for _, identifier := range identifiers {
		moduleName := FileStemToModuleName(identifier)

		// The module name should be lowercase and underscore-separated
		assert.EqualValues(t, strings.ToLower(moduleName), moduleName)
		assert.NotContains(t, moduleName, "__")

		// Recapitalize each part and join them back together
		var rebuilt strings.Builder
		for _, part := range strings.Split(moduleName, "_") {
			rebuilt.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
		assert.EqualValues(t, identifier, rebuilt.String())
	}
}

// TestTransformsAreDeterministic verifies repeated calls return identical results.
func TestTransformsAreDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.EqualValues(t, "offchain_lookup", FileStemToModuleName("OffchainLookup"))
		assert.EqualValues(t, "OFFCHAIN_LOOKUP", ContractNameToPrefix("OffchainLookup"))
	}
	assert.EqualValues(t, "offchain_lookup.gen.go", ModuleFileName("OffchainLookup"))
}

// TestModuleFileNameWithBuildSuffixes ensures stems ending in words the go tool treats specially still produce ordinary
// package files.
func TestModuleFileNameWithBuildSuffixes(t *testing.T) {
	testCases := []struct {
		stem     string
		expected string
	}{
		{"ReflectorTest", "reflector_test.gen.go"},
		{"TokenLinux", "token_linux.gen.go"},
		{"BridgeWindows", "bridge_windows.gen.go"},
		{"VaultArm", "vault_arm.gen.go"},
	}

	for _, tc := range testCases {
		fileName := ModuleFileName(tc.stem)
		assert.EqualValues(t, tc.expected, fileName, "stem %q", tc.stem)

		// Neither a test file nor a GOOS/GOARCH constrained one
		base := strings.TrimSuffix(fileName, ".go")
		assert.False(t, strings.HasSuffix(base, "_test"), "stem %q", tc.stem)
		for _, constraint := range []string{"_linux", "_windows", "_arm"} {
			assert.False(t, strings.HasSuffix(base, constraint), "stem %q", tc.stem)
		}
	}
}
