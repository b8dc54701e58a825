// Package naming converts Solidity source and contract identifiers into the names used for generated Go output.
package naming

import "strings"

// ModuleFileSuffix is the file suffix given to every generated module. With it, module names ending in "_test" or in a
// GOOS/GOARCH word still build as ordinary package files.
const ModuleFileSuffix = ".gen.go"

// FileStemToModuleName converts a source file stem written as a run of capitalized words (e.g. "OffchainLookup") into
// a lowercase, underscore-separated name (e.g. "offchain_lookup"). A word starts with an uppercase letter and is
// followed by any number of lowercase letters. Characters which do not belong to a word are kept as their own parts.
func FileStemToModuleName(stem string) string {
	parts := splitRuns(stem, isUpper, isLower)
	for i := range parts {
		parts[i] = strings.ToLower(parts[i])
	}
	return strings.Join(parts, "_")
}

// ContractNameToPrefix converts a contract identifier (e.g. "OffchainLookup") into the uppercase, underscore-separated
// prefix shared by all constants generated for that contract (e.g. "OFFCHAIN_LOOKUP"). A run starts with an uppercase
// letter or digit and is followed by any number of lowercase letters or digits.
func ContractNameToPrefix(name string) string {
	parts := splitRuns(name, func(c byte) bool { return isUpper(c) || isDigit(c) }, func(c byte) bool { return isLower(c) || isDigit(c) })
	for i := range parts {
		parts[i] = strings.ToUpper(parts[i])
	}
	return strings.Join(parts, "_")
}

// ModuleFileName returns the file name of the generated module for a source file stem.
func ModuleFileName(stem string) string {
	return FileStemToModuleName(stem) + ModuleFileSuffix
}

// splitRuns splits s into maximal runs which begin with a byte accepted by isStart and continue with bytes accepted by
// isContinue. Bytes between runs are grouped together and returned as parts of their own. Empty parts are never
// returned.
func splitRuns(s string, isStart func(byte) bool, isContinue func(byte) bool) []string {
	parts := make([]string, 0)
	gapStart := 0
	for i := 0; i < len(s); {
		if !isStart(s[i]) {
			i++
			continue
		}

		// Flush whatever preceded this run
		if gapStart < i {
			parts = append(parts, s[gapStart:i])
		}

		// Consume the run
		end := i + 1
		for end < len(s) && isContinue(s[end]) {
			end++
		}
		parts = append(parts, s[i:end])
		i = end
		gapStart = end
	}
	if gapStart < len(s) {
		parts = append(parts, s[gapStart:])
	}
	return parts
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
