// Package discovery locates contract declarations within Solidity source files.
package discovery

import (
	"os"

	"github.com/pkg/errors"
)

const (
	contractKeyword = "contract"
	abstractKeyword = "abstract"
)

// ErrMalformedDeclaration indicates a contract keyword was found which is not followed by a contract name.
var ErrMalformedDeclaration = errors.New("malformed contract declaration")

// Declaration describes a non-abstract contract declared within a source file.
type Declaration struct {
	// Name is the identifier the contract was declared with.
	Name string

	// Line is the line number the contract keyword appeared on, starting from 1.
	Line int
}

// DiscoverContracts scans Solidity source and returns every non-abstract contract declaration, in the order they
// appear. A declaration is the contract keyword followed by a name, with a header which opens a body with '{' before
// any ';'. Declarations preceded by the abstract keyword are excluded. Repeated declarations of the same name are all
// returned.
// Returns ErrMalformedDeclaration if a contract keyword is not followed by a name.
func DiscoverContracts(src []byte) ([]Declaration, error) {
	tokens := tokenize(src)
	declarations := make([]Declaration, 0)

	for i, tok := range tokens {
		if tok.kind != tokenIdentifier || tok.text != contractKeyword {
			continue
		}

		// The contract name must follow the keyword directly
		if i+1 >= len(tokens) || tokens[i+1].kind != tokenIdentifier {
			return nil, errors.Wrapf(ErrMalformedDeclaration, "line %d: expected a contract name after '%s'", tok.line, contractKeyword)
		}
		name := tokens[i+1].text

		// Only declarations which open a body count
		if !opensBody(tokens[i+2:]) {
			continue
		}

		// Skip abstract contracts
		if i > 0 && tokens[i-1].kind == tokenIdentifier && tokens[i-1].text == abstractKeyword {
			continue
		}

		declarations = append(declarations, Declaration{Name: name, Line: tok.line})
	}
	return declarations, nil
}

// DiscoverContractsInFile reads the source file at the provided path and returns its contract declarations.
func DiscoverContractsInFile(path string) ([]Declaration, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	declarations, err := DiscoverContracts(src)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to discover contracts in %s", path)
	}
	return declarations, nil
}

// Names returns the names of the provided declarations, preserving their order.
func Names(declarations []Declaration) []string {
	names := make([]string, len(declarations))
	for i, declaration := range declarations {
		names[i] = declaration.Name
	}
	return names
}

// opensBody reports whether the header tokens of a declaration reach a '{' before a ';'.
func opensBody(header []token) bool {
	for _, tok := range header {
		if tok.kind != tokenPunctuation {
			continue
		}
		switch tok.text {
		case "{":
			return true
		case ";", "}":
			return false
		}
	}
	return false
}
