package discovery

// tokenKind describes the category of a lexical token.
type tokenKind int

const (
	tokenIdentifier tokenKind = iota
	tokenNumber
	tokenString
	tokenPunctuation
)

// token is a single lexical unit of Solidity source along with the line it started on.
type token struct {
	kind tokenKind
	text string
	line int
}

// tokenize splits Solidity source into identifiers, numbers, string literals and single-character punctuation.
// Whitespace and comments are discarded. Lines are numbered from 1.
func tokenize(src []byte) []token {
	tokens := make([]token, 0)
	line := 1
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			i++
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			// Line comment, runs until the end of the line
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			// Block comment, an unterminated one consumes the remaining input
			i += 2
			for i < len(src) && !(src[i] == '*' && i+1 < len(src) && src[i+1] == '/') {
				if src[i] == '\n' {
					line++
				}
				i++
			}
			i += 2
		case c == '"' || c == '\'':
			start, startLine := i, line
			i++
			for i < len(src) && src[i] != c && src[i] != '\n' {
				if src[i] == '\\' {
					i++
				}
				i++
			}
			if i < len(src) && src[i] == c {
				i++
			}
			if i > len(src) {
				i = len(src)
			}
			tokens = append(tokens, token{kind: tokenString, text: string(src[start:i]), line: startLine})
		case isIdentifierStart(c):
			start := i
			for i < len(src) && isIdentifierPart(src[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokenIdentifier, text: string(src[start:i]), line: line})
		case isDigit(c):
			start := i
			for i < len(src) && (isIdentifierPart(src[i]) || src[i] == '.') {
				i++
			}
			tokens = append(tokens, token{kind: tokenNumber, text: string(src[start:i]), line: line})
		default:
			tokens = append(tokens, token{kind: tokenPunctuation, text: string(c), line: line})
			i++
		}
	}
	return tokens
}

func isIdentifierStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifierPart(c byte) bool {
	return isIdentifierStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
