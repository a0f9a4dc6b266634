package console

import (
	"errors"
	"fmt"

	"github.com/mattn/go-shellwords"
)

var (
	ErrMalformedLine   = errors.New("malformed command line")
	ErrUnsupportedChar = errors.New("command separators and redirects are not supported")
)

// Tokenize splits a command line the way a POSIX shell would: single and
// double quotes group text, also inside a key="value" token, and a backslash
// escapes the next character. Environment variables are not expanded.
func Tokenize(line string) ([]string, error) {
	p := shellwords.NewParser()
	p.ParseEnv = false
	p.ParseBacktick = false

	args, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	if p.Position >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChar, line[p.Position:])
	}
	return args, nil
}
