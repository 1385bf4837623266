// Package prompt implements the interactive consent surfaces: a y/N
// confirmation and a checkbox multi-select.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirm asks a yes/no question and reads the answer from stdin.
// Only an explicit "y" or "yes" counts as consent; everything else,
// including EOF, declines.
func Confirm(question string) (bool, error) {
	return confirmFrom(os.Stdin, os.Stdout, question)
}

func confirmFrom(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", question)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
