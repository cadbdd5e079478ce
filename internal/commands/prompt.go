package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// promptSecret prompts on errOut and reads one line from in. Used for
// passwords when the --password flag is not given.
func promptSecret(in io.Reader, errOut io.Writer, label string) (string, error) {
	fmt.Fprintf(errOut, "%s: ", label)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.New("no input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
