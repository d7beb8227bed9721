package console

import (
	"regexp"
	"strings"
)

// argPattern matches key="quoted value" or key=value.
var argPattern = regexp.MustCompile(`(\w+)="([^"]+)"|(\w+)=(\S+)`) //nolint: gochecknoglobals

// ParseLine splits a command line into its command keyword and key=value
// arguments. Tokens that are not key=value pairs are ignored. ok is false for
// blank lines.
func ParseLine(line string) (cmd string, args map[string]string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, false
	}

	args = make(map[string]string)
	rest := strings.Join(fields[1:], " ")
	for _, m := range argPattern.FindAllStringSubmatch(rest, -1) {
		switch {
		case m[1] != "":
			args[m[1]] = m[2]
		case m[3] != "":
			args[m[3]] = m[4]
		}
	}

	return fields[0], args, true
}
