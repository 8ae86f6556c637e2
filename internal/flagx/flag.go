// Package flagx helps several independent flag sets share os.Args: each
// consumer picks out only the flags it understands and parses those.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps the allowed flags from args together with their values.
// See Filter.
func FilterArgs(args []string, allowedFlags []string) []string {
	return Filter(args, allowedFlags, nil)
}

// Filter returns the subset of args made of the flags listed in valued or
// switches, in their original order.
//
//   - "-flag=value" forms are kept whole for either kind of flag.
//   - A valued flag given as a separate token takes the next token as its value
//     unless that token starts with "-".
//   - A switch (boolean flag) never consumes the next token.
//
// The result is never nil.
func Filter(args []string, valued []string, switches []string) []string {
	kinds := make(map[string]bool, len(valued)+len(switches))
	for _, f := range valued {
		kinds[f] = true
	}
	for _, f := range switches {
		kinds[f] = false
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, found := strings.Cut(arg, "="); found {
			if _, ok := kinds[name]; ok {
				out = append(out, arg)
			}
			continue
		}

		takesValue, ok := kinds[arg]
		if !ok {
			continue
		}
		out = append(out, arg)
		if takesValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// ConfigFileFlag returns the value of -c / -config found in args (usually
// os.Args[1:]), or "" when neither is present. The last occurrence wins.
func ConfigFileFlag(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
