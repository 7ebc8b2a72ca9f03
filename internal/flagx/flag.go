// Package flagx contains helpers for picking a subset of flags out of the
// command line so that independent configuration stages can each parse only
// the flags they own.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// Dashed expands bare flag names into both accepted spellings,
// e.g. "username" -> "-username", "--username".
func Dashed(names ...string) []string {
	out := make([]string, 0, len(names)*2)
	for _, n := range names {
		n = strings.TrimLeft(n, "-")
		out = append(out, "-"+n, "--"+n)
	}
	return out
}

// FilterArgs returns the arguments from args that belong to allowedFlags,
// together with their values.
//
// Both "-f value" and "-f=value" forms are recognised. A token following an
// allowed flag is treated as its value unless it starts with "-".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// lookupString parses only the given names out of os.Args and returns the
// value of the last one set. Unknown flags and parse errors are ignored.
func lookupString(set string, names ...string) string {
	var value string

	fs := flag.NewFlagSet(set, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, n, "", "")
	}
	_ = fs.Parse(FilterArgs(os.Args[1:], Dashed(names...)))

	return value
}

// JsonConfigFlags returns the JSON config path given via -c or -config,
// or an empty string when neither is present.
func JsonConfigFlags() string {
	return lookupString("json", "c", "config")
}

// EnvFileFlags returns the dotenv file path given via -env-file, or an empty
// string when it is absent.
func EnvFileFlags() string {
	return lookupString("dotenv", "env-file")
}
