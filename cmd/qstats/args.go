// cmd/qstats/args.go
package qstats

import "strings"

// optionalArgShorts are the short flags whose value may be attached directly.
const optionalArgShorts = "fb"

// normalizeArgs rewrites "-f8" and "-mb8" into the "-f=8" form pflag
// understands for flags with an optional value. Everything after "--" is
// left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		out = append(out, normalizeShort(arg))
	}
	return out
}

func normalizeShort(arg string) string {
	if len(arg) < 3 || arg[0] != '-' || arg[1] == '-' {
		return arg
	}
	for j := 1; j < len(arg)-1; j++ {
		if strings.IndexByte(optionalArgShorts, arg[j]) < 0 {
			continue
		}
		if arg[j+1] == '=' {
			return arg
		}
		return arg[:j+1] + "=" + arg[j+1:]
	}
	return arg
}
