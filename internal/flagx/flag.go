// Package flagx contains small helpers around command-line and REPL argument
// handling.
package flagx

import (
	"errors"
	"flag"
	"os"
	"strings"
	"unicode"
)

// ErrUnterminatedQuote is returned by Fields when a quoted token is not closed.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// FilterArgs keeps only the allowed flags (and their values) from args, so a
// flag.FlagSet that knows a subset of the program's flags can parse them
// without failing on the rest.
//
// Accepted forms:
//
//	-a http://127.0.0.1:3000
//	-config=conf.json
//
// A value is taken from the next argument only when it does not start with
// '-'.
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

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// JsonConfigFlags returns the config file path given with -c or -config, or
// an empty string. Other arguments are ignored.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}

// Fields splits a REPL command line into tokens. Whitespace separates tokens
// except inside single or double quotes, so `search "red shoes"` yields two
// tokens. Quotes are removed; an empty quoted string yields an empty token.
func Fields(line string) ([]string, error) {
	var (
		out     []string
		cur     strings.Builder
		quote   rune
		inToken bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				out = append(out, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, ErrUnterminatedQuote
	}
	if inToken {
		out = append(out, cur.String())
	}
	return out, nil
}
