// Command opfmt reads an OpenStep property list and re-serializes it,
// optionally restricting the read to a subset of top-level keys or
// just checking the input for syntax errors.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/pflag"

	openstep "github.com/Formkunft/swift-openstep-property-list"
)

var (
	indentSpaces = pflag.Int("indent-spaces", 2, "indent nested arrays/dictionaries by this many spaces")
	indentTabs   = pflag.Bool("indent-tabs", false, "indent with tabs instead of spaces")
	indentNone   = pflag.Bool("indent-none", false, "do not indent at all")
	keysFlag     = pflag.String("keys", "", "comma-separated top-level keys to retain; empty means all")
	checkOnly    = pflag.Bool("check", false, "only check the input for syntax errors, do not print output")
	verbose      = pflag.BoolP("verbose", "v", false, "log read/decode progress")
)

func main() {
	pflag.Parse()

	log := stdr.New(log.New(os.Stderr, "", 0))
	if *verbose {
		stdr.SetVerbosity(1)
	}

	if err := run(log); err != nil {
		log.Error(err, "opfmt failed")
		os.Exit(1)
	}
}

func run(log logr.Logger) error {
	path := "-"
	if args := pflag.Args(); len(args) > 0 {
		path = args[0]
	}

	data, err := readInput(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	log.V(1).Info("read input", "path", path, "bytes", len(data))

	var keys *openstep.PathSet
	if *keysFlag != "" {
		var bs []openstep.ByteString
		for _, k := range strings.Split(*keysFlag, ",") {
			bs = append(bs, openstep.NewByteString(k))
		}
		keys = openstep.TopLevelKeySet(bs...)
	}

	var value openstep.Value
	if keys != nil {
		value, err = openstep.DecodeTopLevelKeys(data, keys)
	} else {
		value, err = openstep.Decode(data)
	}
	if err != nil {
		var decErr *openstep.DecodingError
		if errors.As(err, &decErr) {
			log.Error(err, "syntax error", "line", decErr.Line, "column", decErr.Column)
		}
		return err
	}
	log.V(1).Info("decoded", "kind", value.Kind().String())

	if *checkOnly {
		return nil
	}

	enc := openstep.Encoding{Indentation: indentation()}
	out := openstep.EncodeToBytes(value, enc)
	_, err = os.Stdout.Write(out)
	return err
}

func indentation() openstep.Indentation {
	switch {
	case *indentNone:
		return openstep.Indentation{}
	case *indentTabs:
		return openstep.IndentTabs()
	default:
		return openstep.IndentSpaces(*indentSpaces)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
