package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	uv "github.com/Frizi/ultraviolet"
	"github.com/Frizi/ultraviolet/codec"
	"github.com/Frizi/ultraviolet/i18n"
)

const appName = "uvconv"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "convert":
		err = convertCmd(os.Args[2:], os.Stdin, os.Stdout, os.Stderr)
	case "schema":
		err = schemaCmd(os.Args[2:], os.Stdout)
	case "formats":
		fmt.Fprintln(os.Stdout, strings.Join(codec.StreamNames(), "\n"))
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "uvconv converts ultraviolet aggregates between wire formats\n\nUsage:\n  uvconv convert [-config file.toml] [-type vec3] [-from json] [-to yaml] [-list] [input]\n  uvconv schema -type vec3 [-policy structured]\n  uvconv formats")
}

func convertCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath, typ, from, to, inPolicy, outPolicy, level, lang, output string
		list, allowTrailing, rejectNonFinite, failFast                      bool
		maxDepth                                                            int
		maxBytes                                                            int64
	)
	fs.StringVar(&configPath, "config", "", "TOML config file")
	fs.StringVar(&typ, "type", "", "aggregate type ("+strings.Join(typeNames(), ", ")+")")
	fs.StringVar(&from, "from", "", "input format")
	fs.StringVar(&to, "to", "", "output format")
	fs.StringVar(&inPolicy, "in-policy", "", "input policy (structured, dense)")
	fs.StringVar(&outPolicy, "out-policy", "", "output policy (structured, dense)")
	fs.BoolVar(&list, "list", false, "input is a sequence of aggregates")
	fs.BoolVar(&allowTrailing, "allow-trailing", false, "skip sequence elements past the arity")
	fs.BoolVar(&rejectNonFinite, "reject-non-finite", false, "reject NaN and infinities")
	fs.BoolVar(&failFast, "fail-fast", false, "stop at the first bad list element")
	fs.IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth (0: unlimited)")
	fs.Int64Var(&maxBytes, "max-bytes", 0, "maximum input size (0: unlimited)")
	fs.StringVar(&level, "log-level", "", "log level")
	fs.StringVar(&lang, "lang", "", "message language (en, ja)")
	fs.StringVar(&output, "o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = loadConfig(configPath, cfg); err != nil {
			return err
		}
	}

	// flags set explicitly win over the file
	var perr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			cfg.Type = strings.ToLower(typ)
		case "from":
			cfg.From = from
		case "to":
			cfg.To = to
		case "in-policy":
			p, err := parsePolicy(inPolicy)
			perr = errors.Join(perr, err)
			cfg.InPolicy = p
		case "out-policy":
			p, err := parsePolicy(outPolicy)
			perr = errors.Join(perr, err)
			cfg.OutPolicy = p
		case "list":
			cfg.List = list
		case "allow-trailing":
			cfg.Decode.Strictness.AllowTrailing = allowTrailing
		case "reject-non-finite":
			cfg.Decode.Strictness.RejectNonFinite = rejectNonFinite
		case "fail-fast":
			cfg.Decode.FailFast = failFast
		case "max-depth":
			cfg.Decode.MaxDepth = maxDepth
		case "max-bytes":
			cfg.Decode.MaxBytes = maxBytes
		case "log-level":
			l, err := zerolog.ParseLevel(level)
			perr = errors.Join(perr, err)
			cfg.LogLevel = l
		case "lang":
			cfg.Language = lang
		}
	})
	if perr != nil {
		return perr
	}
	i18n.SetLanguage(cfg.Language)

	logger := initLogger(appName, stderr, cfg.LogLevel)

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	out := stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return run(cfg, in, out, logger)
}

func schemaCmd(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	var typ, policy string
	fs.StringVar(&typ, "type", "", "aggregate type")
	fs.StringVar(&policy, "policy", "", "policy (structured, dense)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	t, ok := tables[strings.ToLower(typ)]
	if !ok {
		return fmt.Errorf("unknown type %q (want one of %s)", typ, strings.Join(typeNames(), ", "))
	}
	p, err := parsePolicy(policy)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(uv.JSONSchema(t, p))
}
