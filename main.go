package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/stoewer/go-strcase"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/krateoplatformops/oas2ts/internal/logger"
	"github.com/krateoplatformops/oas2ts/internal/tools/config"
	"github.com/krateoplatformops/oas2ts/internal/tools/filegetter"
	"github.com/krateoplatformops/oas2ts/internal/tools/formatter"
	hasher "github.com/krateoplatformops/oas2ts/internal/tools/hash"
	"github.com/krateoplatformops/oas2ts/internal/tools/oas2ts"
	"github.com/krateoplatformops/oas2ts/internal/tools/oasdoc"
)

const (
	appName = "oas2ts"
)

type options struct {
	Input          string
	Output         string
	Config         string
	Prettier       string
	PrettierConfig string
	Validate       bool
	Dump           bool
}

func main() {
	envVarPrefix := strcase.UpperSnakeCase(appName)
	envVar := func(name string) string {
		return fmt.Sprintf("%s_%s", envVarPrefix, name)
	}

	app := kingpin.New(appName, "Compile OpenAPI v2 and v3 documents into TypeScript interface declarations.")
	var o options
	app.Arg("input", "Path or URL of the OpenAPI document (anything go-getter accepts).").Required().StringVar(&o.Input)
	app.Flag("output", "Write the declarations to this file instead of stdout.").Short('o').Envar(envVar("OUTPUT")).StringVar(&o.Output)
	app.Flag("config", "YAML or JSON config file.").Envar(envVar("CONFIG")).StringVar(&o.Config)
	app.Flag("prettier", "prettier command used for formatting.").Default("prettier").Envar(envVar("PRETTIER")).StringVar(&o.Prettier)
	app.Flag("prettier-config", "prettier config file.").Envar(envVar("PRETTIER_CONFIG")).StringVar(&o.PrettierConfig)
	app.Flag("validate", "Report libopenapi model errors before compiling.").Envar(envVar("VALIDATE")).BoolVar(&o.Validate)
	app.Flag("dump", "Print the decoded document to stderr.").Envar(envVar("DUMP")).BoolVar(&o.Dump)
	debug := app.Flag("debug", "Run with debug logging.").Envar(envVar("DEBUG")).Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	zl, err := newZap(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create logger: %v\n", err)
		os.Exit(1)
	}
	defer zl.Sync()
	log := logger.New(zl.Named(strcase.KebabCase(appName)), *debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o, os.Stdout, os.Stderr, log); err != nil {
		log.Error(err, "Cannot compile document", "input", o.Input)
		stop()
		zl.Sync()
		os.Exit(1)
	}
}

func newZap(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, o options, stdout, stderr io.Writer, log *logger.Logger) error {
	cfg := &oas2ts.Config{}
	if o.Config != "" {
		file, err := config.Load(o.Config)
		if err != nil {
			return err
		}
		if o.Output == "" {
			o.Output = file.Output
		}
		if o.PrettierConfig == "" {
			o.PrettierConfig = file.PrettierConfig
		}
		o.Validate = o.Validate || file.Validate
		cfg.PropertyMapper = file.PropertyMapper.Mapper()
		log.Debug("Loaded config", "path", o.Config, "rules", len(file.PropertyMapper.Rules))
	}

	content, err := filegetter.Get(ctx, o.Input)
	if err != nil {
		return err
	}
	log.Debug("Fetched document", "input", o.Input, "bytes", len(content))

	if o.Validate {
		for _, verr := range oasdoc.Validate(content) {
			log.Warn(verr, "Document does not validate")
		}
	}

	doc, err := oasdoc.Parse(ctx, content)
	if err != nil {
		return err
	}
	log.Debug("Parsed document", "dialect", doc.Dialect.String())
	if o.Dump {
		spew.Fdump(stderr, doc)
	}

	res, err := oas2ts.Compile(doc, cfg)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		log.Warn(w, "Compiled with warning")
	}

	text, ferr := formatter.Format(ctx, res.Text, formatter.Options{
		Prettier:       o.Prettier,
		PrettierConfig: o.PrettierConfig,
	})
	if ferr != nil {
		log.Debug("Formatted with the built-in indenter", "reason", ferr.Error())
	}

	if o.Output == "" {
		_, err := io.WriteString(stdout, text)
		return err
	}
	return writeOutput(o.Output, []byte(text), log)
}

// writeOutput leaves the file untouched when its content would not change.
func writeOutput(path string, content []byte, log *logger.Logger) error {
	same, err := hasher.SameAsFile(path, content)
	if err != nil {
		return fmt.Errorf("checking %q: %w", path, err)
	}
	if same {
		log.Info("Output is up to date", "path", path)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	log.Info("Wrote declarations", "path", path, "hash", hasher.Of(content))
	return nil
}
