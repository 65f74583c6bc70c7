// Package main provides the CLI entrypoint for csv2dataverse.
//
// csv2dataverse converts a metadata spreadsheet exported as CSV into dataset
// JSON for a Dataverse repository:
//   - One data row becomes one dataset document
//   - Citation fields are decoded against the built-in field directory
//   - Missing author, contact email and description are backfilled
//   - A single row is written as an object, several rows as an array
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/assemble"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/config"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/convert"
)

const defaultOutput = "output_metadata.json"

func main() {
	input := flag.String("input", "", "input CSV file (or pass it as the first argument)")
	output := flag.String("output", defaultOutput, "output JSON file")
	author := flag.String("author", "", "default author name when a row has none")
	email := flag.String("email", "", "default contact email when a row has none")
	description := flag.String("description", "", "default description when a row has none")
	configPath := flag.String("config", "", "YAML config file")
	directoryPath := flag.String("directory", "", "YAML field directory overlay (overrides the config file)")
	authority := flag.String("authority", "", "registrant prefix for rows without one (overrides the config file)")
	delimiter := flag.String("delimiter", ",", "single-character field delimiter")
	sanitize := flag.Bool("sanitize", false, "strip unsafe HTML from descriptions; the result is HTML, so & < > in plain text become entities")
	prompt := flag.Bool("prompt", false, "ask for missing defaults interactively")
	saveConfig := flag.String("save-config", "", "write the resolved config to this file")
	watch := flag.Bool("watch", false, "convert again whenever the input changes")
	dump := flag.Bool("dump", false, "print the resolved column bindings and exit")
	quiet := flag.Bool("quiet", false, "suppress progress output")
	flag.Parse()

	if *input == "" {
		*input = flag.Arg(0)
	}

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	comma, size := utf8.DecodeRuneInString(*delimiter)
	if size == 0 || size != len(*delimiter) {
		log.Fatalf("invalid delimiter: %q", *delimiter)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *dump {
		if err := dumpBindings(os.Stdout, *input, comma); err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}

		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *directoryPath != "" {
		cfg.Directory = *directoryPath
	}

	if *authority != "" {
		cfg.Authority = *authority
	}

	cfg.SanitizeDescriptions = cfg.SanitizeDescriptions || *sanitize

	caller := cfg.MergeDefaults(assemble.Defaults{
		Contributor:  *author,
		ContactEmail: *email,
		Description:  *description,
	})

	if *prompt {
		caller, err = promptDefaults(ctx, caller)
		if err != nil {
			log.Fatalf("Failed to read defaults: %v", err)
		}
	}

	if *saveConfig != "" {
		cfg.Defaults = caller
		if err := config.WriteFile(cfg, *saveConfig); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}
	}

	asmOpts, err := cfg.AssembleOptions(caller, nil)
	if err != nil {
		log.Fatalf("Failed to load field directory: %v", err)
	}

	opts := convert.Options{
		Assemble: asmOpts,
		Comma:    comma,
	}

	if !*quiet {
		opts.Logger = log.New(os.Stdout, "", 0)
	}

	if *watch {
		if err := convert.Watch(ctx, *input, *output, opts); err != nil {
			log.Fatalf("Watch failed: %v", err)
		}

		return
	}

	if _, err := convert.ConvertFile(*input, *output, opts); err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}

	return config.LoadFile(path)
}

func promptDefaults(ctx context.Context, caller assemble.Defaults) (assemble.Defaults, error) {
	p, err := config.NewSurveyPrompter()
	if errors.Is(err, config.ErrNoTerminal) {
		log.Printf("-prompt ignored: %v", err)
		return caller, nil
	}

	if err != nil {
		return caller, err
	}

	return config.PromptDefaults(ctx, p, caller, config.EnvDefaults(nil))
}

func dumpBindings(w io.Writer, path string, comma rune) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := convert.ReadTable(f, comma)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%d columns, %d rows\n", table.Header.Len(), len(table.Records))
	spew.Fdump(w, table.Header.Bindings())

	return nil
}
