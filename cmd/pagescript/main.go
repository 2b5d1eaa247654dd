// Command pagescript runs a JavaScript file against a document description
// and prints the resulting geometry.
//
// Usage:
//
//	pagescript [flags] <script.js>
//
// Environment variables (PAGESCRIPT_UNITS, PAGESCRIPT_REFERENCE_POINT,
// PAGESCRIPT_TIMEOUT) provide defaults that flags override.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/pagescript/pagescript/coords"
	"github.com/pagescript/pagescript/host"
	"github.com/pagescript/pagescript/observability"
	"github.com/pagescript/pagescript/scripting"
	"github.com/pagescript/pagescript/transform"
	"github.com/pagescript/pagescript/units"
)

type envDefaults struct {
	Units          string        `envconfig:"PAGESCRIPT_UNITS" default:"pt"`
	ReferencePoint string        `envconfig:"PAGESCRIPT_REFERENCE_POINT" default:"topLeft"`
	Timeout        time.Duration `envconfig:"PAGESCRIPT_TIMEOUT" default:"10s"`
}

type options struct {
	scriptPath string
	docPath    string
	outPath    string
	units      string
	refPoint   string
	timeout    time.Duration
	verbose    bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pagescript: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "pagescript: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var env envDefaults
	if err := envconfig.Process("", &env); err != nil {
		return options{}, err
	}

	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: pagescript [flags] <script.js>\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.docPath, "doc", "", "Document description (JSON); empty starts with one empty page")
	flag.StringVar(&opts.outPath, "out", "-", "Where to write the resulting document JSON (- for stdout)")
	flag.StringVar(&opts.units, "units", env.Units, "Unit system: pt, mm, cm, in, px")
	flag.StringVar(&opts.refPoint, "ref", env.ReferencePoint, "Reference point, e.g. topLeft, center, or a numpad digit 1-9")
	flag.DurationVar(&opts.timeout, "timeout", env.Timeout, "Script execution timeout")
	flag.BoolVar(&opts.verbose, "v", false, "Log matrix and transform activity to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return options{}, fmt.Errorf("exactly one script file is required")
	}
	opts.scriptPath = flag.Arg(0)
	return opts, nil
}

func run(opts options) error {
	script, err := os.ReadFile(opts.scriptPath)
	if err != nil {
		return err
	}

	doc, err := loadDocument(opts.docPath)
	if err != nil {
		return err
	}

	unit, err := units.Parse(opts.units)
	if err != nil {
		return err
	}
	ref, err := transform.ParseRefPoint(opts.refPoint)
	if err != nil {
		return err
	}

	log := observability.Logger(observability.NopLogger{})
	if opts.verbose {
		log = observability.TextLogger(os.Stderr)
	}

	sessionOpts := []transform.Option{
		transform.WithUnit(unit),
		transform.WithReferencePoint(ref),
		transform.WithLogger(log),
	}
	if len(doc.Pages) > 0 {
		sessionOpts = append(sessionOpts, transform.WithOrigin(doc.Pages[0].Origin))
	}
	session := transform.NewSession(doc, sessionOpts...)

	engine := scripting.NewEngine()
	if err := engine.RegisterAPI(session, doc); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	start := time.Now()
	result, err := engine.Execute(ctx, string(script))
	if err != nil {
		return fmt.Errorf("running %s: %w", opts.scriptPath, err)
	}
	log.Info("script finished",
		observability.String("metric", observability.MetricScriptTime),
		observability.Float64("seconds", time.Since(start).Seconds()))

	if result != nil {
		fmt.Fprintf(os.Stderr, "result: %v\n", result)
	}

	out := os.Stdout
	if opts.outPath != "-" {
		f, err := os.Create(opts.outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return host.EncodeDocument(out, doc)
}

// loadDocument reads the document description, or builds an empty
// single-page document when none is given.
func loadDocument(path string) (*host.Document, error) {
	if path == "" {
		doc := host.NewDocument()
		doc.AddPage("1", coords.Point{})
		return doc, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return host.DecodeDocument(f)
}
