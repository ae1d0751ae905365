package main

import (
	"io"
	"os"

	"github.com/woozymasta/savedplaces/internal/config"
	"github.com/woozymasta/savedplaces/internal/export"
	"github.com/woozymasta/savedplaces/internal/logger"
	"github.com/woozymasta/savedplaces/internal/places"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"  env:"CONFIG_FILE" description:"Path to configuration file"`
	Input      string `short:"i" long:"in"      description:"Input file path (Saved Places JSON). Reads from stdin if empty"`
	Output     string `short:"o" long:"out"     description:"Output file path. Writes to stdout if empty"`
	Format     string `short:"f" long:"format"  description:"Output format, guessed from --out extension if empty" choice:"gpx" choice:"csv" choice:"html" choice:"geojson" choice:"yaml" choice:"xlsx"`
	Title      string `short:"t" long:"title"   description:"HTML launcher title"`
	Workers    int    `short:"w" long:"workers" env:"WORKERS" description:"Number of goroutines resolving features"`
	Minify     bool   `short:"m" long:"minify"  description:"Minify HTML output"`
}

func main() {
	// Optional, flags fall back to environment variables
	_ = godotenv.Load()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	if opts.Title != "" {
		cfg.Title = opts.Title
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.Minify {
		cfg.Minify = true
	}

	format := resolveFormat(opts.Format, opts.Output)

	// Read Input
	var inputData []byte
	var err error

	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.Input).Msg("Failed to read input file")
		}
	} else {
		inputData, err = io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read stdin")
		}
	}

	resolver := places.Resolver{Workers: cfg.Workers}
	res, err := resolver.Resolve(inputData)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.Input).Msg("Failed to parse saved places")
	}

	if len(res.Skipped) > 0 {
		log.Debug().
			Ints("ordinals", res.Skipped).
			Msg("Features without coordinates skipped")
	}

	for _, p := range res.Places {
		if !p.InRange() {
			log.Warn().
				Int("ordinal", p.Ordinal).
				Str("name", p.Name).
				Float64("lat", p.Latitude).
				Float64("lon", p.Longitude).
				Msg("Coordinates out of range, kept as is")
		}
	}

	exportOpts := cfg.ExportOptions()

	if opts.Output != "" {
		if err := export.WriteFile(opts.Output, format, res.Places, exportOpts); err != nil {
			log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write output file")
		}
	} else if err := export.Write(os.Stdout, format, res.Places, exportOpts); err != nil {
		log.Fatal().Err(err).Msg("Failed to write output")
	}

	log.Info().
		Int("places", len(res.Places)).
		Int("features", res.Total).
		Int("skipped", len(res.Skipped)).
		Str("format", format).
		Str("output", outputName(opts.Output)).
		Msgf("Wrote %d places", len(res.Places))
}

// resolveFormat prefers the explicit format, then the output extension.
func resolveFormat(format, output string) string {
	if format != "" {
		return format
	}
	if guessed := export.FormatFromPath(output); guessed != "" {
		return guessed
	}
	return export.DefaultFormat
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
