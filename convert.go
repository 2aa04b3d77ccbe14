package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/dmahugh/backup-verifier/pkg/listing"
	"github.com/dmahugh/backup-verifier/pkg/report"
	"github.com/dmahugh/backup-verifier/pkg/store"
)

type Convert struct {
	Input  string `arg:"" type:"path" help:"Raw directory listing to convert."`
	Output string `arg:"" optional:"" type:"path" help:"Destination file, defaults to the input name with a .csv extension."`

	RootPrefix string `help:"Exact root prefix stripped from folder paths, disables auto-detection."`
	MasterRoot string `help:"Path marker identifying the master tree during root auto-detection."`
}

func convert(params *Convert) error {
	output := params.Output
	if output == "" {
		output = strings.TrimSuffix(params.Input, filepath.Ext(params.Input)) + ".csv"
	}

	in, err := os.Open(params.Input)
	if err != nil {
		return fmt.Errorf("open listing %s: %w", params.Input, err)
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer out.Close()

	console := &report.ConsoleSink{W: os.Stdout}
	opts := listing.Options{
		RootPrefix: params.RootPrefix,
		MasterRoot: params.MasterRoot,
		Progress: func(records int) {
			console.Status(fmt.Sprintf("%s records parsed from %s ...", humanize.Comma(int64(records)), params.Input))
		},
	}

	writer, err := store.NewWriter(out)
	if err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	records := 0
	sc := listing.NewScanner(in, opts)
	for sc.Scan() {
		if err := writer.Write(sc.Record()); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		records++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", params.Input, err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	if sc.Skipped() > 0 {
		log.Warn().Int("lines", sc.Skipped()).Str("source", params.Input).Msg("skipped malformed lines")
	}
	console.Print(fmt.Sprintf("%s records written to %s", humanize.Comma(int64(records)), output))
	return nil
}
