/*
Copyright © 2025 Zachary Landes
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zacharylandes/fizzbit-sub000/internal/sketch"
	"github.com/zacharylandes/fizzbit-sub000/internal/telemetry"
)

var illustrateStdout bool

// illustrateCmd represents the illustrate command
var illustrateCmd = &cobra.Command{
	Use:   "illustrate <text>",
	Short: "Render the deterministic sketch for a text",
	Long: `Render the abstract SVG sketch derived from a text seed. The same
text always yields the same image; idea cards use their title as the seed.

By default the SVG is written into the project sketches directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIllustrate,
}

func init() {
	rootCmd.AddCommand(illustrateCmd)
	illustrateCmd.Flags().BoolVar(&illustrateStdout, "stdout", false, "write the SVG to stdout instead of a file")
}

func runIllustrate(cmd *cobra.Command, args []string) error {
	seed := strings.Join(args, " ")
	svg := sketch.Generate(seed)

	tel := getTelemetry()
	defer func() { _ = tel.Close() }()
	tel.Capture(telemetry.EventIdeaSketched, nil)

	if illustrateStdout {
		_, err := fmt.Fprint(os.Stdout, svg)
		return err
	}

	cfg := GetConfig()
	dir := filepath.Join(cfg.Project.RootDir, cfg.Project.SketchesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sketches directory: %w", err)
	}

	path := filepath.Join(dir, sketchFilename(seed))
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("write sketch: %w", err)
	}

	display := cases.Title(language.English).String(seed)
	fmt.Printf("Sketch for %q written to %s\n", display, path)
	return nil
}

// sketchFilename slugs the seed plus its hash so distinct seeds with the same
// slug cannot overwrite each other.
func sketchFilename(seed string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, seed)
	slug = strings.Trim(slug, "-")
	if len(slug) > 40 {
		slug = slug[:40]
	}
	if slug == "" {
		slug = "sketch"
	}
	return fmt.Sprintf("%s-%08x.svg", slug, uint32(sketch.Hash(seed)))
}
