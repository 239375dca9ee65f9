/*
Copyright © 2025 Zachary Landes
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zacharylandes/fizzbit-sub000/internal/blend"
	"github.com/zacharylandes/fizzbit-sub000/internal/deck"
	"github.com/zacharylandes/fizzbit-sub000/internal/input"
	"github.com/zacharylandes/fizzbit-sub000/internal/telemetry"
	"github.com/zacharylandes/fizzbit-sub000/internal/ui"
	"github.com/zacharylandes/fizzbit-sub000/models"
	"github.com/zacharylandes/fizzbit-sub000/prompts"
)

var (
	sparkCount       int
	sparkAt          string
	sparkWild        bool
	sparkActionable  bool
	sparkDeep        bool
	sparkFromImage   string
	sparkFromAudio   string
	sparkFromDrawing string
	sparkJSON        bool
)

// sparkCmd represents the spark command
var sparkCmd = &cobra.Command{
	Use:   "spark [subject]",
	Short: "Generate a batch of idea cards",
	Long: `Generate a batch of idea cards from a subject and print them.

The subject can be typed text, or derived from a photo, a drawing, or a
voice-note transcript. The blend position controls the flavor of the batch:
wild, actionable, or deep, or any mix in between.

Examples:
  fizzbit spark "pottery"
  fizzbit spark "weekend plans" --actionable --count 8
  fizzbit spark --from-image garden.jpg
  fizzbit spark --from-audio note-transcript.txt --at 30,60`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSpark,
}

func init() {
	rootCmd.AddCommand(sparkCmd)

	sparkCmd.Flags().IntVar(&sparkCount, "count", 0, "how many ideas to generate (default from config)")
	sparkCmd.Flags().StringVar(&sparkAt, "at", "", "blend position as x,y in 0-100 space")
	sparkCmd.Flags().BoolVar(&sparkWild, "wild", false, "generate from the wild corner")
	sparkCmd.Flags().BoolVar(&sparkActionable, "actionable", false, "generate from the actionable corner")
	sparkCmd.Flags().BoolVar(&sparkDeep, "deep", false, "generate from the deep corner")
	sparkCmd.Flags().StringVar(&sparkFromImage, "from-image", "", "derive the subject from a photo")
	sparkCmd.Flags().StringVar(&sparkFromAudio, "from-audio", "", "derive the subject from a voice-note transcript file")
	sparkCmd.Flags().StringVar(&sparkFromDrawing, "from-drawing", "", "derive the subject from a drawing file")
	sparkCmd.Flags().BoolVar(&sparkJSON, "json", false, "print the batch as JSON")
}

// resolveSubject turns the positional arg or one of the --from-* flags into a
// generation subject plus its source tag.
func resolveSubject(ctx context.Context, args []string) (subject string, source models.IdeaSource, err error) {
	fs := afero.NewOsFs()

	switch {
	case sparkFromImage != "" || sparkFromDrawing != "":
		path := sparkFromImage
		source = models.SourceImage
		if sparkFromDrawing != "" {
			path = sparkFromDrawing
			source = models.SourceDrawing
		}
		img, err := input.ReadImage(fs, path)
		if err != nil {
			return "", "", err
		}
		provider, err := getProvider()
		if err != nil {
			return "", "", err
		}
		system, err := prompts.GetPrompt(prompts.KeyDescribeImage, templatesDir())
		if err != nil {
			return "", "", err
		}
		sp := ui.NewSpinner("describing " + path + "...")
		sp.Start()
		desc, err := provider.DescribeImage(ctx, system, img.Base64, img.MimeType, modelParams(true))
		sp.Stop()
		if err != nil {
			return "", "", fmt.Errorf("describe %s: %w", path, err)
		}
		return desc, source, nil

	case sparkFromAudio != "":
		transcript, err := input.ReadTranscript(fs, sparkFromAudio)
		if err != nil {
			return "", "", err
		}
		return transcript, models.SourceAudio, nil

	case len(args) == 1 && strings.TrimSpace(args[0]) != "":
		return args[0], models.SourceText, nil
	}
	return "", "", fmt.Errorf("provide a subject, or one of --from-image, --from-audio, --from-drawing")
}

// resolvePosition maps the position flags onto a clamped triangle point.
func resolvePosition() (blend.Point, error) {
	v := blend.DefaultVertices
	switch {
	case sparkWild:
		return v.Wild, nil
	case sparkActionable:
		return v.Actionable, nil
	case sparkDeep:
		return v.Deep, nil
	case sparkAt != "":
		parts := strings.SplitN(sparkAt, ",", 2)
		if len(parts) != 2 {
			return blend.Point{}, fmt.Errorf("--at expects x,y (got %q)", sparkAt)
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errX != nil || errY != nil {
			return blend.Point{}, fmt.Errorf("--at expects numeric x,y (got %q)", sparkAt)
		}
		return blend.ClampToTriangle(blend.Point{X: x, Y: y}, v), nil
	}
	// Centroid: an even-handed batch.
	return blend.Point{
		X: (v.Wild.X + v.Actionable.X + v.Deep.X) / 3,
		Y: (v.Wild.Y + v.Actionable.Y + v.Deep.Y) / 3,
	}, nil
}

func runSpark(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout())
	defer cancel()

	subject, source, err := resolveSubject(ctx, args)
	if err != nil {
		return err
	}

	pos, err := resolvePosition()
	if err != nil {
		return err
	}
	weights := blend.Compute(pos, blend.DefaultVertices)

	provider, err := getProvider()
	if err != nil {
		return err
	}

	count := sparkCount
	if count <= 0 {
		count = GetConfig().Deck.BatchCount
	}

	gen := deck.NewLLMGenerator(provider, modelParams(false), templatesDir())
	gen.Source = source
	if source != models.SourceText {
		gen.SourceContent = subject
	}

	sp := ui.NewSpinner(fmt.Sprintf("sparking %d ideas about %q...", count, subject))
	if !sparkJSON {
		sp.Start()
	}
	cards, err := gen.NextBatch(ctx, subject, weights, count)
	if !sparkJSON {
		sp.Stop()
	}
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	ideaStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = ideaStore.Close() }()

	for i := range cards {
		if cards[i], err = ideaStore.CreateIdea(cards[i]); err != nil {
			return fmt.Errorf("persist idea: %w", err)
		}
	}

	tel := getTelemetry()
	defer func() { _ = tel.Close() }()
	tel.Capture(telemetry.EventIdeaGenerated, map[string]interface{}{
		"count":  len(cards),
		"source": string(source),
	})

	if sparkJSON {
		return json.NewEncoder(os.Stdout).Encode(models.IdeaList{Ideas: cards, TotalCount: len(cards)})
	}

	fmt.Print(ui.RenderIdeaList(cards))
	fmt.Println(ui.RenderTriangle(pos, weights))
	return nil
}
