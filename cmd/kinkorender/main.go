// Command kinkorender renders Kinko-ryū score files to SVG or PNG.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/urfave/cli/v3"

	"github.com/gogpu/kinko"
	"github.com/gogpu/kinko/ggsurface"
	"github.com/gogpu/kinko/pitch"
	"github.com/gogpu/kinko/score"
	"github.com/gogpu/kinko/svgsurface"
)

// Canvas padding beyond the laid-out content.
const canvasPad = 40

func main() {
	cmd := &cli.Command{
		Name:  "kinkorender",
		Usage: "Render Kinko-ryū shakuhachi notation from YAML score files",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  "Render a score to SVG (and optionally PNG)",
				Action: runRender,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "score",
						Aliases:  []string{"s"},
						Usage:    "Path to the YAML score file",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "SVG output path",
						Value:   "score.svg",
					},
					&cli.StringFlag{
						Name:  "png",
						Usage: "PNG output path (requires --font)",
					},
					&cli.StringFlag{
						Name:  "font",
						Usage: "TTF/OTF font file for PNG rasterization",
					},
					&cli.StringFlag{
						Name:  "theme",
						Usage: "Color theme: light or dark",
						Value: "light",
					},
					&cli.BoolFlag{
						Name:  "debug-labels",
						Usage: "Draw romaji labels under each note",
					},
					&cli.BoolFlag{
						Name:  "octave-dots",
						Usage: "Draw kan/daikan register dots",
						Value: true,
					},
				},
			},
			{
				Name:   "info",
				Usage:  "Print symbol resolution and MIDI data for a score",
				Action: runInfo,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "score",
						Aliases:  []string{"s"},
						Usage:    "Path to the YAML score file",
						Required: true,
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("kinkorender error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// loadEntries reads a score file and resolves it into engine entries.
func loadEntries(path string) (*score.Document, []kinko.Entry, error) {
	doc, err := score.Load(path)
	if err != nil {
		return nil, nil, err
	}
	entries, err := doc.EngineEntries()
	if err != nil {
		return nil, nil, err
	}
	return doc, entries, nil
}

func runRender(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("verbose") {
		kinko.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	doc, entries, err := loadEntries(cmd.String("score"))
	if err != nil {
		return err
	}

	opts := []kinko.Option{
		kinko.WithTheme(kinko.ThemeByName(cmd.String("theme"))),
		kinko.WithDebugLabels(cmd.Bool("debug-labels")),
		kinko.WithOctaveDots(cmd.Bool("octave-dots")),
	}
	if doc.Font.Family != "" {
		opts = append(opts, kinko.WithFontFamily(doc.Font.Family))
	}
	if doc.Font.Size > 0 {
		opts = append(opts, kinko.WithFontSize(doc.Font.Size))
	}
	r := kinko.NewRenderer(opts...)

	// Size the canvas from the layout before drawing anything.
	cfg := r.Layout().Config()
	columns := r.Layout().ColumnCount(len(entries))
	width := int(cfg.LeftMargin+float64(columns)*(cfg.ColumnWidth+cfg.ColumnSpacing)) + canvasPad
	height := canvasHeight(r.Build(entries)) + canvasPad

	svg := svgsurface.New(width, height)
	r.Render(svg, entries)

	outPath := cmd.String("out")
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	if _, err := svg.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d notes, %d columns)\n", outPath, len(entries), columns)

	if pngPath := cmd.String("png"); pngPath != "" {
		if err := renderPNG(r, entries, width, height, cmd.String("font"), pngPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
	}
	return nil
}

// canvasHeight returns the lowest bounding-box edge of the laid-out notes.
func canvasHeight(notes []*kinko.Note) int {
	bottom := 0.0
	for _, n := range notes {
		if b := n.BBox().MaxY(); b > bottom {
			bottom = b
		}
	}
	return int(bottom)
}

// renderPNG rasterizes the same pass through the gg backend.
func renderPNG(r *kinko.Renderer, entries []kinko.Entry, width, height int, fontPath, outPath string) error {
	if fontPath == "" {
		return fmt.Errorf("--png requires --font (a TTF/OTF file with kana coverage)")
	}
	src, err := text.NewFontSourceFromFile(fontPath)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	surf := ggsurface.New(width, height, src)
	if r.Theme().Name == "dark" {
		surf.Clear(gg.RGB(0.1, 0.1, 0.12))
	} else {
		surf.Clear(gg.White)
	}
	r.Render(surf, entries)
	return surf.SavePNG(outPath)
}

func runInfo(ctx context.Context, cmd *cli.Command) error {
	_, entries, err := loadEntries(cmd.String("score"))
	if err != nil {
		return err
	}
	for i, e := range entries {
		if e.Rest {
			fmt.Printf("%3d: rest (%s)\n", i, e.Duration)
			continue
		}
		sym, perr := pitch.Parse(e.Symbol)
		if perr != nil {
			fmt.Printf("%3d: %q unresolved, drawn literally\n", i, e.Symbol)
			continue
		}
		midi, _ := pitch.NoteMIDI(sym.Romaji, pitch.Register(e.Register))
		fmt.Printf("%3d: %s %s (%s, register %s, midi %d)\n",
			i, sym.Kana, sym.Romaji, e.Duration, pitch.Register(e.Register), midi)
	}
	return nil
}
