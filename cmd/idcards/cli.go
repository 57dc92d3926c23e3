package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/youruser/idcardgen/internal/config"
	"github.com/youruser/idcardgen/internal/controller"
	imagepkg "github.com/youruser/idcardgen/internal/image"
	"github.com/youruser/idcardgen/internal/roster"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp() *cli.App {
	app := &cli.App{
		Name:    "idcards",
		Usage:   "Batch-render ID cards with QR codes",
		Version: Version,
		Commands: []*cli.Command{
			generateCmd(),
			qrCmd(),
			checkCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// generateCmd renders one run from a roster CSV.
func generateCmd() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Render a card per roster row and write the manifest",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Required: true, Usage: "Background image shared by every card"},
			&cli.StringFlag{Name: "roster", Aliases: []string{"r"}, Required: true, Usage: "CSV with field1,field2,field3,image columns"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output root (overrides IDCARD_OUTPUT_ROOT)"},
			&cli.BoolFlag{Name: "json", Usage: "Print the summary as JSON"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if out := c.String("out"); out != "" {
				cfg.OutputRoot = out
			}
			logger := config.SetupLogger(cfg)

			recs, err := roster.LoadCSV(c.String("roster"))
			if err != nil {
				return err
			}
			ctl, err := controller.Build(cfg, logger)
			if err != nil {
				return err
			}
			if err := ctl.AddAll(recs); err != nil {
				return err
			}
			if err := ctl.SetTemplate(c.String("template")); err != nil {
				return err
			}

			summary, err := ctl.Generate()
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return outputJSON(c.App.Writer, summary)
			}
			_, err = fmt.Fprintln(c.App.Writer, summary.Message())
			return err
		},
	}
}

// qrCmd writes a standalone QR PNG.
func qrCmd() *cli.Command {
	return &cli.Command{
		Name:  "qr",
		Usage: "Write a QR code PNG for the given text",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Required: true, Usage: "Payload to encode"},
			&cli.IntFlag{Name: "size", Value: imagepkg.DefaultQRSize, Usage: "Side length in pixels"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "qr.png", Usage: "Output file"},
		},
		Action: func(c *cli.Context) error {
			b, err := imagepkg.EncodeQRPNG(c.String("text"), c.Int("size"))
			if err != nil {
				return err
			}
			if err := os.WriteFile(c.String("out"), b, 0o644); err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, c.String("out"))
			return err
		},
	}
}

// checkCmd reports which manifest format a run would produce.
func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Report whether Excel export is available",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := config.SetupLogger(cfg)
			ctl, err := controller.Build(cfg, logger)
			if err != nil {
				return err
			}
			if ctl.SpreadsheetEnabled() {
				_, err = fmt.Fprintln(c.App.Writer, "Excel export: available")
			} else {
				_, err = fmt.Fprintln(c.App.Writer, "Excel export: unavailable, manifests will be written as CSV")
			}
			return err
		},
	}
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
