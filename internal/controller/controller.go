package controller

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	imagepkg "github.com/youruser/idcardgen/internal/image"
	"github.com/youruser/idcardgen/internal/manifest"
	"github.com/youruser/idcardgen/internal/roster"
	"github.com/youruser/idcardgen/internal/util"
)

var (
	ErrNoTemplate  = errors.New("no background template selected")
	ErrEmptyRoster = errors.New("roster is empty")
)

// RunDirPrefix starts every run directory name.
const RunDirPrefix = "Generated_IDs_"

type Options struct {
	OutputRoot string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Controller owns the roster and the selected template for one session and
// runs generation over them. Calls are serialized.
type Controller struct {
	mu         sync.Mutex
	roster     *roster.Roster
	template   string
	compositor *imagepkg.Compositor
	manifest   *manifest.Writer
	opts       Options
	logger     *slog.Logger
}

func New(compositor *imagepkg.Compositor, writer *manifest.Writer, opts Options, logger *slog.Logger) *Controller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.OutputRoot == "" {
		opts.OutputRoot = "."
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		roster:     roster.New(),
		compositor: compositor,
		manifest:   writer,
		opts:       opts,
		logger:     logger.With(slog.String("component", "controller")),
	}
}

// Add validates the form values and appends a new recipient.
func (c *Controller) Add(field1, field2, field3, imagePath string) (roster.Recipient, error) {
	rec, err := roster.NewRecipient(field1, field2, field3, imagePath)
	if err != nil {
		return roster.Recipient{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.roster.Add(rec); err != nil {
		return roster.Recipient{}, err
	}
	return rec, nil
}

// AddAll appends already-validated recipients, e.g. from a roster file.
func (c *Controller) AddAll(recs []roster.Recipient) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range recs {
		if err := c.roster.Add(r); err != nil {
			return fmt.Errorf("add %q: %w", r.Field1, err)
		}
	}
	return nil
}

func (c *Controller) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roster.Remove(id)
}

func (c *Controller) Recipients() []roster.Recipient {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roster.List()
}

// SetTemplate selects the background shared by every card of the next run.
func (c *Controller) SetTemplate(path string) error {
	if path == "" {
		return ErrNoTemplate
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.template = path
	return nil
}

func (c *Controller) Template() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.template
}

func (c *Controller) SpreadsheetEnabled() bool {
	return c.manifest.SpreadsheetEnabled()
}

// Outcome is the result of rendering one recipient: Row on success, Err on failure.
type Outcome struct {
	Recipient roster.Recipient
	Row       *manifest.Row
	Err       error
}

// Generate renders every recipient in roster order into a fresh run
// directory and writes the manifest once at the end. Per-recipient failures
// are collected in the summary; only validation and run-directory errors
// are returned.
func (c *Controller) Generate() (*Summary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.template == "" {
		return nil, ErrNoTemplate
	}
	if c.roster.Len() == 0 {
		return nil, ErrEmptyRoster
	}

	dir, err := util.CreateRunDir(c.opts.OutputRoot, RunDirPrefix, c.opts.Now())
	if err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	c.logger.Info("generation started",
		slog.String("dir", dir),
		slog.Int("recipients", c.roster.Len()))

	summary := &Summary{OutputDir: dir, Total: c.roster.Len()}
	var rows []manifest.Row
	for _, rec := range c.roster.List() {
		out := c.renderOne(dir, rec)
		if out.Err != nil {
			c.logger.Warn("recipient failed",
				slog.String("field1", rec.Field1),
				slog.String("id", rec.ID),
				slog.String("error", out.Err.Error()))
			summary.Failures = append(summary.Failures, Failure{
				Identifier: rec.ID,
				Field1:     rec.Field1,
				Error:      out.Err.Error(),
			})
			continue
		}
		rows = append(rows, *out.Row)
	}
	summary.Rendered = len(rows)
	summary.Rows = rows
	summary.Manifest = c.manifest.Write(dir, rows)

	c.logger.Info("generation finished",
		slog.Int("rendered", summary.Rendered),
		slog.Int("failed", len(summary.Failures)),
		slog.String("manifest", string(summary.Manifest.Format)))
	return summary, nil
}

func (c *Controller) renderOne(dir string, rec roster.Recipient) Outcome {
	card, err := c.renderCard(c.template, rec)
	if err != nil {
		return Outcome{Recipient: rec, Err: err}
	}
	path, err := imagepkg.Save(card, dir, imagepkg.CardFileName(rec.Field1))
	if err != nil {
		return Outcome{Recipient: rec, Err: err}
	}
	return Outcome{
		Recipient: rec,
		Row: &manifest.Row{
			Identifier: rec.ID,
			Field1:     rec.Field1,
			Field2:     rec.Field2,
			Field3:     rec.Field3,
			ImagePath:  rec.ImagePath,
			OutputPath: path,
		},
	}
}

func (c *Controller) renderCard(template string, rec roster.Recipient) (*imagepkg.Card, error) {
	qr, err := imagepkg.EncodeQR(rec.ID, c.compositor.Layout().QRSize)
	if err != nil {
		return nil, err
	}
	return c.compositor.Render(template, rec.ImagePath, qr, rec.Fields())
}

// Preview renders one recipient's card in memory without writing files.
func (c *Controller) Preview(id string) (image.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.template == "" {
		return nil, ErrNoTemplate
	}
	rec, ok := c.roster.Get(id)
	if !ok {
		return nil, roster.ErrNotFound
	}
	card, err := c.renderCard(c.template, rec)
	if err != nil {
		return nil, err
	}
	return card.Image, nil
}
