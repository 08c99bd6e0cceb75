package assets

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"
)

// GenerateRequest describes one image-synthesis request
type GenerateRequest struct {
	Prompt      string
	AspectRatio string
}

// GeneratedImage is a successful image-synthesis response
type GeneratedImage struct {
	MIMEType string
	Data     []byte
}

// Generator is the external image-synthesis capability. Exactly one
// request is issued per upgrade attempt.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GeneratedImage, error)
}

// Clock abstracts the pipeline's delays so tests can run deterministically
type Clock interface {
	Sleep(ctx context.Context, d time.Duration)
}

type realClock struct{}

func (realClock) Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// RealClock returns a Clock backed by the wall clock
func RealClock() Clock { return realClock{} }

const defaultInspectDelay = 800 * time.Millisecond

// Worker drives a single record through the regeneration pipeline:
// Pending|Error -> Analyzing -> Generating -> Success|Error. One attempt
// per invocation, no internal retry.
type Worker struct {
	gen          Generator
	clock        Clock
	inspectDelay time.Duration
	notify       func(*Record)
}

// NewWorker creates a regeneration worker. notify, if non-nil, is called
// after every status transition so the owning surface can re-render.
func NewWorker(gen Generator, clock Clock, notify func(*Record)) *Worker {
	if clock == nil {
		clock = RealClock()
	}
	return &Worker{
		gen:          gen,
		clock:        clock,
		inspectDelay: defaultInspectDelay,
		notify:       notify,
	}
}

// Upgrade runs one full pass of the pipeline on rec, mutating it in
// place. The record always lands in Success or Error; failures from the
// generation capability are recorded, never propagated.
func (w *Worker) Upgrade(ctx context.Context, rec *Record) {
	rec.Status = StatusAnalyzing
	rec.setAllChecks(CheckChecking)
	w.changed(rec)

	slog.Debug("Deep scanning asset pixels", "id", rec.ID, "name", rec.Name)
	w.clock.Sleep(ctx, w.inspectDelay)

	rec.Status = StatusGenerating
	w.changed(rec)

	slog.Debug("Rendering studio version", "id", rec.ID, "name", rec.Name)

	img, err := w.gen.Generate(ctx, GenerateRequest{
		Prompt:      BuildStudioPrompt(rec.Name, rec.Category),
		AspectRatio: "1:1",
	})
	if err != nil || img == nil || len(img.Data) == 0 {
		if err == nil {
			err = fmt.Errorf("generation returned no image data")
		}
		slog.Warn("Asset regeneration failed", "id", rec.ID, "name", rec.Name, "error", err)
		rec.Status = StatusError
		w.changed(rec)
		return
	}

	rec.Status = StatusSuccess
	rec.ResolvedURL = dataURL(img)
	rec.Resolution = upgradedResolution
	rec.SizeEstimate = upgradedSize
	rec.Format = upgradedFormat
	rec.setAllChecks(CheckPass)
	w.changed(rec)

	slog.Info("Asset upgraded to studio quality", "id", rec.ID, "name", rec.Name)
}

func (w *Worker) changed(rec *Record) {
	if w.notify != nil {
		w.notify(rec)
	}
}

// BuildStudioPrompt constructs the fixed studio-photography prompt for an item
func BuildStudioPrompt(name, category string) string {
	return fmt.Sprintf(`Professional 8K ultra-HD studio product photography of %s (%s).
REQUIREMENTS:
- Centered composition, 1:1 square aspect ratio.
- Pure white studio background #FFFFFF.
- Soft photorealistic shadows and subtle floor reflections.
- Sharp details, premium textures, no artifacts.
- Aesthetic: High-end eCommerce (Apple/Samsung/Sony style).
- No humans, just the product.`, name, category)
}

func dataURL(img *GeneratedImage) string {
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(img.Data))
}
