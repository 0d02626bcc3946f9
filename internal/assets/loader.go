// Package assets loads the sprite batch used by the window surface.
// Loading happens in the background; callers poll Ready once per frame and
// draw placeholders until the batch resolves.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io/fs"
	"path"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Sprite names the window surface looks up.
const (
	Bird       = "bird"
	BirdDeath  = "bird_death"
	Pipe       = "pipe"
	Background = "background"
)

// ParallaxName returns the sprite name of a parallax layer.
func ParallaxName(layer string) string {
	return "parallax_" + layer
}

// maxParallel bounds concurrent decodes.
const maxParallel = 4

// Batch is the result of a load: decoded images plus the failure for every
// name that could not be loaded.
type Batch struct {
	Images map[string]image.Image
	Errors map[string]error
}

// Image returns the named image if it loaded.
func (b Batch) Image(name string) (image.Image, bool) {
	img, ok := b.Images[name]
	return img, ok
}

// Loader decodes a named batch of PNG files from a file system.
type Loader struct {
	fsys   fs.FS
	logger *log.Logger

	once  sync.Once
	done  chan struct{}
	batch Batch
}

// NewLoader creates a loader reading <name>.png files from fsys.
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	return &Loader{
		fsys:   fsys,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Start begins loading names in the background. Only the first call has an effect.
func (l *Loader) Start(ctx context.Context, names ...string) {
	l.once.Do(func() {
		go func() {
			defer close(l.done)
			l.batch = l.load(ctx, names)
		}()
	})
}

// Ready reports whether the batch has resolved. It never blocks.
func (l *Loader) Ready() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Batch returns the loaded batch and true once Ready, or an empty batch and false.
func (l *Loader) Batch() (Batch, bool) {
	if !l.Ready() {
		return Batch{}, false
	}
	return l.batch, true
}

// Wait blocks until the batch resolves or ctx is done.
func (l *Loader) Wait(ctx context.Context) (Batch, error) {
	select {
	case <-l.done:
		return l.batch, nil
	case <-ctx.Done():
		return Batch{}, ctx.Err()
	}
}

func (l *Loader) load(ctx context.Context, names []string) Batch {
	batch := Batch{
		Images: make(map[string]image.Image, len(names)),
		Errors: make(map[string]error),
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for _, name := range names {
		g.Go(func() error {
			img, err := l.decode(ctx, name)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				batch.Errors[name] = err
				return nil // A missing sprite falls back to a placeholder
			}
			batch.Images[name] = img
			return nil
		})
	}
	_ = g.Wait()

	l.report(batch)
	return batch
}

func (l *Loader) decode(ctx context.Context, name string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := l.fsys.Open(path.Clean(name) + ".png")
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", name, err)
	}
	return img, nil
}

func (l *Loader) report(batch Batch) {
	if l.logger == nil {
		return
	}

	failed := make([]string, 0, len(batch.Errors))
	for name := range batch.Errors {
		failed = append(failed, name)
	}
	sort.Strings(failed)

	for _, name := range failed {
		l.logger.Warn("asset unavailable, using placeholder", "name", name, "error", batch.Errors[name])
	}
	l.logger.Info("assets loaded", "ok", len(batch.Images), "failed", len(failed))
}
