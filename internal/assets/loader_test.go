package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() failed: %v", err)
	}
	return buf.Bytes()
}

func TestLoaderPartialFailure(t *testing.T) {
	fsys := fstest.MapFS{
		"bird.png":       {Data: encodePNG(t, 34, 24)},
		"pipe.png":       {Data: encodePNG(t, 52, 320)},
		"background.png": {Data: []byte("not a png")},
	}

	l := NewLoader(fsys, nil)
	l.Start(context.Background(), Bird, Pipe, Background, BirdDeath)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	batch, err := l.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}

	if len(batch.Images) != 2 {
		t.Errorf("loaded %d images, want 2", len(batch.Images))
	}
	if img, ok := batch.Image(Bird); !ok || img.Bounds().Dx() != 34 {
		t.Errorf("bird image = %v, %v", img, ok)
	}
	if _, ok := batch.Errors[Background]; !ok {
		t.Error("undecodable background should be reported")
	}
	if _, ok := batch.Errors[BirdDeath]; !ok {
		t.Error("missing bird_death should be reported")
	}

	if !l.Ready() {
		t.Error("Ready() should be true after Wait")
	}
	if _, ok := l.Batch(); !ok {
		t.Error("Batch() should be available after Wait")
	}
}

func TestLoaderFromDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "parallax_clouds.png"), encodePNG(t, 8, 8), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(os.DirFS(dir), nil)
	l.Start(context.Background(), ParallaxName("clouds"))

	batch, err := l.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}
	if _, ok := batch.Image("parallax_clouds"); !ok {
		t.Errorf("parallax layer not loaded: %v", batch.Errors)
	}
}

func TestLoaderNotReadyBeforeStart(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, nil)
	if l.Ready() {
		t.Error("Ready() before Start should be false")
	}
	if _, ok := l.Batch(); ok {
		t.Error("Batch() before Start should be unavailable")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Wait(ctx); err == nil {
		t.Error("Wait() with a cancelled context should fail")
	}
}

func TestLoaderCancelled(t *testing.T) {
	fsys := fstest.MapFS{"bird.png": {Data: encodePNG(t, 4, 4)}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := NewLoader(fsys, nil)
	l.Start(ctx, Bird)

	batch, err := l.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}
	if len(batch.Images) != 0 || len(batch.Errors) != 1 {
		t.Errorf("cancelled load = %d images, %d errors; want 0, 1", len(batch.Images), len(batch.Errors))
	}
}
