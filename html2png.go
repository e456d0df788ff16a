package md2png

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for image.DecodeConfig
	_ "image/png"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-md2png/internal/fileutil"
	"github.com/alnah/go-md2png/internal/process"
)

// imageConverter abstracts HTML to image conversion to allow different backends.
type imageConverter interface {
	ToImage(ctx context.Context, htmlContent string, opts *ImageSettings) (*rasterImage, error)
	Close() error
}

// imageRenderer abstracts screenshot capture from an HTML file to enable
// testing without a browser.
type imageRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *ImageSettings) ([]byte, error)
	Close() error
}

// Compile-time interface checks
var (
	_ imageConverter = (*rodConverter)(nil)
	_ imageRenderer  = (*rodRenderer)(nil)
)

// rasterImage is an encoded image with its pixel size.
type rasterImage struct {
	Data   []byte
	Width  int
	Height int
}

// rodRenderer implements imageRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" || os.Getenv("ROD_NO_SANDBOX") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		r.kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources and reaps the browser process tree.
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.kill()
	return err
}

// kill terminates the launched browser and its helper processes.
func (r *rodRenderer) kill() {
	if r.launcher == nil {
		return
	}
	// Errors are ignored: launcher.Kill still runs and the process may
	// already be gone.
	_ = process.KillTree(r.launcher.PID())
	r.launcher.Kill()
	r.launcher = nil
}

// RenderFromFile opens a local HTML file in headless Chrome and captures a
// full-page screenshot. The viewport is opts.Width by opts.MinHeight CSS
// pixels at opts.Scale device pixels each; taller documents extend it.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *ImageSettings) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             opts.Width,
		Height:            opts.MinHeight,
		DeviceScaleFactor: opts.Scale,
	}); err != nil {
		return nil, fmt.Errorf("%w: setting viewport: %v", ErrPageCreate, err)
	}

	// Wait for page to load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).Navigate("file://" + filePath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := page.Screenshot(true, buildScreenshotOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageGeneration, err)
	}
	return data, nil
}

// buildScreenshotOptions maps image settings onto the capture request.
func buildScreenshotOptions(opts *ImageSettings) *proto.PageCaptureScreenshot {
	req := &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	}
	if opts.Format == FormatJPEG {
		req.Format = proto.PageCaptureScreenshotFormatJpeg
		req.Quality = intPtr(opts.Quality)
	}
	return req
}

// intPtr returns a pointer to an int value.
func intPtr(v int) *int {
	return &v
}

// rodConverter converts HTML to an image using headless Chrome via go-rod.
type rodConverter struct {
	renderer imageRenderer
}

// newRodConverter creates a rodConverter with production renderer.
func newRodConverter(timeout time.Duration) *rodConverter {
	return &rodConverter{
		renderer: newRodRenderer(timeout),
	}
}

// ToImage renders HTML content and checks the capture is a real, non-empty
// image.
func (c *rodConverter) ToImage(ctx context.Context, htmlContent string, opts *ImageSettings) (*rasterImage, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	data, err := c.renderer.RenderFromFile(ctx, tmpPath, opts)
	if err != nil {
		return nil, err
	}
	return checkCanvas(data)
}

// checkCanvas decodes the image header and rejects empty captures.
func checkCanvas(data []byte) (*rasterImage, error) {
	if len(data) == 0 {
		return nil, ErrEmptyCanvas
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding capture: %v", ErrImageGeneration, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyCanvas, cfg.Width, cfg.Height)
	}
	return &rasterImage{Data: data, Width: cfg.Width, Height: cfg.Height}, nil
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
