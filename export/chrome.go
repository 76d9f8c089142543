package export

import (
	"context"
	"fmt"
	"os"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"invitation-studio/logger"
)

// waitForAssetsJS resolves once fonts and every <img> have loaded (or timed out)
const waitForAssetsJS = `
(function() {
	return Promise.all([
		document.fonts.ready,
		Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
			return new Promise((resolve) => {
				if (img.complete && img.naturalWidth > 0 && img.naturalHeight > 0) {
					resolve();
					return;
				}
				const timeout = setTimeout(() => resolve(), 5000);
				img.onload = () => { clearTimeout(timeout); resolve(); };
				img.onerror = () => { clearTimeout(timeout); resolve(); };
			});
		}))
	]).then(() => true);
})();
`

// cleanRegionJS strips embedded content from the region and replaces colors
// in lab/lch/oklab/oklch notation, which the capture path does not support.
const cleanRegionJS = `
(function(id) {
	const region = document.getElementById(id);
	if (!region) {
		return false;
	}
	region.querySelectorAll('iframe, embed, object, script').forEach(el => el.remove());
	const unsupported = (v) => v && (v.includes('lab(') || v.includes('lch('));
	[region, ...region.querySelectorAll('*')].forEach(el => {
		const style = window.getComputedStyle(el);
		if (unsupported(style.color)) {
			el.style.color = '#000000';
		}
		if (unsupported(style.backgroundColor)) {
			el.style.backgroundColor = '#ffffff';
		}
		if (unsupported(style.borderColor)) {
			el.style.borderColor = '#000000';
		}
	});
	return true;
})(%q);
`

// DetectChromePath returns configured if it exists, else the first Chrome or
// Chromium binary found in the usual install locations, else "".
func DetectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
		logger.Log.Warnf("⚠️ CHROME_PATH %s not found, probing default locations", configured)
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ChromeRasterizer renders documents in a fresh headless Chrome per call
type ChromeRasterizer struct {
	execPath string
}

// NewChromeRasterizer creates a rasterizer. An empty execPath lets chromedp find Chrome.
func NewChromeRasterizer(execPath string) *ChromeRasterizer {
	return &ChromeRasterizer{execPath: execPath}
}

// Ensure ChromeRasterizer implements Rasterizer
var _ Rasterizer = (*ChromeRasterizer)(nil)

func (c *ChromeRasterizer) newContext(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if c.execPath != "" {
		opts = append(opts, chromedp.ExecPath(c.execPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	return browserCtx, func() {
		browserCancel()
		allocCancel()
	}
}

// loadDocument replaces the blank page's content with document and waits for its assets
func loadDocument(document string, vp Viewport) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.EmulateViewport(int64(vp.Width), int64(vp.Height)),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, document).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(waitForAssetsJS, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
	}
}

// CaptureRegion screenshots the element with id regionID
func (c *ChromeRasterizer) CaptureRegion(ctx context.Context, document, regionID string, vp Viewport) ([]byte, error) {
	chromeCtx, cancel := c.newContext(ctx)
	defer cancel()

	var found bool
	var buf []byte
	err := chromedp.Run(chromeCtx,
		loadDocument(document, vp),
		chromedp.Evaluate(fmt.Sprintf(cleanRegionJS, regionID), &found),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("element with id %q not found", regionID)
	}

	if err := chromedp.Run(chromeCtx, chromedp.Screenshot("#"+regionID, &buf, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}

	logger.Log.WithField("region", regionID).Debugf("📸 Region captured: %d bytes", len(buf))
	return buf, nil
}

// PrintPage prints document to a single A4 PDF (8.27" × 11.69") without margins
func (c *ChromeRasterizer) PrintPage(ctx context.Context, document string) ([]byte, error) {
	chromeCtx, cancel := c.newContext(ctx)
	defer cancel()

	// 210mm = 794px at 96 DPI, 297mm = 1123px
	vp := Viewport{Width: 794, Height: 1123}

	var pdfBuf []byte
	err := chromedp.Run(chromeCtx,
		loadDocument(document, vp),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(A4WidthMM / 25.4).
				WithPaperHeight(A4HeightMM / 25.4).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return pdfBuf, nil
}
