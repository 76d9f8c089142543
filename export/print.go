package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
)

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
      body {
        margin: 0;
        padding: 20px;
        background: white;
        font-family: Arial, sans-serif;
        display: flex;
        justify-content: center;
        align-items: center;
        min-height: 100vh;
      }
      .invitation-container {
        max-width: 100%;
        box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
      }
      @media print {
        body { margin: 0; padding: 0; }
        .invitation-container { box-shadow: none; page-break-inside: avoid; }
        @page { margin: 0.5in; size: A4; }
      }
    </style>
  </head>
  <body>
    <div class="invitation-container">{{.Region}}</div>
    <script>
      window.onload = function() {
        setTimeout(function() { window.print(); }, 500);
      };
    </script>
  </body>
</html>
`))

// PrintDocument wraps region markup in a page that prints itself on A4 with 0.5in margins.
// regionHTML comes from the server renderer and is trusted.
func PrintDocument(title, regionHTML string) ([]byte, error) {
	var buf bytes.Buffer
	err := printTemplate.Execute(&buf, struct {
		Title  string
		Region template.HTML
	}{
		Title:  title,
		Region: template.HTML(regionHTML),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render print document: %w", err)
	}
	return buf.Bytes(), nil
}

var pdfPageTemplate = template.Must(template.New("pdf-page").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <style>
      @page { size: A4; margin: 0; }
      html, body { margin: 0; padding: 0; width: 210mm; height: 297mm; background: #ffffff; }
      img {
        position: absolute;
        left: {{printf "%.3f" .X}}mm;
        top: {{printf "%.3f" .Y}}mm;
        width: {{printf "%.3f" .Width}}mm;
        height: {{printf "%.3f" .Height}}mm;
      }
    </style>
  </head>
  <body><img src="{{.Src}}" alt=""></body>
</html>
`))

// PDFPageDocument lays a PNG out on a single A4 page at the given placement
func PDFPageDocument(pngData []byte, p Placement) (string, error) {
	var buf bytes.Buffer
	err := pdfPageTemplate.Execute(&buf, struct {
		Placement
		Src template.URL
	}{
		Placement: p,
		Src:       template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(pngData)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render pdf page: %w", err)
	}
	return buf.String(), nil
}
