package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sort"

	"invitation-studio/customization"
	"invitation-studio/models"
	"invitation-studio/utils"
)

//go:embed templates/invitation.html
var templateFS embed.FS

// RenderService renders invitations to HTML. The same markup backs the live
// preview, the hosted page and every export.
type RenderService struct {
	tmpl *template.Template
}

// NewRenderService parses the embedded invitation templates
func NewRenderService() (*RenderService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/invitation.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return &RenderService{tmpl: tmpl}, nil
}

// RenderOptions are the page-level extras around the invitation card
type RenderOptions struct {
	Countdown  *models.Countdown
	ShowFooter bool
}

type customField struct {
	Name  string
	Value string
}

type invitationView struct {
	C          models.CustomizationData
	Background template.URL
	DateLabel  string
	TimeLabel  string
	RSVPLink   string
	Fields     []customField
	Countdown  *models.Countdown
	ShowFooter bool
}

func newInvitationView(d models.CustomizationData, opts RenderOptions) invitationView {
	d = customization.ResolveDefaults(d)

	v := invitationView{
		C:          d,
		DateLabel:  utils.FormatEventDate(d.EventDate),
		TimeLabel:  utils.FormatEventTime(d.EventTime),
		RSVPLink:   d.RSVPLink,
		Countdown:  opts.Countdown,
		ShowFooter: opts.ShowFooter,
	}
	// Only image data URIs are trusted as sources
	if utils.IsImageDataURI(d.BackgroundImage) {
		v.Background = template.URL(d.BackgroundImage)
	}

	names := make([]string, 0, len(d.CustomFields))
	for name, value := range d.CustomFields {
		if value != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		v.Fields = append(v.Fields, customField{Name: name, Value: d.CustomFields[name]})
	}
	return v
}

// RenderCard renders only the invitation card (the export region)
func (s *RenderService) RenderCard(d models.CustomizationData) (string, error) {
	return s.execute("card", newInvitationView(d, RenderOptions{}))
}

// RenderPage renders a complete HTML document around the card
func (s *RenderService) RenderPage(d models.CustomizationData, opts RenderOptions) (string, error) {
	return s.execute("page", newInvitationView(d, opts))
}

func (s *RenderService) execute(name string, view invitationView) (string, error) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, view); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
