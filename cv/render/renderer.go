package render

import (
	"html"
	"sort"
	"strings"
	"time"

	"cvision-backend/cv/model"
)

// htmlHead is the single implemented layout: a single-column, ATS-friendly
// page with inline styling. Template layout keys other than "ats_minimal"
// currently fall through to this layout; the key is carried for future
// multi-layout support.
const htmlHead = `<html>
  <head>
    <meta charset="utf-8"/>
    <style>
      body { font-family: Arial, sans-serif; margin: 32px; }
      h1 { margin-bottom: 4px; }
      h2 { margin-top: 16px; font-size: 14px; text-transform: uppercase; }
      .muted { color: #666; font-size: 12px; }
      ul { padding-left: 20px; }
      li { margin-bottom: 4px; }
    </style>
  </head>
  <body>
`

const contactSeparator = " • "

// Render composes a profile, its work history and a template into a single
// HTML document. It never fails: absent optional fields simply omit their
// section. Every user-supplied string is HTML-escaped before embedding.
// Output is deterministic for identical inputs in identical order.
func Render(profile model.Profile, experiences []model.Experience, template model.Template, targetRole, language string) string {
	_ = targetRole
	_ = language
	_ = template.LayoutKey

	sorted := make([]model.Experience, len(experiences))
	copy(sorted, experiences)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.After(sorted[j].StartDate)
	})

	var b strings.Builder
	b.WriteString(htmlHead)

	b.WriteString("    <h1>" + html.EscapeString(profile.FullName) + "</h1>\n")

	var contact []string
	for _, part := range []string{profile.Location, profile.Email, profile.Phone} {
		if strings.TrimSpace(part) != "" {
			contact = append(contact, part)
		}
	}
	if len(contact) > 0 {
		b.WriteString("    <div class=\"muted\">" + html.EscapeString(strings.Join(contact, contactSeparator)) + "</div>\n")
	}

	if strings.TrimSpace(profile.Summary) != "" {
		b.WriteString("    <h2>Summary</h2>\n")
		b.WriteString("    <p>" + html.EscapeString(profile.Summary) + "</p>\n")
	}

	if len(profile.Skills) > 0 {
		b.WriteString("    <h2>Skills</h2>\n")
		b.WriteString("    <p>" + html.EscapeString(strings.Join(profile.Skills, ", ")) + "</p>\n")
	}

	if len(sorted) > 0 {
		b.WriteString("    <h2>Experience</h2>\n")
		b.WriteString("    <ul>\n")
		for _, e := range sorted {
			b.WriteString("      <li>\n")
			b.WriteString("        <strong>" + html.EscapeString(e.JobTitle) + "</strong> at " +
				html.EscapeString(e.Company) + " (" + formatDateRange(e.StartDate, e.EndDate) + ")\n")
			if strings.TrimSpace(e.Description) != "" {
				b.WriteString("<br/>\n")
				b.WriteString(html.EscapeString(e.Description) + "\n")
			}
			b.WriteString("      </li>\n")
		}
		b.WriteString("    </ul>\n")
	}

	b.WriteString("  </body>\n")
	b.WriteString("</html>\n")

	return b.String()
}

func formatDateRange(start time.Time, end *time.Time) string {
	if end == nil {
		return formatDate(start) + " - Present"
	}
	return formatDate(start) + " - " + formatDate(*end)
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2006")
}
