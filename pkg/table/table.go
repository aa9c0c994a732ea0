// Package table turns "Key: Value" summary lines into HTML table rows.
package table

import (
	"html"
	"strings"
)

type Row struct {
	Key   string `json:"key"`
	Value string `json:"value"`

	Unlabeled bool `json:"unlabeled,omitempty"`
}

type Options struct {
	// KeepUnlabeled keeps lines without a colon as single-cell rows
	// instead of dropping them.
	KeepUnlabeled bool
}

// Parse splits every line at its first colon. Lines without a colon are
// dropped unless options.KeepUnlabeled is set.
func Parse(text string, options *Options) []Row {
	if options == nil {
		options = new(Options)
	}

	var rows []Row

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		key, value, ok := strings.Cut(line, ":")

		if !ok {
			line = strings.TrimSpace(line)

			if options.KeepUnlabeled && line != "" {
				rows = append(rows, Row{
					Value:     line,
					Unlabeled: true,
				})
			}

			continue
		}

		rows = append(rows, Row{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}

	return rows
}

// Render concatenates one <tr> fragment per row, without any enclosing
// table markup.
func Render(rows []Row) string {
	var sb strings.Builder

	for _, r := range rows {
		if r.Unlabeled {
			sb.WriteString(`<tr><td colspan="2">`)
			sb.WriteString(html.EscapeString(r.Value))
			sb.WriteString(`</td></tr>`)

			continue
		}

		sb.WriteString("<tr><td>")
		sb.WriteString(html.EscapeString(r.Key))
		sb.WriteString("</td><td>")
		sb.WriteString(html.EscapeString(r.Value))
		sb.WriteString("</td></tr>")
	}

	return sb.String()
}

func HTML(text string, options *Options) string {
	return Render(Parse(text, options))
}
