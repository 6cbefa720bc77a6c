package chart

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"
)

// SectionChart is one dashboard section ready to render: the header and
// insight copy plus the chart that sits between them.
type SectionChart struct {
	Section Section
	Chart   components.Charter
}

// RenderDashboard assembles the sections into a single HTML page and writes
// it to w. Section headers and insight blocks are spliced into the rendered
// page around each chart container.
func RenderDashboard(w io.Writer, sections []SectionChart) error {
	page := components.NewPage()
	page.PageTitle = PageTitle
	for _, s := range sections {
		page.AddCharts(s.Chart)
	}

	var buf strings.Builder
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render dashboard page: %w", err)
	}

	out := injectSections(buf.String(), sections)
	out = strings.Replace(out, "<body>", "<body>\n"+pageHeaderHTML(), 1)
	out = strings.Replace(out, "</head>", pageCSS+"</head>", 1)

	_, err := io.WriteString(w, out)
	return err
}

// injectSections places each section's header before its chart container and
// its insight block after it. go-echarts wraps every chart in its own
// `<div class="container">`, so the i-th occurrence anchors section i.
func injectSections(page string, sections []SectionChart) string {
	const marker = `<div class="container"`

	var out strings.Builder
	rest := page
	for i, s := range sections {
		idx := strings.Index(rest, marker)
		if idx < 0 {
			break
		}
		out.WriteString(rest[:idx])
		if i > 0 {
			out.WriteString(sections[i-1].Section.Insight)
		}
		out.WriteString(sectionHeaderHTML(s.Section))
		out.WriteString(marker)
		rest = rest[idx+len(marker):]
	}
	if len(sections) > 0 {
		rest = strings.Replace(rest, "</body>", sections[len(sections)-1].Section.Insight+"\n</body>", 1)
	}
	out.WriteString(rest)
	return out.String()
}

func sectionHeaderHTML(s Section) string {
	return `<div class="section-header"><h2>` + html.EscapeString(s.Title) + `</h2></div>`
}

func pageHeaderHTML() string {
	return `<div class="page-header"><h1>` + html.EscapeString(PageTitle) + `</h1><p>` + html.EscapeString(PageSubtitle) + `</p></div>`
}

const pageCSS = `
    <style>
        * {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
        }
        body {
            max-width: 1700px;
            margin: 0 auto;
            padding: 20px;
        }
        .page-header {
            margin-bottom: 20px;
            padding-bottom: 10px;
            border-bottom: 2px solid #333;
        }
        .page-header h1 {
            margin: 0;
            font-size: 24px;
        }
        .page-header p {
            margin: 5px 0 0 0;
            color: #666;
        }
        .section-header h2 {
            margin: 30px 0 10px 0;
            font-size: 18px;
        }
        .insight {
            margin: 0 0 25px 0;
            padding: 12px 15px;
            background: #f5f5f5;
            border: 1px solid #ddd;
            font-size: 14px;
        }
        .insight ul {
            margin: 8px 0 0 0;
        }
        .container {
            display: block !important;
            margin: 0 0 10px 0 !important;
            padding: 0 !important;
            overflow-x: auto !important;
        }
        .item {
            margin: 0 !important;
        }
    </style>
`
