package report

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"
)

// Brand color tokens shared by both report kinds.
const (
	brandOrange  = "#F47C2C"
	brandRed     = "#D8432E"
	brandGray800 = "#1F2933"
	brandGray500 = "#6B7280"
	brandGray200 = "#E5E7EB"
	brandGray50  = "#F9FAFB"
)

// printDelayMS is the fixed delay before the rendered page triggers
// printing, giving embedded images time to load. It does not depend on
// document size.
const printDelayMS = 500

var (
	tmplOnce sync.Once
	tmpl     *template.Template
)

func templates() *template.Template {
	tmplOnce.Do(func() {
		tmpl = template.Must(template.New("report").Parse(reportTemplates))
	})
	return tmpl
}

// Renderer serializes a document tree into the final printable markup.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

type pageData struct {
	Title        string
	Style        template.CSS
	Body         template.HTML
	PrintDelayMS int
}

// Render walks the tree in section order and serializes each section
// through its named template, wrapping the result in the shared page
// shell and style sheet.
func (rd *Renderer) Render(tree *DocumentTree) ([]byte, error) {
	var body bytes.Buffer
	for _, section := range tree.Sections {
		name := "section-" + string(section.SectionKind())
		if err := templates().ExecuteTemplate(&body, name, section); err != nil {
			return nil, fmt.Errorf("failed to render %s section: %w", section.SectionKind(), err)
		}
	}

	var page bytes.Buffer
	err := templates().ExecuteTemplate(&page, "page", pageData{
		Title:        tree.Title,
		Style:        template.CSS(styleSheet),
		Body:         template.HTML(body.String()),
		PrintDelayMS: printDelayMS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return page.Bytes(), nil
}

var styleSheet = fmt.Sprintf(`
    :root {
      --primary: %s;
      --primary-dark: %s;
      --text-main: %s;
      --text-muted: %s;
      --border: %s;
      --bg-light: %s;
    }
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: 'Inter', sans-serif;
      color: var(--text-main);
      line-height: 1.4;
      padding: 30px;
      max-width: 900px;
      margin: 0 auto;
      background: white;
      -webkit-print-color-adjust: exact;
      print-color-adjust: exact;
    }
    .header { display: flex; justify-content: space-between; align-items: flex-start; padding-bottom: 20px; margin-bottom: 25px; border-bottom: 5px solid var(--primary); }
    .brand-section { display: flex; align-items: center; gap: 20px; }
    .logo-container { width: 80px; height: 80px; background: var(--primary); border-radius: 12px; display: flex; align-items: center; justify-content: center; overflow: hidden; }
    .logo-img { width: 100%%; height: 100%%; object-fit: contain; padding: 5px; }
    .company-name { font-family: 'Playfair Display', serif; font-size: 32px; color: var(--primary); margin-bottom: 2px; }
    .company-tagline { font-weight: 600; font-size: 12px; color: var(--text-muted); text-transform: uppercase; letter-spacing: 1px; }
    .company-contact { font-size: 11px; color: var(--text-muted); margin-top: 8px; font-weight: 500; }
    .agreement-badge-container { text-align: right; }
    .agreement-badge { background: var(--primary); color: white; padding: 8px 20px; border-radius: 8px; font-weight: 800; font-size: 20px; margin-bottom: 8px; display: inline-block; }
    .agreement-no { font-size: 16px; font-weight: 700; }
    .agreement-date { font-size: 12px; color: var(--text-muted); margin-top: 4px; }
    .main-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; margin-bottom: 25px; }
    .card { border: 1.5px solid var(--border); border-radius: 12px; overflow: hidden; background: white; }
    .card-header { background: var(--bg-light); padding: 10px 15px; font-weight: 800; font-size: 12px; text-transform: uppercase; color: var(--primary); border-bottom: 1.5px solid var(--border); }
    .card-body { padding: 15px; }
    .data-item { display: flex; margin-bottom: 8px; font-size: 13px; border-bottom: 1px solid var(--bg-light); padding-bottom: 4px; }
    .data-label { color: var(--text-muted); width: 100px; flex-shrink: 0; font-weight: 600; }
    .data-value { font-weight: 700; color: var(--text-main); }
    .vehicle-hero { background: linear-gradient(135deg, var(--primary) 0%%, var(--primary-dark) 100%%); color: white; border-radius: 15px; padding: 20px; display: flex; align-items: center; gap: 25px; margin-bottom: 25px; }
    .vehicle-img-wrap { width: 180px; height: 110px; background: white; border-radius: 10px; padding: 5px; display: flex; align-items: center; justify-content: center; }
    .vehicle-img-large { width: 100%%; height: 100%%; object-fit: contain; border-radius: 6px; }
    .vehicle-glyph { font-size: 40px; font-weight: 900; color: var(--primary); }
    .vehicle-title { font-size: 24px; font-weight: 800; margin-bottom: 5px; }
    .vehicle-reg { font-size: 32px; font-weight: 900; letter-spacing: 2px; border: 2px dashed rgba(255,255,255,0.5); padding: 5px 15px; display: inline-block; border-radius: 8px; }
    .vehicle-detail { margin-top: 10px; font-weight: 600; font-size: 14px; opacity: 0.9; }
    .timeline { display: grid; grid-template-columns: 1fr 1fr; gap: 15px; margin-bottom: 25px; }
    .timeline-box { padding: 15px; border-radius: 12px; text-align: center; }
    .out { background: #f0fdf4; border: 2px solid #bbf7d0; }
    .in { background: #fef2f2; border: 2px solid #fecaca; }
    .timeline-label { font-size: 11px; font-weight: 800; text-transform: uppercase; margin-bottom: 5px; }
    .out .timeline-label { color: #16a34a; }
    .in .timeline-label { color: #dc2626; }
    .timeline-val { font-size: 16px; font-weight: 800; }
    .check-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 8px; margin-bottom: 15px; }
    .check-pill { background: var(--bg-light); border: 1px solid var(--border); padding: 6px 10px; border-radius: 20px; font-size: 11px; font-weight: 600; }
    .check-dot { color: var(--primary); font-size: 14px; }
    .payment-card { background: var(--bg-light); border: 2px solid var(--primary); border-radius: 12px; overflow: hidden; }
    .payment-table { width: 100%%; border-collapse: collapse; }
    .payment-table td { padding: 12px 20px; font-size: 14px; border-bottom: 1px solid var(--border); }
    .val-col { text-align: right; font-weight: 800; font-size: 16px; }
    .deduction { color: #16a34a; }
    .highlight-row { background: var(--primary); color: white; }
    .highlight-row .val-col { font-size: 22px; }
    .gallery { margin-top: 25px; display: grid; grid-template-columns: repeat(4, 1fr); gap: 15px; }
    .gallery-item { border: 1.5px solid var(--border); border-radius: 10px; padding: 5px; background: white; text-align: center; }
    .gallery-img { width: 100%%; height: 80px; object-fit: cover; border-radius: 6px; }
    .gallery-label { font-size: 9px; font-weight: 700; margin-top: 5px; color: var(--text-muted); text-transform: uppercase; }
    .damage-card { margin-top: 25px; }
    .notes-box { font-size: 12px; background: var(--bg-light); border-radius: 8px; padding: 10px; }
    .damage-strip { display: flex; gap: 8px; margin-top: 8px; flex-wrap: wrap; }
    .damage-img { width: 100px; height: 80px; object-fit: cover; border-radius: 8px; border: 2px solid var(--border); }
    .urdu-wrapper { margin-top: 25px; padding: 20px; background: #fffcf5; border: 2px solid #ffeeba; border-radius: 15px; direction: rtl; font-family: 'Noto Nastaliq Urdu', serif; }
    .urdu-title { font-size: 20px; font-weight: 700; color: var(--primary-dark); margin-bottom: 10px; text-align: center; border-bottom: 1px solid #ffeeba; padding-bottom: 5px; }
    .urdu-list { font-size: 14px; line-height: 2.2; color: #333; text-align: justify; padding-right: 20px; }
    .signatures { margin-top: 40px; display: grid; grid-template-columns: 1fr 1fr; gap: 60px; }
    .sig-box { text-align: center; }
    .sig-space { border-bottom: 3px solid var(--text-main); height: 70px; margin-bottom: 10px; display: flex; align-items: flex-end; justify-content: center; }
    .sig-image { max-height: 60px; max-width: 250px; object-fit: contain; }
    .sig-line { width: 100%%; height: 100%%; }
    .sig-title { font-weight: 800; font-size: 14px; color: var(--primary); text-transform: uppercase; }
    .dir-header { text-align: center; padding-bottom: 24px; margin-bottom: 24px; border-bottom: 4px solid var(--primary); }
    .report-title { font-size: 20px; font-weight: 600; margin-top: 16px; }
    .report-date { color: var(--text-muted); font-size: 13px; margin-top: 6px; }
    .summary { display: flex; justify-content: center; gap: 32px; margin: 24px 0; padding: 20px; background: var(--bg-light); border-radius: 14px; border: 2px solid var(--border); }
    .summary-item { text-align: center; padding: 12px 20px; }
    .summary-value { font-size: 26px; font-weight: 700; color: var(--primary); }
    .summary-label { font-size: 12px; color: var(--text-muted); text-transform: uppercase; margin-top: 4px; }
    .clients-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(340px, 1fr)); gap: 16px; }
    .client-card { background: white; border: 2px solid var(--border); border-radius: 14px; padding: 16px; page-break-inside: avoid; }
    .client-name { font-weight: 700; font-size: 16px; margin-bottom: 6px; padding-bottom: 6px; border-bottom: 1px solid var(--border); }
    .client-detail { font-size: 12px; color: var(--text-muted); margin-bottom: 3px; }
    .client-stats { display: flex; gap: 8px; margin: 8px 0; }
    .stat { text-align: center; padding: 10px 14px; background: var(--bg-light); border-radius: 10px; border: 1px solid var(--border); flex: 1; }
    .stat-highlight { background: linear-gradient(90deg, var(--primary) 0%%, var(--primary-dark) 100%%); color: white; }
    .stat-value { display: block; font-weight: 700; font-size: 14px; }
    .stat-label { display: block; font-size: 10px; text-transform: uppercase; margin-top: 2px; }
    .mini-docs { display: flex; gap: 10px; margin-top: 12px; padding-top: 12px; border-top: 1px solid var(--border); }
    .mini-doc { flex: 1; text-align: center; }
    .mini-doc-label { font-size: 9px; font-weight: 600; color: var(--primary); text-transform: uppercase; margin-bottom: 6px; }
    .mini-doc-img { width: 100%%; max-height: 70px; object-fit: contain; border-radius: 6px; border: 1px solid var(--border); }
    .history-table { width: 100%%; border-collapse: collapse; margin-top: 12px; font-size: 11px; }
    .history-table th { text-align: left; color: var(--text-muted); text-transform: uppercase; font-size: 9px; padding: 4px 6px; border-bottom: 1px solid var(--border); }
    .history-table td { padding: 4px 6px; border-bottom: 1px solid var(--bg-light); }
    .badge { padding: 2px 8px; border-radius: 10px; font-size: 9px; font-weight: 700; text-transform: uppercase; }
    .badge-paid { background: #f0fdf4; color: #16a34a; }
    .badge-pending { background: #fef2f2; color: #dc2626; }
    .badge-neutral { background: var(--bg-light); color: var(--text-muted); }
    @media print {
      body { padding: 0; }
      @page { margin: 0.5cm; size: A4; }
      .client-card { page-break-inside: avoid; }
    }
`, brandOrange, brandRed, brandGray800, brandGray500, brandGray200, brandGray50)
