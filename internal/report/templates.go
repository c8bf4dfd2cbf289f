package report

// reportTemplates holds the page shell and one named template per
// section kind. The renderer dispatches on the section's kind, so the
// section order is fixed entirely by the assembler.
const reportTemplates = `
{{define "page"}}<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link href="https://fonts.googleapis.com/css2?family=Playfair+Display:wght@700&family=Inter:wght@400;500;600;700;800&family=Noto+Nastaliq+Urdu:wght@400;700&display=swap" rel="stylesheet">
  <style>{{.Style}}</style>
</head>
<body>
{{.Body}}
<script>
  window.onload = function() {
    setTimeout(function() {
      window.print();
    }, {{.PrintDelayMS}});
  }
</script>
</body>
</html>
{{end}}

{{define "section-header"}}
<div class="header">
  <div class="brand-section">
    <div class="logo-container">
      {{if .Company.LogoURL}}<img src="{{.Company.LogoURL}}" class="logo-img" onerror="this.style.display='none'">{{end}}
    </div>
    <div class="company-info">
      <h1 class="company-name">{{.Company.Name}}</h1>
      <p class="company-tagline">{{.Company.Tagline}}</p>
      <div class="company-contact">
        {{.Company.Address}}<br>
        {{.Company.Phone}} | {{.Company.Email}}
      </div>
    </div>
  </div>
  <div class="agreement-badge-container">
    <div class="agreement-badge">{{.Badge}}</div>
    <div class="agreement-no">Ref: #{{.DisplayNumber}}</div>
    <div class="agreement-date">Issued: {{.IssueDate}}</div>
  </div>
</div>
{{end}}

{{define "section-vehicle"}}
<div class="vehicle-hero">
  <div class="vehicle-img-wrap">
    {{if .Image}}<img src="{{.Image}}" class="vehicle-img-large">{{else}}<div class="vehicle-glyph">{{.Glyph}}</div>{{end}}
  </div>
  <div class="vehicle-text">
    <div class="vehicle-title">{{.Title}}</div>
    <div class="vehicle-reg">{{.CarNumber}}</div>
    <div class="vehicle-detail">{{.Detail}}</div>
  </div>
</div>
{{end}}

{{define "section-parties"}}
<div class="main-grid">
  <div class="card">
    <div class="card-header">{{.ClientTitle}}</div>
    <div class="card-body">
      {{range .ClientRows}}<div class="data-item"><span class="data-label">{{.Label}}</span><span class="data-value">{{.Value}}</span></div>
      {{end}}
    </div>
  </div>
  <div class="card">
    <div class="card-header">{{.WitnessTitle}}</div>
    <div class="card-body">
      {{range .WitnessRows}}<div class="data-item"><span class="data-label">{{.Label}}</span><span class="data-value">{{.Value}}</span></div>
      {{end}}
    </div>
  </div>
</div>
{{end}}

{{define "section-timeline"}}
<div class="timeline">
  <div class="timeline-box out">
    <div class="timeline-label">{{.Delivery.Label}}</div>
    <div class="timeline-val">{{.Delivery.Value}}</div>
  </div>
  <div class="timeline-box in">
    <div class="timeline-label">{{.Return.Label}}</div>
    <div class="timeline-val">{{.Return.Value}}</div>
  </div>
</div>
{{end}}

{{define "section-condition"}}
<div class="card">
  <div class="card-header">Equipment &amp; State</div>
  <div class="card-body">
    <div class="check-grid">
      {{if .Accessories}}{{range .Accessories}}<div class="check-pill"><span class="check-dot">●</span> {{.}}</div>{{end}}{{else}}None{{end}}
    </div>
    <div class="data-item"><span class="data-label">Fuel Level</span><span class="data-value">{{.FuelLevel}}</span></div>
    <div class="data-item"><span class="data-label">Odometer</span><span class="data-value">{{.Odometer}}</span></div>
  </div>
</div>
{{end}}

{{define "section-payment"}}
<div class="payment-card">
  <div class="card-header">Payment Summary</div>
  <table class="payment-table">
    {{range .Rows}}<tr{{if .Highlight}} class="highlight-row"{{end}}><td>{{.Label}}</td><td class="val-col{{if .Deduction}} deduction{{end}}">{{if .Deduction}}-{{end}}{{.Value}}</td></tr>
    {{end}}
  </table>
</div>
{{end}}

{{define "section-gallery"}}
<div class="gallery">
  {{range .Entries}}<div class="gallery-item">
    <img src="{{.Src}}" class="gallery-img" onerror="this.style.display='none'">
    <div class="gallery-label">{{.Label}}</div>
  </div>
  {{end}}
</div>
{{end}}

{{define "section-damage"}}
<div class="card damage-card">
  <div class="card-header">Dents &amp; Scratches Report</div>
  <div class="card-body">
    {{if .Notes}}<div class="notes-box">{{.Notes}}</div>{{end}}
    {{if .Images}}<div class="damage-strip">
      {{range .Images}}<img src="{{.}}" class="damage-img">{{end}}
    </div>{{end}}
  </div>
</div>
{{end}}

{{define "section-terms"}}
<div class="urdu-wrapper" dir="rtl">
  <h2 class="urdu-title">{{.Title}} (Terms &amp; Conditions)</h2>
  <ol class="urdu-list">
    {{range .Clauses}}<li>{{.}}</li>
    {{end}}
  </ol>
</div>
{{end}}

{{define "section-signatures"}}
<div class="signatures">
  {{range .Slots}}<div class="sig-box">
    <div class="sig-space">
      {{if .Image}}<img src="{{.Image}}" class="sig-image">{{else}}<div class="sig-line"></div>{{end}}
    </div>
    <div class="sig-title">{{.Title}}</div>
  </div>
  {{end}}
</div>
{{end}}

{{define "section-directory_header"}}
<div class="dir-header">
  {{if .Company.LogoURL}}<img src="{{.Company.LogoURL}}" style="height: 80px; object-fit: contain; margin-bottom: 12px;" onerror="this.style.display='none'">{{end}}
  <h1 class="company-name">{{.Company.Name}}</h1>
  <p class="company-tagline">{{.Company.Tagline}}</p>
  <div class="report-title">{{.ReportTitle}}</div>
  <div class="report-date">Generated on {{.GeneratedOn}}</div>
</div>
{{end}}

{{define "section-stats"}}
<div class="summary">
  <div class="summary-item">
    <div class="summary-value">{{.ClientCount}}</div>
    <div class="summary-label">Total Clients</div>
  </div>
  <div class="summary-item">
    <div class="summary-value">{{.RentalCount}}</div>
    <div class="summary-label">Total Rentals</div>
  </div>
  <div class="summary-item">
    <div class="summary-value">{{.Revenue}}</div>
    <div class="summary-label">Total Revenue</div>
  </div>
</div>
{{end}}

{{define "section-client_cards"}}
<div class="clients-grid">
  {{range .Cards}}<div class="client-card">
    <h3 class="client-name">{{.Name}}</h3>
    <p class="client-detail"><strong>CNIC:</strong> {{.CNIC}}</p>
    <p class="client-detail">{{.Phone}}</p>
    <p class="client-detail">{{.Address}}</p>
    <div class="client-stats">
      <div class="stat">
        <span class="stat-value">{{.RentalCount}}</span>
        <span class="stat-label">Rentals</span>
      </div>
      <div class="stat stat-highlight">
        <span class="stat-value">{{.TotalSpent}}</span>
        <span class="stat-label">Total</span>
      </div>
    </div>
    {{if .Documents}}<div class="mini-docs">
      {{range .Documents}}<div class="mini-doc">
        <p class="mini-doc-label">{{.Label}}</p>
        <img src="{{.Src}}" class="mini-doc-img" onerror="this.style.display='none'">
      </div>
      {{end}}
    </div>{{end}}
    {{if .History}}<table class="history-table">
      <tr><th>Vehicle</th><th>Plate</th><th>Period</th><th>Amount</th><th>Status</th></tr>
      {{range .History}}<tr>
        <td>{{.Vehicle}}</td>
        <td>{{.Plate}}</td>
        <td>{{.Period}}</td>
        <td>{{.Amount}}</td>
        <td><span class="badge {{.BadgeClass}}">{{.Status}}</span></td>
      </tr>
      {{end}}
    </table>{{end}}
  </div>
  {{end}}
</div>
{{end}}
`
