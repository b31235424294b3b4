package invoice

import (
	"strings"
	"text/template"
	"time"
)

// Company identity printed in the document header. These are fixed for the
// single operating entity and not configuration.
var fromCompany = struct {
	Name         string
	AddressLines []string
	Reg          string
	VAT          string
}{
	Name:         "Cape Kayak Adventures",
	AddressLines: []string{"179 Beach Road Three Anchor Bay", "Cape Town", "8005"},
	Reg:          "Reg. 1995/051404/23",
	VAT:          "4290176926",
}

var bankingDetails = struct {
	Owner      string
	Number     string
	Type       string
	Bank       string
	BranchCode string
}{
	Owner:      "Cape Kayak Adventures (Test)",
	Number:     "070631824",
	Type:       "Current / Cheque",
	Bank:       "Standard Bank",
	BranchCode: "020909",
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(raw string) string {
	return htmlEscaper.Replace(raw)
}

// proFormaData holds pre-escaped strings only. The template performs no
// escaping of its own, so every customer-supplied field must pass through
// escapeHTML before it lands here.
type proFormaData struct {
	InvoiceNumber string
	BookingRef    string
	ToName        string
	ToEmail       string
	ToPhone       string
	FromBlock     string
	CompanyName   string
	CompanyMeta   string
	Service       string
	Note          string
	Date          string
	DueDate       string
	Adults        int
	Children      int
	Guides        int
	VATPercent    string
	Total         string
	Subtotal      string
	VAT           string
	AmountPaid    string
	BalanceDue    string
	BankOwner     string
	BankNumber    string
	BankType      string
	BankName      string
	BankBranch    string
}

var proFormaTmpl = template.Must(template.New("proforma").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Pro Forma Invoice {{.InvoiceNumber}}</title>
  <style>
    @page { size: A4; margin: 10mm; }
    body { margin: 0; background: #eeeeee; font-family: Arial, Helvetica, sans-serif; color: #111; }
    .page { width: 210mm; min-height: 297mm; margin: 0 auto; background: #fff; padding: 12mm; box-sizing: border-box; }
    .row { display: flex; justify-content: space-between; gap: 10mm; }
    .brand { font-size: 40px; line-height: 1; color: #28a2d4; margin-bottom: 2mm; }
    .company { font-size: 18px; font-weight: 700; margin-top: 1mm; }
    .muted { font-size: 12px; color: #333; }
    table { width: 100%; border-collapse: collapse; }
    td, th { border: 1px solid #222; padding: 6px 7px; vertical-align: top; font-size: 12px; }
    th { background: #d8d8d8; text-align: left; font-weight: 700; }
    .num { text-align: right; font-family: "Courier New", monospace; }
    .summary td { font-size: 12px; }
    .summary-label { text-align: right; font-weight: 700; background: #efefef; }
    .summary-strong { font-weight: 800; background: #d3d3d3; }
    .section-title { font-size: 30px; letter-spacing: 0.06em; color: #898989; font-weight: 800; margin: 0 0 4mm; text-align: right; }
    .spacer { height: 6mm; }
    .hr { border: 0; border-top: 1px solid #cfcfcf; margin: 6mm 0; }
    .bank-title { font-size: 30px; font-weight: 700; margin-top: 8mm; margin-bottom: 3mm; }
    .bank td { border: none; padding: 2px 2px; font-size: 12px; }
    .bank .label { font-weight: 700; width: 38mm; }
    .to-line { white-space: pre-line; }
    @media print { body { background: #fff; } .page { margin: 0; box-shadow: none; } }
  </style>
</head>
<body>
  <div class="page">
    <div class="row">
      <div>
        <div class="brand">~</div>
        <div class="company">{{.CompanyName}}</div>
        <div class="muted" style="margin-top:4mm;">{{.CompanyMeta}}</div>
      </div>
      <div style="flex:1;">
        <h1 class="section-title">PROFORMA INVOICE</h1>
      </div>
    </div>

    <div class="spacer"></div>
    <div class="row">
      <table style="width: 56%;">
        <tr>
          <th style="width:50%;">From:</th>
          <th>To:</th>
        </tr>
        <tr>
          <td class="to-line">{{.FromBlock}}</td>
          <td class="to-line">{{.ToName}}{{if .ToEmail}}
{{.ToEmail}}{{end}}{{if .ToPhone}}
{{.ToPhone}}{{end}}</td>
        </tr>
      </table>

      <table style="width: 38%;">
        <tr><th style="width:45%;">Invoice #:</th><td class="num">{{.InvoiceNumber}}</td></tr>
        <tr><th>Booking #:</th><td class="num">{{.BookingRef}}</td></tr>
        <tr><th>Date:</th><td class="num">{{.Date}}</td></tr>
        <tr><th>Amount Due:</th><td class="num">R{{.BalanceDue}}</td></tr>
      </table>
    </div>

    <hr class="hr" />
    <table>
      <tr>
        <th>Service</th>
        <th style="width:17mm;" class="num">Adults (Qty)</th>
        <th style="width:19mm;" class="num">Children (Qty)</th>
        <th style="width:17mm;" class="num">Guides (Qty)</th>
        <th style="width:30mm;" class="num">Total Cost (ZAR)</th>
      </tr>
      <tr>
        <td>{{.Service}}</td>
        <td class="num">{{.Adults}}</td>
        <td class="num">{{.Children}}</td>
        <td class="num">{{.Guides}}</td>
        <td class="num">{{.Total}}</td>
      </tr>
      {{if .Note}}<tr><td colspan="5">Price Change Reason: {{.Note}}</td></tr>{{end}}
    </table>

    <table class="summary">
      <tr>
        <td style="width:50%; border-right:none;"></td>
        <td class="summary-label" style="width:15%;">Sub-total</td>
        <td class="summary-label" style="width:20%;">(Excl VAT)</td>
        <td class="num" style="width:15%;">{{.Subtotal}}</td>
      </tr>
      <tr>
        <td style="border-right:none;"></td>
        <td class="summary-label"></td>
        <td class="summary-label">VAT - {{.VATPercent}}%</td>
        <td class="num">{{.VAT}}</td>
      </tr>
      <tr>
        <td style="border-right:none;"></td>
        <td class="summary-label"></td>
        <td class="summary-label">Total:</td>
        <td class="num"><strong>{{.Total}}</strong></td>
      </tr>
      <tr>
        <td style="border-right:none;"></td>
        <td class="summary-label"></td>
        <td class="summary-label">Amount Paid:</td>
        <td class="num">{{.AmountPaid}}</td>
      </tr>
      <tr>
        <td style="border-right:none;"></td>
        <td class="summary-strong"></td>
        <td class="summary-label summary-strong">Balance Due:</td>
        <td class="num summary-strong"><strong>R{{.BalanceDue}}</strong></td>
      </tr>
    </table>

    <div class="bank-title">Banking Details</div>
    <table class="bank">
      <tr><td class="label">Account Owner:</td><td>{{.BankOwner}}</td></tr>
      <tr><td class="label">Account Number:</td><td>{{.BankNumber}}</td></tr>
      <tr><td class="label">Account Type:</td><td>{{.BankType}}</td></tr>
      <tr><td class="label">Bank Name:</td><td>{{.BankName}}</td></tr>
      <tr><td class="label">Branch Code:</td><td>{{.BankBranch}}</td></tr>
      <tr><td class="label">Reference:</td><td>{{.InvoiceNumber}}</td></tr>
      <tr><td class="label">Payment Due:</td><td>{{.DueDate}}</td></tr>
    </table>
  </div>
</body>
</html>`))

// RenderProForma builds the self-contained pro forma invoice document as an
// HTML string. The output is print-ready A4 and safe to serve or email
// directly. Customer fields are escaped; locale-sensitive dates use loc.
func RenderProForma(inv Invoice, loc *time.Location) string {
	counts := inv.PartyCounts()
	pay := inv.Payment()

	data := proFormaData{
		InvoiceNumber: escapeHTML(inv.Number()),
		BookingRef:    escapeHTML(inv.Ref()),
		ToName:        escapeHTML(text(inv.CustomerName, "Customer")),
		ToEmail:       escapeHTML(text(inv.CustomerEmail, "")),
		ToPhone:       escapeHTML(text(inv.CustomerPhone, "")),
		FromBlock:     escapeHTML(fromCompany.Name + "\n" + strings.Join(fromCompany.AddressLines, "\n")),
		CompanyName:   escapeHTML(fromCompany.Name),
		CompanyMeta:   escapeHTML(fromCompany.Reg) + " VAT: " + escapeHTML(fromCompany.VAT),
		Service:       escapeHTML(inv.ServiceDescription(loc)),
		Note:          escapeHTML(text(inv.Notes, "")),
		Date:          escapeHTML(formatDate(coalesceTime(inv.CreatedAt, inv.TourDate), loc)),
		DueDate:       escapeHTML(formatDate(coalesceTime(inv.TourDate, inv.CreatedAt), loc)),
		Adults:        counts.Adults,
		Children:      counts.Children,
		Guides:        counts.Guides,
		VATPercent:    VATRate.Mul(decimalHundred).StringFixed(1),
		Total:         FormatMoney(pay.Total),
		Subtotal:      FormatMoney(pay.Subtotal),
		VAT:           FormatMoney(pay.VAT),
		AmountPaid:    FormatMoney(pay.AmountPaid),
		BalanceDue:    FormatMoney(pay.BalanceDue),
		BankOwner:     escapeHTML(bankingDetails.Owner),
		BankNumber:    escapeHTML(bankingDetails.Number),
		BankType:      escapeHTML(bankingDetails.Type),
		BankName:      escapeHTML(bankingDetails.Bank),
		BankBranch:    escapeHTML(bankingDetails.BranchCode),
	}

	var b strings.Builder
	// The template is a compile-time constant over plain strings, so
	// Execute cannot fail here.
	_ = proFormaTmpl.Execute(&b, data)
	return b.String()
}

// FileName is the suggested download name for a rendered document.
func FileName(inv Invoice) string {
	return "proforma-" + inv.Number() + ".html"
}
