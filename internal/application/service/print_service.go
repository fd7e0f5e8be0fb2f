package service

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/narmadatraders/billing-api/internal/domain/entity"
	"github.com/narmadatraders/billing-api/pkg/printer"
)

// PrintService renders compiled bills for the boundary collaborators: the
// thermal printer and the printable HTML document the print view and PDF
// export consume. Printing is one-shot and best-effort; the service never
// retries.
type PrintService struct {
	printer printer.Printer
	width   int
	tmpl    *template.Template
}

// NewPrintService creates a new print service
func NewPrintService(p printer.Printer, charWidth int) *PrintService {
	return &PrintService{
		printer: p,
		width:   charWidth,
		tmpl:    template.Must(template.New("bill").Parse(billTemplate)),
	}
}

// PrintBill formats the bill as ESC/POS and sends it to the printer
func (s *PrintService) PrintBill(bill *entity.BillDocument) error {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text("NARMADA TRADERS").
		SetFontSize(printer.FontNormal).
		SetBold(false).
		Text(bill.GeneratedAt.Format("02-01-2006 15:04")).
		SetAlign(printer.AlignLeft).
		Separator('-')

	doc.TextF("Customer: %s", bill.CustomerName)
	if bill.HasteName != "" {
		doc.TextF("Haste: %s", bill.HasteName)
	}
	doc.Separator('-')

	for _, row := range bill.ItemRows() {
		doc.BillLine(row.Index, row.Name, row.Quantity, row.Rupees, row.Paise)
	}

	doc.Separator('-').
		SetBold(true).
		KeyValue("Grand Total", "Rs "+bill.GrandTotal).
		SetBold(false).
		FeedLines(2).
		Cut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		return fmt.Errorf("print bill: %w", err)
	}
	return nil
}

// RenderDocument renders the printable HTML bill. The print view shows it
// inline; the export endpoint streams it as a download for client-side PDF
// conversion.
func (s *PrintService) RenderDocument(bill *entity.BillDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, bill); err != nil {
		return nil, fmt.Errorf("render bill document: %w", err)
	}
	return buf.Bytes(), nil
}

// PrinterConnected reports whether the configured printer is reachable
func (s *PrintService) PrinterConnected() bool {
	return s.printer.IsConnected()
}

const billTemplate = `<!DOCTYPE html>
<html lang="hi">
<head>
<meta charset="UTF-8">
<title>Narmada Traders - Bill</title>
<style>
body { font-family: 'Noto Sans Devanagari', Arial, sans-serif; color: #000; font-size: 12px; max-width: 750px; margin: 0 auto; padding: 15px; }
.header { text-align: center; border-bottom: 3px solid #000; padding-bottom: 15px; margin-bottom: 20px; }
.company { font-size: 46px; font-weight: bold; color: red; letter-spacing: 1px; margin: 0 0 10px 0; }
.customer { font-weight: bold; font-size: 20px; margin-bottom: 10px; }
.meta { font-size: 12px; margin: 3px 0; }
table.items { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
table.items th, table.items td { border: 1px solid #000; padding: 8px 4px; font-size: 12px; }
table.items th { background: #f3f4f6; }
td.num { text-align: center; font-weight: 600; width: 10%; }
td.name { text-align: left; font-weight: 500; width: 45%; }
td.qty, td.paise { text-align: center; width: 10%; }
td.price, td.rupees { text-align: center; width: 15%; }
td.rupees { font-weight: bold; }
td.paise { font-weight: bold; color: #dc2626; }
.grand { text-align: right; font-size: 18px; font-weight: bold; }
</style>
</head>
<body>
<div class="header">
  <p class="company">NARMADA TRADERS</p>
</div>
<p class="customer">{{.CustomerName}}</p>
{{if .HasteName}}<p class="meta">हस्ते: {{.HasteName}}</p>{{end}}
<p class="meta">{{.GeneratedAt.Format "02-01-2006 15:04"}}</p>
<table class="items">
<tr><th>Sr. No.</th><th>Item Name</th><th>Qty</th><th>Price</th><th>Total (&#8377;)</th><th>Paise</th></tr>
{{range .Rows}}
<tr>
  <td class="num">{{.Index}}</td>
  {{if .Blank}}<td class="name"></td><td class="qty"></td><td class="price"></td><td class="rupees"></td><td class="paise"></td>
  {{else}}<td class="name">{{.Name}}</td><td class="qty">{{if .Quantity}}{{.Quantity}}{{else}}-{{end}}</td><td class="price">{{if .Price}}&#8377;{{.Price}}{{else}}-{{end}}</td><td class="rupees">&#8377;{{.Rupees}}</td><td class="paise">&#8377;{{.Paise}}</td>{{end}}
</tr>
{{end}}
</table>
<p class="grand">Grand Total: &#8377;{{.GrandTotal}}</p>
</body>
</html>
`
