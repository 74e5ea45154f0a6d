package service

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"log"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/gateway"
	"github.com/opticore/optipos/pkg/apperror"
	"github.com/opticore/optipos/pkg/numword"
	"github.com/opticore/optipos/pkg/printer"
	"github.com/opticore/optipos/pkg/utils"
)

// Print modes supported by the receipt pipeline.
const (
	PrintModeText   = "text"
	PrintModeRaster = "raster"
)

// rasterScale is the upscale factor applied before rasterizing, for crisp
// output on the 203 DPI print head.
const rasterScale = 3

// ReceiptService composes printable receipts from invoices and drives the
// thermal printer. The receipt is a value object built at print time from
// the invoice, the serving user and the global invoice settings; nothing
// here is persisted.
type ReceiptService struct {
	sales    gateway.SalesGateway
	settings gateway.SettingsGateway
	device   printer.Printer
}

// NewReceiptService creates a new receipt service
func NewReceiptService(sales gateway.SalesGateway, settings gateway.SettingsGateway, device printer.Printer) *ReceiptService {
	return &ReceiptService{sales: sales, settings: settings, device: device}
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// loadSettings fetches the invoice settings, falling back to defaults so a
// backend outage never blocks printing a receipt for a completed sale.
func (s *ReceiptService) loadSettings(ctx context.Context) *entity.InvoiceSettings {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		log.Printf("invoice settings unavailable, using defaults: %v", err)
		return entity.DefaultInvoiceSettings()
	}
	if settings.PaperWidthMM <= 0 {
		settings.PaperWidthMM = 80
	}
	return settings
}

// BuildReceipt composes the receipt value object for an invoice.
func (s *ReceiptService) BuildReceipt(ctx context.Context, saleID, cashier string) (*entity.Receipt, error) {
	invoice, err := s.sales.Get(ctx, saleID)
	if err != nil {
		return nil, err
	}
	settings := s.loadSettings(ctx)
	return composeReceipt(invoice, settings, cashier), nil
}

func composeReceipt(invoice *entity.Invoice, settings *entity.InvoiceSettings, cashier string) *entity.Receipt {
	items := make([]entity.ReceiptItem, len(invoice.Items))
	for i, item := range invoice.Items {
		rx := item.Prescription
		if !settings.ShowPrescription {
			rx = nil
		}
		items[i] = entity.ReceiptItem{
			Name:         item.ItemName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Total:        item.Subtotal,
			Prescription: rx,
		}
	}

	r := &entity.Receipt{
		Header: entity.ReceiptHeader{
			BusinessName: settings.BusinessName,
			Address:      settings.Address,
			Phone:        settings.Phone,
		},
		Ref:           utils.NewReceiptRef(),
		InvoiceNo:     invoice.InvoiceNumber,
		Date:          invoice.CreatedAt.Format("02 Jan 2006 03:04 PM"),
		Cashier:       cashier,
		PaymentMethod: string(invoice.PaymentMethod),
		Items:         items,
		SubTotal:      invoice.TotalAmount,
		Discount:      invoice.Discount,
		NetTotal:      invoice.FinalAmount,
		Paid:          invoice.PaidAmount,
		Due:           invoice.Due(),
		Note:          invoice.Note,
		FooterText:    settings.FooterText,
		PaperWidthMM:  settings.PaperWidthMM,
	}
	if invoice.Customer != nil {
		r.Customer = invoice.Customer.Name
	}

	// Amount in words covers the net total, rounded to the nearest whole
	// unit. An out-of-range total just drops the line.
	if words, err := numword.ToWords(int64(math.Round(invoice.FinalAmount))); err == nil {
		r.AmountInWords = words
	}
	return r
}

// rxRows returns the non-empty prescription rows as label/sph/cyl/axis cells.
func rxRows(rx *entity.PrescriptionData) [][]string {
	var rows [][]string
	orDash := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "-"
		}
		return s
	}
	add := func(label string, v entity.RxValues) {
		if v.Empty() {
			return
		}
		rows = append(rows, []string{label, orDash(v.Sph), orDash(v.Cyl), orDash(v.Axis)})
	}
	add("R-Dist", rx.Right.Distance)
	add("R-Near", rx.Right.Near)
	add("L-Dist", rx.Left.Distance)
	add("L-Near", rx.Left.Near)
	return rows
}

var rxColumnWidths = []int{8, 8, 8, 8}

// FormatReceipt renders the receipt as an ESC/POS text document.
func FormatReceipt(r *entity.Receipt) *printer.Document {
	doc := printer.NewDocument(printer.CharWidthForPaper(r.PaperWidthMM))

	doc.SetAlign(printer.AlignCenter)
	doc.SetBold(true).SetFontSize(printer.FontDouble)
	doc.Text(r.Header.BusinessName)
	doc.SetBold(false).SetFontSize(printer.FontNormal)
	if r.Header.Address != "" {
		doc.WrapText(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	doc.LineFeed()

	doc.SetAlign(printer.AlignLeft)
	doc.KeyValue("Invoice", r.InvoiceNo)
	doc.KeyValue("Date", r.Date)
	if r.Customer != "" {
		doc.KeyValue("Customer", r.Customer)
	}
	if r.Cashier != "" {
		doc.KeyValue("Served by", r.Cashier)
	}
	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, money(item.Total))
		if item.Prescription.HasValues() {
			doc.Columns(rxColumnWidths, []string{"Eye", "SPH", "CYL", "AXIS"})
			for _, row := range rxRows(item.Prescription) {
				doc.Columns(rxColumnWidths, row)
			}
			if item.Prescription.LensType != "" {
				doc.Text("Lens: " + item.Prescription.LensType)
			}
			if item.Prescription.Remarks != "" {
				doc.WrapText("Note: " + item.Prescription.Remarks)
			}
		}
	}
	doc.Separator('-')

	doc.KeyValue("Subtotal", money(r.SubTotal))
	if r.Discount > 0 {
		doc.KeyValue("Discount", money(r.Discount))
	}
	doc.SetBold(true)
	doc.KeyValue("Total", money(r.NetTotal))
	doc.SetBold(false)
	doc.KeyValue("Paid", money(r.Paid))
	doc.KeyValue("Due", money(r.Due))
	if r.PaymentMethod != "" {
		doc.KeyValue("Method", r.PaymentMethod)
	}
	if r.AmountInWords != "" {
		doc.WrapText("In words: " + r.AmountInWords + " only")
	}
	doc.Separator('-')

	if r.Note != "" {
		doc.WrapText(r.Note)
	}
	if r.FooterText != "" {
		doc.SetAlign(printer.AlignCenter)
		doc.WrapText(r.FooterText)
	}
	if r.Ref != "" {
		doc.SetAlign(printer.AlignCenter)
		doc.Text(r.Ref)
	}
	doc.FeedLines(3)
	doc.Cut()
	return doc
}

// RasterLines lays the receipt out as text rows for image rendering. The
// layout mirrors FormatReceipt; alignment is carried per line since the
// rasterizer has no printer state.
func RasterLines(r *entity.Receipt) []printer.RasterLine {
	width := printer.CharWidthForPaper(r.PaperWidthMM)
	var lines []printer.RasterLine
	center := func(s string) {
		lines = append(lines, printer.RasterLine{Text: s, Align: printer.AlignCenter})
	}
	left := func(s string) {
		lines = append(lines, printer.RasterLine{Text: s, Align: printer.AlignLeft})
	}
	kv := func(key, value string) {
		spaces := width - utf8.RuneCountInString(key) - utf8.RuneCountInString(value)
		if spaces < 1 {
			spaces = 1
		}
		left(key + strings.Repeat(" ", spaces) + value)
	}
	sep := func() { left(strings.Repeat("-", width)) }

	center(r.Header.BusinessName)
	if r.Header.Address != "" {
		center(r.Header.Address)
	}
	if r.Header.Phone != "" {
		center(r.Header.Phone)
	}
	left("")

	kv("Invoice", r.InvoiceNo)
	kv("Date", r.Date)
	if r.Customer != "" {
		kv("Customer", r.Customer)
	}
	if r.Cashier != "" {
		kv("Served by", r.Cashier)
	}
	sep()

	for _, item := range r.Items {
		kv(fmt.Sprintf("%dx %s", item.Quantity, item.Name), money(item.Total))
		if item.Prescription.HasValues() {
			left(columnsRow(rxColumnWidths, []string{"Eye", "SPH", "CYL", "AXIS"}))
			for _, row := range rxRows(item.Prescription) {
				left(columnsRow(rxColumnWidths, row))
			}
			if item.Prescription.LensType != "" {
				left("Lens: " + item.Prescription.LensType)
			}
		}
	}
	sep()

	kv("Subtotal", money(r.SubTotal))
	if r.Discount > 0 {
		kv("Discount", money(r.Discount))
	}
	kv("Total", money(r.NetTotal))
	kv("Paid", money(r.Paid))
	kv("Due", money(r.Due))
	if r.AmountInWords != "" {
		for _, row := range wrapWords("In words: "+r.AmountInWords+" only", width) {
			left(row)
		}
	}
	sep()
	if r.FooterText != "" {
		center(r.FooterText)
	}
	if r.Ref != "" {
		center(r.Ref)
	}
	return lines
}

func columnsRow(widths []int, cells []string) string {
	var line strings.Builder
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if utf8.RuneCountInString(cell) > w {
			cell = string([]rune(cell)[:w])
		}
		line.WriteString(cell)
		if pad := w - utf8.RuneCountInString(cell); pad > 0 {
			line.WriteString(strings.Repeat(" ", pad))
		}
	}
	return strings.TrimRight(line.String(), " ")
}

func wrapWords(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var rows []string
	row := words[0]
	for _, w := range words[1:] {
		if utf8.RuneCountInString(row)+1+utf8.RuneCountInString(w) > width {
			rows = append(rows, row)
			row = w
			continue
		}
		row += " " + w
	}
	return append(rows, row)
}

// rasterDocument renders the receipt as a GS v 0 raster block wrapped in a
// minimal document.
func rasterDocument(r *entity.Receipt) *printer.Document {
	img := printer.RenderImage(RasterLines(r), printer.RasterWidth(r.PaperWidthMM))
	img = printer.Upscale(img, rasterScale)

	doc := printer.NewDocument(printer.CharWidthForPaper(r.PaperWidthMM))
	doc.SetAlign(printer.AlignCenter)
	doc.Raw(printer.ToRasterCommand(img))
	doc.FeedLines(3)
	doc.Cut()
	return doc
}

// Print renders and prints the receipt for a sale. Raster mode falls back to
// text when the printer rejects the image block.
func (s *ReceiptService) Print(ctx context.Context, saleID, cashier, mode string) error {
	receipt, err := s.BuildReceipt(ctx, saleID, cashier)
	if err != nil {
		return err
	}

	if mode == "" {
		mode = PrintModeRaster
	}
	switch mode {
	case PrintModeText:
		return s.print(FormatReceipt(receipt).Bytes())
	case PrintModeRaster:
		if err := s.print(rasterDocument(receipt).Bytes()); err != nil {
			log.Printf("raster print failed, retrying as text: %v", err)
			return s.print(FormatReceipt(receipt).Bytes())
		}
		return nil
	default:
		return apperror.NewBadRequestError("Unknown print mode: " + mode)
	}
}

func (s *ReceiptService) print(data []byte) error {
	if err := s.device.Print(data); err != nil {
		return apperror.NewAppError(503, "Printer unavailable: "+err.Error())
	}
	return nil
}

// RenderPNG returns the upscaled receipt image as PNG, for on-screen preview
// or saving a copy.
func (s *ReceiptService) RenderPNG(ctx context.Context, saleID, cashier string) ([]byte, error) {
	receipt, err := s.BuildReceipt(ctx, saleID, cashier)
	if err != nil {
		return nil, err
	}

	img := printer.RenderImage(RasterLines(receipt), printer.RasterWidth(receipt.PaperWidthMM))
	img = printer.Upscale(img, rasterScale)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TestPrint sends a short test page so a cashier can verify the printer
// without a sale.
func (s *ReceiptService) TestPrint(ctx context.Context) error {
	settings := s.loadSettings(ctx)
	doc := printer.NewDocument(printer.CharWidthForPaper(settings.PaperWidthMM))
	doc.SetAlign(printer.AlignCenter)
	doc.SetBold(true)
	doc.Text(settings.BusinessName)
	doc.SetBold(false)
	doc.Text("Printer test page")
	doc.Text(time.Now().Format("02 Jan 2006 03:04 PM"))
	doc.Separator('-')
	doc.FeedLines(3)
	doc.Cut()
	return s.print(doc.Bytes())
}

// Status reports whether the configured printer is reachable.
func (s *ReceiptService) Status() map[string]interface{} {
	return map[string]interface{}{
		"connected": s.device.IsConnected(),
	}
}
