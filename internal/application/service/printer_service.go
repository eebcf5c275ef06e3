package service

import (
	"context"
	"time"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/repository"
	"github.com/smartpurse/pos-terminal/pkg/apperror"
	"github.com/smartpurse/pos-terminal/pkg/logger"
	"github.com/smartpurse/pos-terminal/pkg/printer"
)

// Currency is the currency code printed on receipts.
const Currency = "KES"

// PrinterService renders receipts and hands them to the configured printer.
// Printing happens at most once per checkout action and is never retried:
// a duplicate receipt is worse than a missing one.
type PrinterService struct {
	printer printer.Printer
	stores  repository.StoreRepository
	width   int
	log     *logger.Logger
	now     func() time.Time
}

// NewPrinterService creates a printer service rendering at the given
// character width (printer.Width80mm for standard receipt rolls).
func NewPrinterService(p printer.Printer, stores repository.StoreRepository, width int, log *logger.Logger) *PrinterService {
	if width <= 0 {
		width = printer.Width80mm
	}
	return &PrinterService{
		printer: p,
		stores:  stores,
		width:   width,
		log:     log,
		now:     time.Now,
	}
}

// PrintSale renders the sale's stored line items and prints the receipt.
// The store profile is a precondition: without it the receipt header cannot
// be produced and nothing is printed.
func (s *PrinterService) PrintSale(ctx context.Context, sale *entity.Sale) (*entity.Receipt, error) {
	store, err := s.stores.GetByID(ctx, sale.StoreID)
	if err != nil {
		s.log.Error("receipt_store_lookup", err, map[string]any{"store_id": sale.StoreID})
		return nil, err
	}
	if store == nil {
		err := apperror.NewNotFoundError("Store")
		s.log.Error("receipt_store_lookup", err, map[string]any{"store_id": sale.StoreID})
		return nil, err
	}

	receipt := BuildReceipt(sale, store, s.now())
	data := FormatReceipt(receipt, s.width)

	if err := s.printer.Print(data); err != nil {
		s.log.Error("receipt_print", err, map[string]any{"bill_number": sale.BillNumber})
		return receipt, apperror.NewNetworkError("Failed to print receipt", err)
	}

	s.log.Info("receipt_print", map[string]any{"bill_number": sale.BillNumber})
	return receipt, nil
}

// BuildReceipt composes the printable receipt from a stored sale and the
// store profile.
func BuildReceipt(sale *entity.Sale, store *entity.Store, at time.Time) *entity.Receipt {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: store.Name,
			Phone:     store.Phone,
			Email:     store.Email,
		},
		BillNumber:    sale.BillNumber,
		Date:          at.Format("2006-01-02 15:04"),
		ServedBy:      sale.ServedBy,
		PaymentMethod: sale.PaymentMethod.String(),
		Total:         sale.Total,
	}
	for _, item := range sale.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:     item.Name,
			Rate:     item.Rate,
			Quantity: item.Quantity,
		})
	}
	return receipt
}

// FormatReceipt converts a Receipt into ESC/POS bytes at the given width.
// Formatting is pure; it cannot fail for a well-formed receipt.
func FormatReceipt(r *entity.Receipt, width int) []byte {
	doc := printer.NewDocument(width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.Email != "" {
		doc.Text(r.Header.Email)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Bill metadata
	doc.KeyValue("Bill No:", "#"+r.BillNumber).
		KeyValue("Date:", r.Date)

	if r.ServedBy != "" {
		doc.KeyValue("Served By:", r.ServedBy)
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Payment:", r.PaymentMethod)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Name, item.Quantity, item.Total().StringFixed(2))
	}

	doc.Separator('-')

	doc.SetBold(true).
		KeyValue("TOTAL:", Currency+" "+r.Total.StringFixed(2)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you, come again!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
