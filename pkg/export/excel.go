// Package export renders financial records into spreadsheet workbooks for
// download. Amounts are written as decimal currency values, derived fields
// exactly as computed.
package export

import (
	"bytes"
	"fmt"

	"github.com/bizledger/bizledger-api/internal/domain/derive"
	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// InvoiceRegister renders invoices with their line items into an xlsx
// workbook, one row per line item
func InvoiceRegister(invoices []entity.Invoice) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Invoices"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Invoice No", "Vendor", "Invoice Date", "Due Date", "Status",
		"Particulars", "Ordered Qty", "Dispatched Qty", "Balance Qty",
		"Unit Price", "Basic Amount", "Tax %", "Tax Amount", "Line Total",
		"Total Cost", "Amount Received", "Pending Amount", "Days Delayed",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, inv := range invoices {
		items := inv.Items
		if len(items) == 0 {
			// Keep headerless invoices visible in the register
			items = []entity.InvoiceItem{{}}
		}
		for _, item := range items {
			values := []interface{}{
				inv.InvoiceNo,
				inv.VendorName,
				inv.InvoiceDate.Format("2006-01-02"),
				inv.DueDate.Format("2006-01-02"),
				inv.Status.String(),
				item.Particulars,
				item.OrderedQty,
				item.DispatchedQty,
				item.BalanceQty,
				derive.UnitPrice(item.BasicAmount, item.DispatchedQty),
				derive.Rupees(item.BasicAmount),
				item.TaxPercent,
				derive.Rupees(item.TaxAmount),
				derive.Rupees(item.LineTotal),
				derive.Rupees(inv.TotalCost),
				derive.Rupees(inv.AmountReceived),
				derive.Rupees(inv.PendingAmount),
				inv.DaysDelayed,
			}
			if err := setRow(f, sheet, row, values); err != nil {
				return nil, err
			}
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

// ExpenseReport renders expenses into an xlsx workbook with a totals row
func ExpenseReport(expenses []entity.Expense) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Expenses"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Category", "Description", "Payment Mode", "Status", "Amount"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	var total int64
	row := 2
	for _, e := range expenses {
		values := []interface{}{
			e.Date.Format("2006-01-02"),
			e.Category.String(),
			e.Description,
			string(e.PaymentMode),
			string(e.Status),
			derive.Rupees(e.Amount),
		}
		if err := setRow(f, sheet, row, values); err != nil {
			return nil, err
		}
		total += e.Amount
		row++
	}

	if err := setRow(f, sheet, row, []interface{}{"", "", "", "", "Total", derive.Rupees(total)}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
