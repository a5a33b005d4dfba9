package services

import (
	"fmt"

	"rechargehub-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

// GenerateRechargeWorkbook renders the ledger as a styled xlsx workbook for
// the admin export download.
func GenerateRechargeWorkbook(recharges []models.Recharge) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Recharges"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"No", "Date", "User ID", "Phone", "Plan", "Amount", "Validity", "Method", "Status"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheetName, cell, h)
	}

	styleHeader, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	f.SetCellStyle(sheetName, "A1", "I1", styleHeader)

	styleFailed, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "#EF4444"}})
	if err != nil {
		return nil, err
	}

	row := 2
	for i, r := range recharges {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.CreatedAt.Format("02-01-2006 15:04"))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.UserID)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.PhoneNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.PlanName)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), r.Validity)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), r.PaymentMethod)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), r.Status)

		if r.Status == models.RechargeStatusFailed {
			f.SetCellStyle(sheetName, fmt.Sprintf("I%d", row), fmt.Sprintf("I%d", row), styleFailed)
		}

		row++
	}

	f.SetColWidth(sheetName, "A", "A", 5)
	f.SetColWidth(sheetName, "B", "B", 18)
	f.SetColWidth(sheetName, "C", "D", 14)
	f.SetColWidth(sheetName, "E", "E", 24)
	f.SetColWidth(sheetName, "F", "I", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
