package utils

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Ani07-05/brickdash/internal/models"
)

// WriteSalaryCSV renders salary records as the payroll CSV download.
// Each record must have its Employee relation preloaded.
func WriteSalaryCSV(w io.Writer, records []models.SalaryRecord) error {
	cw := csv.NewWriter(w)

	header := []string{"Employee ID", "Name", "Role", "Gross Salary", "Deductions", "Net Salary", "Status"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		status := "Pending"
		if r.Paid {
			status = "Paid"
		}
		row := []string{
			r.Employee.Code,
			r.Employee.Name,
			r.Employee.Role,
			fmt.Sprintf("%.2f", r.GrossSalary),
			fmt.Sprintf("%.2f", r.Deductions),
			fmt.Sprintf("%.2f", r.NetSalary),
			status,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
