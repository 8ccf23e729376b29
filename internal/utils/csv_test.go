package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/stretchr/testify/require"
)

func TestWriteSalaryCSV(t *testing.T) {
	records := []models.SalaryRecord{
		{
			Employee:    models.Employee{Code: "BRK001", Name: "Alice", Role: "Molder"},
			GrossSalary: 20500,
			Deductions:  500,
			NetSalary:   20000,
			Paid:        true,
		},
		{
			Employee:    models.Employee{Code: "BRK002", Name: "Bob", Role: "Loader"},
			GrossSalary: 15000,
			NetSalary:   15000,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSalaryCSV(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Employee ID,Name,Role,Gross Salary,Deductions,Net Salary,Status", lines[0])
	require.Equal(t, "BRK001,Alice,Molder,20500.00,500.00,20000.00,Paid", lines[1])
	require.Equal(t, "BRK002,Bob,Loader,15000.00,0.00,15000.00,Pending", lines[2])
}
