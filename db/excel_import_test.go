package db

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"groupform-server-go/models"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportRosterFromExcel(t *testing.T) {
	file := workbook(t, [][]interface{}{
		{"Name", "Score"},
		{"Minji", 91},
		{"Jisoo", "78.5"},
		{"  Hana ", 85},
	})

	students, err := ImportRosterFromExcel(file, zap.NewNop())

	require.NoError(t, err)
	require.Equal(t, []models.Student{
		{Name: "Minji", Score: 91},
		{Name: "Jisoo", Score: 78.5},
		{Name: "Hana", Score: 85},
	}, students)
}

func TestImportRosterFromExcel_SkipsUnusableRows(t *testing.T) {
	file := workbook(t, [][]interface{}{
		{"Name", "Score"},
		{"", 60},
		{"NoScore"},
		{"Text", "absent"},
		{"NotANumber", "NaN"},
		{"Huge", "Inf"},
		{"Tiny", "-Inf"},
		{"Kept", 70},
	})

	students, err := ImportRosterFromExcel(file, zap.NewNop())

	require.NoError(t, err)
	require.Equal(t, []models.Student{{Name: "Kept", Score: 70}}, students)
}

func TestImportRosterFromExcel_HeaderOnly(t *testing.T) {
	file := workbook(t, [][]interface{}{{"Name", "Score"}})

	students, err := ImportRosterFromExcel(file, zap.NewNop())

	require.NoError(t, err)
	require.Empty(t, students)
}

func TestImportRosterFromExcel_NotAWorkbook(t *testing.T) {
	_, err := ImportRosterFromExcel(bytes.NewBufferString("name,score\nA,1\n"), zap.NewNop())

	require.Error(t, err)
}
