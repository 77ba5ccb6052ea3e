package spreadsheet

import (
	"github.com/xuri/excelize/v2"

	"github.com/starlish/bimbel_backend/internal/models"
)

const dateLayout = "02/01/2006"

var attendanceHeaders = []interface{}{
	"Tanggal", "Nomor Induk", "Nama Siswa", "Kelas", "Sesi", "Waktu Sesi", "Status",
}

var financeHeaders = []interface{}{
	"Tanggal", "Tipe", "Jumlah", "Kategori", "Keterangan",
}

// BuildAttendanceWorkbook renders attendance marks (with student, class and
// session preloaded) into a single-sheet workbook named "Absensi".
func BuildAttendanceWorkbook(marks []models.Attendance) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Absensi"
	f.SetSheetName("Sheet1", sheet)

	if err := f.SetSheetRow(sheet, "A1", &attendanceHeaders); err != nil {
		return nil, err
	}
	applyHeaderStyle(f, sheet, len(attendanceHeaders))

	for i, a := range marks {
		name := "-"
		code := ""
		className := "-"
		if a.Student != nil {
			code = a.Student.StudentID
			if a.Student.Name != nil {
				name = *a.Student.Name
			}
			if a.Student.Class != nil {
				className = a.Student.Class.Name
			}
		}
		sessionName := "-"
		sessionTime := "-"
		if a.Session != nil {
			sessionName = a.Session.Name
			if a.Session.Time != nil {
				sessionTime = *a.Session.Time
			}
		}
		status := "Tidak Hadir"
		if a.Present {
			status = "Hadir"
		}

		row := []interface{}{
			a.Date.Format(dateLayout), code, name, className, sessionName, sessionTime, status,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// BuildFinanceWorkbook renders finance records into a single-sheet workbook
// named "Keuangan". Nullable category/description fall back to "-".
func BuildFinanceWorkbook(records []models.Finance) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Keuangan"
	f.SetSheetName("Sheet1", sheet)

	if err := f.SetSheetRow(sheet, "A1", &financeHeaders); err != nil {
		return nil, err
	}
	applyHeaderStyle(f, sheet, len(financeHeaders))

	for i, rec := range records {
		tipe := "Pengeluaran"
		if rec.Type == models.FinanceIncome {
			tipe = "Pemasukan"
		}
		category := "-"
		if rec.Category != nil && *rec.Category != "" {
			category = *rec.Category
		}
		description := "-"
		if rec.Description != nil && *rec.Description != "" {
			description = *rec.Description
		}

		row := []interface{}{
			rec.Date.Format(dateLayout), tipe, rec.Amount, category, description,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func applyHeaderStyle(f *excelize.File, sheet string, cols int) {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return
	}
	last, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return
	}
	f.SetCellStyle(sheet, "A1", last, style)
}
