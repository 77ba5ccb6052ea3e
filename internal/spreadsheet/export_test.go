package spreadsheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/starlish/bimbel_backend/internal/models"
)

func strPtr(s string) *string { return &s }

func sampleMarks() []models.Attendance {
	sessionTime := "08:00 - 09:30"
	cls := &models.Class{ID: "c1", Name: "Kelas 1"}
	sess := &models.ClassSession{ID: "se1", Name: "Sesi 1", Time: &sessionTime, ClassID: "c1"}
	return []models.Attendance{
		{
			Date:    time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			Present: true,
			Student: &models.Student{ID: "s1", StudentID: "STL001", Name: strPtr("Budi"), ClassID: "c1", Class: cls},
			Session: sess,
		},
		{
			Date:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			Present: false,
			Student: &models.Student{ID: "s2", StudentID: "STL002", Name: strPtr("Sari"), ClassID: "c1", Class: cls},
			Session: sess,
		},
	}
}

func TestBuildAttendanceWorkbook(t *testing.T) {
	f, err := BuildAttendanceWorkbook(sampleMarks())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Absensi")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t,
		[]string{"Tanggal", "Nomor Induk", "Nama Siswa", "Kelas", "Sesi", "Waktu Sesi", "Status"},
		rows[0])
	require.Equal(t,
		[]string{"03/03/2025", "STL001", "Budi", "Kelas 1", "Sesi 1", "08:00 - 09:30", "Hadir"},
		rows[1])
	require.Equal(t, "Tidak Hadir", rows[2][6])
}

func TestBuildFinanceWorkbook(t *testing.T) {
	records := []models.Finance{
		{
			Type:     models.FinanceIncome,
			Amount:   150000,
			Category: strPtr("SPP"),
			Date:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Type:   models.FinanceExpense,
			Amount: 50000,
			Date:   time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	f, err := BuildFinanceWorkbook(records)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Keuangan")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, []string{"Tanggal", "Tipe", "Jumlah", "Kategori", "Keterangan"}, rows[0])
	require.Equal(t, []string{"15/03/2025", "Pemasukan", "150000", "SPP", "-"}, rows[1])
	require.Equal(t, []string{"20/03/2025", "Pengeluaran", "50000", "-", "-"}, rows[2])
}

// Exported attendance carries the same columns the students importer reads,
// so an export can be re-imported without losing codes or names.
func TestAttendanceExportReimportRoundTrip(t *testing.T) {
	f, err := BuildAttendanceWorkbook(sampleMarks())
	require.NoError(t, err)
	defer f.Close()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ReadRows(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	parsed, errCount := ParseStudentRows(rows)
	require.Equal(t, 0, errCount)
	require.Len(t, parsed, 2)
	require.Equal(t, "STL001", parsed[0].StudentID)
	require.Equal(t, "Budi", parsed[0].Name)
	require.Equal(t, "Kelas 1", parsed[0].ClassName)
	require.Equal(t, "STL002", parsed[1].StudentID)
	require.Equal(t, "Sari", parsed[1].Name)
}

func TestFinanceExportReimportRoundTrip(t *testing.T) {
	records := []models.Finance{
		{
			Type:     models.FinanceIncome,
			Amount:   150000,
			Category: strPtr("SPP"),
			Date:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	f, err := BuildFinanceWorkbook(records)
	require.NoError(t, err)
	defer f.Close()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ReadRows(buf)
	require.NoError(t, err)

	now := time.Now().UTC()
	parsed, errCount := ParseFinanceRows(rows, now)
	require.Equal(t, 0, errCount)
	require.Len(t, parsed, 1)
	require.Equal(t, "income", parsed[0].Type)
	require.Equal(t, 150000.0, parsed[0].Amount)
	require.Equal(t, "SPP", parsed[0].Category)
	require.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), parsed[0].Date)
}
