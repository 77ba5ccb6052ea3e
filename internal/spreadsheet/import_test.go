package spreadsheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "plain", raw: "150000", want: 150000},
		{name: "rupiah with thousand dots", raw: "Rp 150.000", want: 150000},
		{name: "indonesian decimals", raw: "1.500,50", want: 1500.50},
		{name: "english decimals", raw: "1,500.50", want: 1500.50},
		{name: "short decimal comma", raw: "10,5", want: 10.5},
		{name: "negative", raw: "-2.500", want: -2500},
		{name: "currency suffix", raw: "150000 IDR", want: 150000},
		{name: "not a number", raw: "gratis", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "only minus", raw: "-", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateCell(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Spreadsheet serial: 45000 days after 1899-12-30 is 2023-03-15.
	got := ParseDateCell("45000", now)
	require.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), got)

	got = ParseDateCell("15/03/2025", now)
	require.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)

	got = ParseDateCell("5/3/2025", now)
	require.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), got)

	require.Equal(t, now, ParseDateCell("", now))
	require.Equal(t, now, ParseDateCell("kemarin", now))
}

func TestParseStudentRows(t *testing.T) {
	rows := []Row{
		{"Nomor Induk": "stl001", "Nama": "Budi", "Kelas": "Kelas 1"},
		{"No Induk": "STL002", "Nama Siswa": "Sari", "kelas": "Kelas 2"},
		{"Nomor Induk": "", "Nama": "Tanpa Induk", "Kelas": "Kelas 1"},
		{"Nomor Induk": "STL003", "Nama": "", "Kelas": "Kelas 1"},
		{"Nomor Induk": "STL004", "Nama": "Tanpa Kelas"},
	}

	parsed, errCount := ParseStudentRows(rows)
	require.Len(t, parsed, 2)
	require.Equal(t, 3, errCount)

	require.Equal(t, "STL001", parsed[0].StudentID, "student code is uppercased")
	require.Equal(t, "Budi", parsed[0].Name)
	require.Equal(t, "Kelas 1", parsed[0].ClassName)

	require.Equal(t, "STL002", parsed[1].StudentID, "alias headers resolve")
	require.Equal(t, "Sari", parsed[1].Name)
}

func TestParseFinanceRows(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []Row{
		{"Tipe": "Pemasukan", "Jumlah": "Rp 150.000", "Tanggal": "15/03/2025", "Kategori": "SPP"},
		{"Jenis": "uang masuk", "Jumlah": "250000"},
		{"Tipe": "Pengeluaran", "Jumlah": "50.000", "Keterangan": "ATK"},
		{"Tipe": "Pemasukan", "Jumlah": "banyak"},
	}

	parsed, errCount := ParseFinanceRows(rows, now)
	require.Len(t, parsed, 3)
	require.Equal(t, 1, errCount)

	first := parsed[0]
	require.Equal(t, "income", first.Type, `"masuk" substring maps to income`)
	require.Equal(t, 150000.0, first.Amount)
	require.Equal(t, "SPP", first.Category)
	require.Equal(t, "-", first.Description, "missing description defaults to -")
	require.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), first.Date)

	second := parsed[1]
	require.Equal(t, "income", second.Type)
	require.Equal(t, "-", second.Category)
	require.Equal(t, now, second.Date, "missing date falls back to now")

	third := parsed[2]
	require.Equal(t, "expense", third.Type)
	require.Equal(t, 50000.0, third.Amount)
	require.Equal(t, "ATK", third.Description)
}

// Finance imports never dedup: feeding the same rows through twice yields
// twice the inserts. The students importer upserts instead; that contrast is
// intentional.
func TestParseFinanceRowsNoDedup(t *testing.T) {
	now := time.Now().UTC()
	rows := []Row{
		{"Tipe": "Pemasukan", "Jumlah": "100000", "Tanggal": "01/02/2025"},
		{"Tipe": "Pengeluaran", "Jumlah": "25000", "Tanggal": "01/02/2025"},
	}

	once, errOnce := ParseFinanceRows(rows, now)
	twice, errTwice := ParseFinanceRows(append(append([]Row{}, rows...), rows...), now)
	require.Equal(t, 0, errOnce)
	require.Equal(t, 0, errTwice)
	require.Len(t, twice, 2*len(once))
}
