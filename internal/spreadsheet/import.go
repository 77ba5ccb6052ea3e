package spreadsheet

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row keyed by its header cell text, untrimmed of
// casing so the per-field alias lists can match the spellings seen in the
// wild ("Kelas", "kelas", "No Induk", ...).
type Row map[string]string

// ReadRows parses the first sheet of an uploaded workbook into rows keyed by
// the header line. Trailing empty cells are tolerated.
func ReadRows(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	header := raw[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(Row, len(header))
		empty := true
		for i, key := range header {
			if key == "" {
				continue
			}
			var val string
			if i < len(cells) {
				val = strings.TrimSpace(cells[i])
			}
			if val != "" {
				empty = false
			}
			row[key] = val
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Get returns the first non-empty value among the aliased column names.
func (r Row) Get(aliases ...string) string {
	for _, key := range aliases {
		if v, ok := r[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

type StudentRow struct {
	StudentID string
	Name      string
	ClassName string
}

// ParseStudentRows maps rows to student upserts. Rows missing the student
// code, name or class are counted as errors and skipped; the batch never
// aborts. Class-name resolution happens at the DB loop, not here.
func ParseStudentRows(rows []Row) (parsed []StudentRow, errCount int) {
	for _, row := range rows {
		sr := StudentRow{
			StudentID: row.Get("Nomor Induk", "nomor_induk", "No Induk"),
			Name:      row.Get("Nama", "nama", "Nama Siswa"),
			ClassName: row.Get("Kelas", "kelas"),
		}
		if sr.StudentID == "" || sr.Name == "" || sr.ClassName == "" {
			errCount++
			continue
		}
		sr.StudentID = strings.ToUpper(sr.StudentID)
		parsed = append(parsed, sr)
	}
	return parsed, errCount
}

type FinanceRow struct {
	Type        string
	Amount      float64
	Category    string
	Description string
	Date        time.Time
}

// ParseFinanceRows maps rows to finance inserts. Every valid row becomes a
// new record; there is deliberately no dedup, so importing the same file
// twice doubles the ledger. Rows whose amount cannot be parsed count as
// errors and are skipped.
func ParseFinanceRows(rows []Row, now time.Time) (parsed []FinanceRow, errCount int) {
	for _, row := range rows {
		tipe := "expense"
		if strings.Contains(strings.ToLower(row.Get("Tipe", "tipe", "Jenis")), "masuk") {
			tipe = "income"
		}

		amount, err := ParseAmount(row.Get("Jumlah", "jumlah", "Nominal"))
		if err != nil {
			errCount++
			continue
		}

		fr := FinanceRow{
			Type:        tipe,
			Amount:      amount,
			Category:    row.Get("Kategori", "kategori"),
			Description: row.Get("Keterangan", "keterangan", "Deskripsi"),
			Date:        ParseDateCell(row.Get("Tanggal", "tanggal"), now),
		}
		if fr.Category == "" {
			fr.Category = "-"
		}
		if fr.Description == "" {
			fr.Description = "-"
		}
		parsed = append(parsed, fr)
	}
	return parsed, errCount
}

// ParseAmount turns a display amount like "Rp 150.000" or "1.500,50" into a
// number. Rule: after stripping currency noise, a final separator group of
// one or two digits is the decimal part; every other dot or comma is a
// thousands separator. So "150.000" is 150000 and "10,5" is 10.5.
func ParseAmount(raw string) (float64, error) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" || s == "-" {
		return 0, errors.New("amount is not a number")
	}

	lastSep := strings.LastIndexAny(s, ".,")
	decimal := ""
	intPart := s
	if lastSep >= 0 {
		tail := s[lastSep+1:]
		if len(tail) >= 1 && len(tail) <= 2 {
			decimal = tail
			intPart = s[:lastSep]
		}
	}
	intPart = strings.ReplaceAll(intPart, ".", "")
	intPart = strings.ReplaceAll(intPart, ",", "")
	if intPart == "" || intPart == "-" {
		intPart += "0"
	}

	normalized := intPart
	if decimal != "" {
		normalized += "." + decimal
	}
	val, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, errors.New("amount is not a number")
	}
	return val, nil
}

// excelEpochOffset is the day count between the spreadsheet epoch
// (1899-12-30) and the Unix epoch.
const excelEpochOffset = 25569

// ParseDateCell accepts either a spreadsheet date serial number or a
// dd/MM/yyyy string. Empty or unparseable cells fall back to now.
func ParseDateCell(raw string, now time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now
	}
	if !strings.ContainsAny(raw, "/-") {
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			secs := int64((serial - excelEpochOffset) * 86400)
			return time.Unix(secs, 0).UTC()
		}
	}
	for _, layout := range []string{"02/01/2006", "2/1/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return now
}
