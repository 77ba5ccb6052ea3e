package report

import (
	"testing"
	"time"

	"github.com/starlish/bimbel_backend/internal/models"
)

func strPtr(s string) *string { return &s }

func newStudent(id, code, name, classID, className string) models.Student {
	return models.Student{
		ID:        id,
		StudentID: code,
		Name:      strPtr(name),
		ClassID:   classID,
		Class:     &models.Class{ID: classID, Name: className},
	}
}

func mark(studentID string, day int, present bool) models.Attendance {
	return models.Attendance{
		StudentID: studentID,
		SessionID: "sesi-1",
		Date:      time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC),
		Present:   present,
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "march",
			month:     "2025-03",
			wantStart: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "february leap year",
			month:     "2024-02",
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		},
		{name: "garbage", month: "maret", wantErr: true},
		{name: "missing month part", month: "2025", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := MonthRange(tt.month)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.month)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestSummarizeAttendance(t *testing.T) {
	students := []models.Student{
		newStudent("s1", "STL001", "Budi", "c1", "Kelas 1"),
		newStudent("s2", "STL002", "Sari", "c1", "Kelas 1"),
	}
	marks := []models.Attendance{
		mark("s1", 3, true),
		mark("s1", 10, true),
		mark("s1", 17, false),
	}

	summary := SummarizeAttendance(students, marks)
	if len(summary) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(summary))
	}

	budi := summary[0]
	if budi.StudentID != "STL001" {
		t.Fatalf("expected STL001 first, got %s", budi.StudentID)
	}
	if budi.TotalDays != 3 || budi.Present != 2 || budi.Absent != 1 {
		t.Errorf("counts = %d/%d/%d, want 3/2/1", budi.TotalDays, budi.Present, budi.Absent)
	}
	if budi.AttendanceRate != 67 {
		t.Errorf("rate = %d, want 67", budi.AttendanceRate)
	}

	// Student with no marks must still appear, with zeros rather than nulls.
	sari := summary[1]
	if sari.StudentID != "STL002" {
		t.Fatalf("expected STL002 second, got %s", sari.StudentID)
	}
	if sari.TotalDays != 0 || sari.Present != 0 || sari.Absent != 0 || sari.AttendanceRate != 0 {
		t.Errorf("zero-mark student got %+v, want all zeros", sari)
	}
}

func TestSummarizeAttendanceOrdering(t *testing.T) {
	students := []models.Student{
		newStudent("s1", "B02", "B", "c2", "Kelas 2"),
		newStudent("s2", "A09", "A", "c1", "Kelas 1"),
		newStudent("s3", "A01", "C", "c2", "Kelas 2"),
	}

	summary := SummarizeAttendance(students, nil)
	got := []string{summary[0].StudentID, summary[1].StudentID, summary[2].StudentID}
	want := []string{"A09", "A01", "B02"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if summary[0].ClassName != "Kelas 1" || summary[1].ClassName != "Kelas 2" {
		t.Errorf("class ordering broken: %s then %s", summary[0].ClassName, summary[1].ClassName)
	}
}

func TestAttendanceRateMonotonic(t *testing.T) {
	student := newStudent("s1", "STL001", "Budi", "c1", "Kelas 1")

	prev := -1
	for present := 0; present <= 20; present++ {
		marks := make([]models.Attendance, 0, 20)
		for d := 1; d <= 20; d++ {
			marks = append(marks, mark("s1", d, d <= present))
		}
		rate := SummarizeAttendance([]models.Student{student}, marks)[0].AttendanceRate
		if rate < prev {
			t.Fatalf("rate decreased from %d to %d at present=%d", prev, rate, present)
		}
		prev = rate
	}
	if prev != 100 {
		t.Errorf("full presence rate = %d, want 100", prev)
	}
}
