package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/starlish/bimbel_backend/internal/models"
)

type AttendanceSummary struct {
	StudentID      string  `json:"studentId"`
	Name           *string `json:"name"`
	ClassID        string  `json:"classId"`
	ClassName      string  `json:"className"`
	SessionID      *string `json:"sessionId"`
	SessionName    *string `json:"sessionName"`
	TotalDays      int     `json:"totalDays"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	AttendanceRate int     `json:"attendanceRate"`
}

// MonthRange resolves a "YYYY-MM" string to the inclusive bounds of that
// calendar month in UTC.
func MonthRange(month string) (start, end time.Time, err error) {
	start, err = time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	end = start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end, nil
}

// SummarizeAttendance produces one row per student from the marks recorded in
// the reporting window. Students without any mark still get a row with
// TotalDays 0 and rate 0 so the report stays complete. Rows are ordered by
// class name, then student code.
func SummarizeAttendance(students []models.Student, marks []models.Attendance) []AttendanceSummary {
	presentByStudent := make(map[string]int, len(students))
	totalByStudent := make(map[string]int, len(students))
	for _, m := range marks {
		totalByStudent[m.StudentID]++
		if m.Present {
			presentByStudent[m.StudentID]++
		}
	}

	summary := make([]AttendanceSummary, 0, len(students))
	for _, s := range students {
		total := totalByStudent[s.ID]
		present := presentByStudent[s.ID]

		row := AttendanceSummary{
			StudentID: s.StudentID,
			Name:      s.Name,
			ClassID:   s.ClassID,
			ClassName: "-",
			SessionID: s.SessionID,
			TotalDays: total,
			Present:   present,
			Absent:    total - present,
		}
		if s.Class != nil {
			row.ClassName = s.Class.Name
		}
		if s.Session != nil {
			row.SessionName = &s.Session.Name
		}
		if total > 0 {
			row.AttendanceRate = int(math.Round(float64(present) / float64(total) * 100))
		}
		summary = append(summary, row)
	}

	sort.SliceStable(summary, func(i, j int) bool {
		if summary[i].ClassName != summary[j].ClassName {
			return summary[i].ClassName < summary[j].ClassName
		}
		return summary[i].StudentID < summary[j].StudentID
	})
	return summary
}
