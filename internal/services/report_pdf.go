package services

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/workreward/work-reward-api/internal/models"
)

// BuildReportPDF renders a task report as a PDF document. The report must
// be loaded with its task and the task's creator and performer.
func BuildReportPDF(report *models.TaskReport, w io.Writer) error {
	task := report.Task
	if task == nil {
		return fmt.Errorf("report %d has no task attached", report.ID)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 10, fmt.Sprintf("Task report #%d", report.ID), "", "L", false)
	pdf.Ln(4)

	var actual time.Duration
	if task.StartedAt != nil && task.CompletedAt != nil {
		actual = task.CompletedAt.Sub(*task.StartedAt)
	}

	writeField(pdf, "Task", task.Title)
	writeField(pdf, "Description", task.Description)
	writeField(pdf, "Difficulty", fmt.Sprintf("%d", task.Difficulty))
	writeField(pdf, "Expected duration", formatDuration(task.Duration))
	writeField(pdf, "Actual time spent", formatDuration(actual))
	if task.Performer != nil {
		writeField(pdf, "Performer", task.Performer.FullName())
	}
	if task.Creator != nil {
		writeField(pdf, "Manager", task.Creator.FullName())
	}
	writeField(pdf, "Efficiency score", fmt.Sprintf("%.2f", report.EfficiencyScore))
	writeField(pdf, "Report", report.Text)
	writeField(pdf, "Created", report.CreatedAt.Format("02/01/2006 15:04:05"))

	return pdf.Output(w)
}

func writeField(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(0, 7, label, "", "L", false)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 7, value, "", "L", false)
	pdf.Ln(2)
}

// formatDuration renders a duration as "days: D | hours: H | minutes: M |
// seconds: S", dropping the days part when zero.
func formatDuration(d time.Duration) string {
	total := int64(d.Seconds())

	days := total / 86400
	remainder := total % 86400
	hours := remainder / 3600
	remainder %= 3600
	minutes := remainder / 60
	seconds := remainder % 60

	base := fmt.Sprintf("hours: %d | minutes: %d | seconds: %d", hours, minutes, seconds)
	if days > 0 {
		return fmt.Sprintf("days: %d | %s", days, base)
	}
	return base
}
