package tables

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteCSVFiles emits the five fixed tables to outDir (spec §6): all
// text is UTF-8, dates are already formatted YYYY-MM-DD by the row
// builders. Directories are created as needed; existing files of the
// same name are overwritten.
func WriteCSVFiles(outDir string, schedule []ScheduleRow, metrics []MetricRow, deadlines []DeadlineRow, violations []ViolationRow, penalties []PenaltyRow) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("tables: creating output dir: %w", err)
	}

	writers := []struct {
		name string
		fn   func(string) error
	}{
		{"schedule.csv", func(p string) error { return writeScheduleCSV(p, schedule) }},
		{"metrics.csv", func(p string) error { return writeMetricsCSV(p, metrics) }},
		{"deadlines.csv", func(p string) error { return writeDeadlinesCSV(p, deadlines) }},
		{"violations.csv", func(p string) error { return writeViolationsCSV(p, violations) }},
		{"penalties.csv", func(p string) error { return writePenaltiesCSV(p, penalties) }},
	}

	for _, w := range writers {
		if err := w.fn(filepath.Join(outDir, w.name)); err != nil {
			return fmt.Errorf("tables: writing %s: %w", w.name, err)
		}
	}
	return nil
}

func writeScheduleCSV(path string, rows []ScheduleRow) error {
	return writeCSV(path, []string{"id", "title", "type", "start_date", "end_date", "duration", "conference", "status"}, func(w *csv.Writer) error {
		for _, r := range rows {
			if err := w.Write([]string{r.ID, r.Title, r.Type, r.StartDate, r.EndDate, fmt.Sprintf("%d", r.Duration), r.Conference, r.Status}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeMetricsCSV(path string, rows []MetricRow) error {
	return writeCSV(path, []string{"metric", "value", "description"}, func(w *csv.Writer) error {
		for _, r := range rows {
			if err := w.Write([]string{r.Metric, r.Value, r.Description}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeDeadlinesCSV(path string, rows []DeadlineRow) error {
	return writeCSV(path, []string{"submission", "conference", "type", "deadline", "end_date", "status", "margin"}, func(w *csv.Writer) error {
		for _, r := range rows {
			if err := w.Write([]string{r.Submission, r.Conference, r.Type, r.Deadline, r.EndDate, string(r.Status), fmt.Sprintf("%d", r.MarginDays)}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeViolationsCSV(path string, rows []ViolationRow) error {
	return writeCSV(path, []string{"type", "submission", "description", "severity", "impact"}, func(w *csv.Writer) error {
		for _, r := range rows {
			if err := w.Write([]string{r.Type, r.Submission, r.Description, r.Severity, r.Impact}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writePenaltiesCSV(path string, rows []PenaltyRow) error {
	return writeCSV(path, []string{"penalty_type", "amount"}, func(w *csv.Writer) error {
		for _, r := range rows {
			if err := w.Write([]string{r.PenaltyType, fmt.Sprintf("%.2f", r.Amount)}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeCSV(path string, header []string, body func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := body(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
