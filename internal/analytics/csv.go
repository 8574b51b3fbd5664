package analytics

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSV export of derived tables, used by the CLI so results can be taken into
// a spreadsheet.

func WriteWinPctCSV(path string, series []WinPctPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"week", "entity", "win_pct"}); err != nil {
		return err
	}
	for _, p := range series {
		row := []string{
			strconv.Itoa(p.Week),
			p.EntityID,
			fmtFloat(p.WinPct),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteMatrixCSV writes the win matrix with entities as both the header row
// and the leading column, matching the heatmap orientation (row beats
// column).
func WriteMatrixCSV(path string, m Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := append([]string{"entity"}, m.Entities...)
	if err := w.Write(header); err != nil {
		return err
	}
	for i, entity := range m.Entities {
		row := make([]string, 0, len(m.Entities)+1)
		row = append(row, entity)
		for _, wins := range m.Wins[i] {
			row = append(row, strconv.Itoa(wins))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func WriteHeadToHeadCSV(path string, rows []HeadToHeadAvg) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"team", "opponent", "avg_points", "games"}); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			r.Team,
			r.Opponent,
			fmtFloat(r.AvgPoints),
			strconv.Itoa(r.Games),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
