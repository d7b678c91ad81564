package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/projsim/internal/dynamo"
)

// CSVHeader names the columns written by WriteCSV. The circle columns are
// empty for samples without an osculating circle.
var CSVHeader = []string{
	"t", "x", "y", "vx", "vy", "v", "theta",
	"ax", "ay", "a_par", "a_perp", "r", "cx", "cy",
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes one row per sample, full precision.
func WriteCSV(w io.Writer, tr *dynamo.Trajectory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	row := make([]string, len(CSVHeader))
	for i := 0; i < tr.Len(); i++ {
		s := tr.At(i)
		vals := [...]float64{s.T, s.X, s.Y, s.Vx, s.Vy, s.V, s.Theta, s.Ax, s.Ay, s.APar, s.APerp}
		for j, v := range vals {
			row[j] = formatFloat(v)
		}
		if s.Circle != nil {
			row[11], row[12], row[13] = formatFloat(s.Circle.R), formatFloat(s.Circle.Cx), formatFloat(s.Circle.Cy)
		} else {
			row[11], row[12], row[13] = "", "", ""
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
