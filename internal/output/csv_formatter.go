package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes one row per result.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(batch *Batch) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Input", "Masked", "Value", "Caret"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range batch.Results {
		row := []string{
			r.Input,
			r.Masked,
			FormatValue(r.Value, batch.Config.Precision),
			caretString(r.Caret),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
