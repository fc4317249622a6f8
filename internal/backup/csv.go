package backup

import (
	"encoding/csv"
	"os"
)

type csvSink struct {
	path string
}

// NewCSVSink creates a Sink backed by a CSV file at path.
func NewCSVSink(path string) Sink {
	return &csvSink{path: path}
}

func (s *csvSink) Append(record []string) error {
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(record); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func (s *csvSink) Rewrite(headers []string, rows [][]string) error {
	file, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
