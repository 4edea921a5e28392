package batch

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// CSVHeader is the first row written by WriteCSV.
var CSVHeader = []string{
	"File", "Nodes", "Edges", "Max Flow",
	"Parse Time (ms)", "Algorithm Time (ms)", "Total Time (ms)",
}

// WriteCSV writes one row per result, keyed by the file's base name. Failed
// files are written with whatever was measured before the failure.
func WriteCSV(w io.Writer, results []FileResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			filepath.Base(r.Path),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.Edges),
			strconv.FormatInt(r.MaxFlow, 10),
			strconv.FormatInt(r.ParseTime.Milliseconds(), 10),
			strconv.FormatInt(r.AlgoTime.Milliseconds(), 10),
			strconv.FormatInt(r.TotalTime.Milliseconds(), 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteCSVFile writes results to path, truncating it.
func WriteCSVFile(path string, results []FileResult) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "batch: create %s", path)
	}
	if err = WriteCSV(f, results); err != nil {
		f.Close()
		return errors.Wrapf(err, "batch: write %s", path)
	}

	return f.Close()
}
