package bench

import (
	"encoding/csv"
	"os"

	"github.com/pkg/errors"

	"github.com/nuggfr/xcsrc/internal/xcs"
)

// WritePerformanceCSV writes rows to path as a "sep=;"-prefixed CSV, byte
// compatible with the original harness's performance dump format
// (trial;correctness_rate;number_of_classifiers;exp_classifiers).
func WritePerformanceCSV(path string, rows []PerformanceRow) error {
	f, err := createWithDir(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString("sep=;\n"); err != nil {
		return errors.Wrapf(err, "bench: writing %s", path)
	}

	w := csv.NewWriter(f)
	w.Comma = ';'
	defer w.Flush()

	for _, row := range rows {
		record := []string{
			itoa(row.Trial),
			ftoa(row.CorrectnessRate),
			itoa(row.PopulationSize),
			itoa(row.ExperiencedCount),
		}
		if err := w.Write(record); err != nil {
			return errors.Wrapf(err, "bench: writing %s", path)
		}
	}
	return errors.Wrapf(w.Error(), "bench: writing %s", path)
}

// WritePopulationCSV writes pop to path in the "No;Cond;Act;Pred;Fit;PredErr;Num;Exp"
// layout of the original population dump, experienced classifiers first.
func WritePopulationCSV(path string, pop []xcs.Classifier) error {
	f, err := createWithDir(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString("sep=;\n"); err != nil {
		return errors.Wrapf(err, "bench: writing %s", path)
	}

	w := csv.NewWriter(f)
	w.Comma = ';'
	defer w.Flush()

	if err := w.Write([]string{"No", "Cond", "Act", "Pred", "Fit", "PredErr", "Num", "Exp"}); err != nil {
		return errors.Wrapf(err, "bench: writing %s", path)
	}

	n := 0
	writeRow := func(cl xcs.Classifier) error {
		n++
		fields := append([]string{itoa(n)}, splitClassifierString(cl.String())...)
		return w.Write(fields)
	}

	for _, cl := range pop {
		if cl.Experience > 0 {
			if err := writeRow(cl); err != nil {
				return errors.Wrapf(err, "bench: writing %s", path)
			}
		}
	}
	for _, cl := range pop {
		if cl.Experience == 0 {
			if err := writeRow(cl); err != nil {
				return errors.Wrapf(err, "bench: writing %s", path)
			}
		}
	}
	return errors.Wrapf(w.Error(), "bench: writing %s", path)
}

func splitClassifierString(s string) []string {
	var fields []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ';' {
			fields = append(fields, s[start:i])
			start = i + 1
		}
	}
	return fields
}

func createWithDir(path string) (*os.File, error) {
	if dir := dirOf(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "bench: creating directory for %s", path)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "bench: creating %s", path)
	}
	return f, nil
}
