package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"strcmpbench/errutil"
)

func (r *Report) writeJSON(w io.Writer) error {
	b, err := sonic.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func (r *Report) writeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode yaml: %w", errutil.First(err, enc.Close()))
	}
	return enc.Close()
}

func (r *Report) writeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	return cw.WriteAll(r.Rows())
}
