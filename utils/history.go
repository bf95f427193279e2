package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"strcmpbench/errutil"
)

var historyMu sync.Mutex

// AppendHistory appends rows to a CSV log at path, creating it if needed.
// Runs from several invocations accumulate in the same file.
func AppendHistory(path string, rows [][]string) error {
	historyMu.Lock()
	defer historyMu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open history %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	werr := w.WriteAll(rows)
	return errutil.First(werr, f.Close())
}
