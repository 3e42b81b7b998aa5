package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/rpanet/rpanet"
)

// edgeHeader is the first row of every edge file.
var edgeHeader = []string{"source", "target", "scenario", "weight"}

// writeEdgeFile writes res.Edges as tab-separated values in creation order.
func writeEdgeFile(path string, res *rpanet.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = '\t'
	if err := w.Write(edgeHeader); err != nil {
		return err
	}
	row := make([]string, len(edgeHeader))
	for _, e := range res.Edges {
		row[0] = strconv.Itoa(e.Source)
		row[1] = strconv.Itoa(e.Target)
		row[2] = e.Scenario.String()
		row[3] = strconv.FormatFloat(e.Weight, 'g', -1, 64)
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
