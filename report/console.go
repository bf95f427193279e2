package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"strcmpbench/bench"
	"strcmpbench/throughput"
	"strcmpbench/utils"
)

// Tree groups the results by case, one child per size and run.
func (r *Report) Tree() []utils.ResultTree {
	names, byCase := utils.GroupBy(r.Results, func(res bench.Result) string { return res.Case })
	trees := make([]utils.ResultTree, 0, len(names))
	for _, name := range names {
		trees = append(trees, utils.ResultTree{
			Name:     name,
			Children: utils.Map(byCase[name], resultNode),
		})
	}
	return trees
}

func resultNode(res bench.Result) utils.ResultTree {
	name := fmt.Sprintf("N=%s (%s)", humanize.Comma(int64(res.Size)), humanize.IBytes(uint64(res.Size)))
	if res.Run > 0 {
		name = fmt.Sprintf("%s #%d", name, res.Run+1)
	}
	return utils.ResultTree{
		Name: name,
		Detail: fmt.Sprintf("%s iters, %.1f ns/op, %s, result=%t",
			humanize.Comma(int64(res.Iterations)),
			res.NsPerOp(),
			humanize.SIWithDigits(res.ItemsPerSecond(), 2, throughput.Unit),
			res.Value),
	}
}

func (r *Report) writeConsole(w io.Writer) error {
	_, err := fmt.Fprintf(w, "run %s  %s %s/%s  benchtime=%s  %s\n",
		r.RunID, r.GoVersion, r.GOOS, r.GOARCH, benchTimeLabel(r.BenchTime), humanize.Time(r.StartedAt))
	if err != nil {
		return err
	}
	for _, tree := range r.Tree() {
		if err := tree.Write(w, 0); err != nil {
			return err
		}
	}
	return nil
}

func benchTimeLabel(s string) string {
	if s == "" {
		return "default"
	}
	return s
}
