package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"time"

	flag "github.com/spf13/pflag"

	j "github.com/wdm0006/dataprepkit/pkg/dataset"
	"github.com/wdm0006/dataprepkit/pkg/kit"
)

type genOptions struct {
	rows, fcols, icols, scols, cardinality int
	missp                                  float64
	seed                                   int64
}

// generate builds a synthetic frame with the requested column mix.
func generate(o genOptions) *j.Frame {
	var cols []j.ColumnSchema
	for i := 0; i < o.fcols; i++ {
		cols = append(cols, j.ColumnSchema{Name: fmt.Sprintf("f%d", i), Type: j.KindFloat, Nullable: true})
	}
	for i := 0; i < o.icols; i++ {
		cols = append(cols, j.ColumnSchema{Name: fmt.Sprintf("i%d", i), Type: j.KindInt, Nullable: true})
	}
	for i := 0; i < o.scols; i++ {
		cols = append(cols, j.ColumnSchema{Name: fmt.Sprintf("s%d", i), Type: j.KindString, Nullable: true})
	}
	rnd := rand.New(rand.NewSource(o.seed))
	f := j.NewFrame(j.Schema{Columns: cols})
	for r := 0; r < o.rows; r++ {
		f.AppendNullRow()
		for _, cs := range cols {
			if rnd.Float64() < o.missp {
				continue
			}
			switch cs.Type {
			case j.KindFloat:
				_ = f.SetCell(r, cs.Name, rnd.Float64()*100)
			case j.KindInt:
				_ = f.SetCell(r, cs.Name, int64(rnd.Intn(100)))
			case j.KindString:
				_ = f.SetCell(r, cs.Name, fmt.Sprintf("cat%d", rnd.Intn(o.cardinality)))
			}
		}
	}
	return f
}

func main() {
	var o genOptions
	flag.IntVar(&o.rows, "rows", 1_000_000, "total rows to generate")
	flag.IntVar(&o.fcols, "float-cols", 4, "number of float columns")
	flag.IntVar(&o.icols, "int-cols", 2, "number of int columns")
	flag.IntVar(&o.scols, "string-cols", 2, "number of string columns")
	flag.IntVar(&o.cardinality, "cardinality", 8, "distinct values per string column")
	flag.Float64Var(&o.missp, "missing", 0.05, "probability of missing values in each cell")
	flag.Int64Var(&o.seed, "seed", 42, "random seed")
	method := flag.String("method", "mean", "imputation method")
	jsonOut := flag.Bool("json", false, "emit JSON summary")
	flag.Parse()

	if o.cardinality < 1 {
		fmt.Fprintln(os.Stderr, "cardinality must be positive")
		os.Exit(2)
	}
	f := generate(o)
	k := kit.FromFrame(f, kit.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	// Warm up
	runtime.GC()
	time.Sleep(100 * time.Millisecond)

	var msBefore, msAfter runtime.MemStats
	runtime.ReadMemStats(&msBefore)
	start := time.Now()
	if err := k.HandleMissing(*method); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	imputed := time.Since(start)
	if err := k.Encode(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&msAfter)

	rowsPerSec := float64(o.rows) / elapsed.Seconds()
	summary := map[string]any{
		"rows":                  o.rows,
		"method":                *method,
		"impute_ms":             imputed.Milliseconds(),
		"elapsed_ms":            elapsed.Milliseconds(),
		"rows_per_sec":          rowsPerSec,
		"cols_out":              k.Frame().Cols(),
		"mem_alloc_bytes":       msAfter.Alloc,
		"mem_total_alloc_bytes": msAfter.TotalAlloc - msBefore.TotalAlloc,
		"gc_num":                msAfter.NumGC - msBefore.NumGC,
		"cols":                  map[string]int{"float": o.fcols, "int": o.icols, "string": o.scols},
		"missing_prob":          o.missp,
	}

	if *jsonOut {
		b, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Println(string(b))
		return
	}
	fmt.Printf("Rows: %d\n", o.rows)
	fmt.Printf("Impute (%s): %s\n", *method, imputed)
	fmt.Printf("Elapsed: %s\n", elapsed)
	fmt.Printf("Throughput: %.0f rows/s\n", rowsPerSec)
	fmt.Printf("Columns out: %d\n", k.Frame().Cols())
	fmt.Printf("Current Alloc: %d MB\n", msAfter.Alloc/1024/1024)
	fmt.Printf("Total Alloc (delta): %d MB\n", (msAfter.TotalAlloc-msBefore.TotalAlloc)/1024/1024)
	fmt.Printf("GC cycles (delta): %d\n", msAfter.NumGC-msBefore.NumGC)
}
