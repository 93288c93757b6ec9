// sample-transactions emits a JS module of synthetic order tickets for the
// demo front-end.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/grilldesk/sampledata/dump"
	"github.com/grilldesk/sampledata/logging"
	"github.com/grilldesk/sampledata/objectstore"
	"github.com/grilldesk/sampledata/randx"
	"github.com/grilldesk/sampledata/render"
	"github.com/grilldesk/sampledata/retry"
	"github.com/grilldesk/sampledata/transactions"
)

func main() {
	n := flag.Int("n", 100, "number of transactions to generate")
	out := flag.String("out", "pythonOutputTransactionsOrderTickets.js", "output module path")
	format := flag.String("format", "js", "output format: js or json")
	seed := flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	debug := flag.Bool("debug", false, "dump the first generated record")
	flag.Parse()

	logging.Init(logging.FromEnv())
	log := slog.With("run_id", uuid.NewString())

	gen := transactions.NewGenerator(randx.New(*seed), time.Now())
	records := gen.Batch(*n)
	if *debug && len(records) > 0 {
		dump.This(records[0])
	}

	var renderer render.Renderer = render.JSModule{Binding: "sample_Transactions"}
	if *format == "json" {
		renderer = render.JSON{}
	}
	data, err := render.Bytes(renderer, records)
	if err != nil {
		log.Error("cannot render transactions", "error", err)
		os.Exit(1)
	}
	if err := render.WriteFileAtomic(*out, data); err != nil {
		log.Error("cannot write output module", "path", *out, "error", err)
		os.Exit(1)
	}
	log.Info("transactions module generated", "count", len(records), "path", *out, "bytes", len(data))

	publish(context.Background(), log, *out, data)
}

func publish(ctx context.Context, log *slog.Logger, path string, data []byte) {
	cfg := objectstore.FromEnv()
	if !cfg.Enabled() {
		return
	}
	store, err := objectstore.New(ctx, cfg)
	if err != nil {
		log.Error("cannot reach object store", "error", err)
		os.Exit(1)
	}
	name := filepath.Base(path)
	err = retry.Do(func() error { return store.Publish(ctx, name, data) }, 3, time.Second)
	if err != nil {
		log.Error("cannot publish module", "object", name, "error", err)
		os.Exit(1)
	}
	log.Info("module published", "object", name, "bucket", cfg.Bucket)
}
