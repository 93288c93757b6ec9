// sample-customers emits a JS module of synthetic customer profiles with
// bucketed order histories for the demo front-end.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/grilldesk/sampledata/customers"
	"github.com/grilldesk/sampledata/dump"
	"github.com/grilldesk/sampledata/fake"
	"github.com/grilldesk/sampledata/logging"
	"github.com/grilldesk/sampledata/objectstore"
	"github.com/grilldesk/sampledata/randx"
	"github.com/grilldesk/sampledata/render"
	"github.com/grilldesk/sampledata/retry"
)

// order IDs continue from here across every bucket of every customer
const orderIDStart = 1000

func main() {
	n := flag.Int("n", 1000, "number of customers to generate")
	out := flag.String("out", "sample_customers.js", "output module path")
	format := flag.String("format", "js", "output format: js or json")
	seed := flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	debug := flag.Bool("debug", false, "dump the first generated record")
	flag.Parse()

	logging.Init(logging.FromEnv())
	log := slog.With("run_id", uuid.NewString())

	gen := customers.NewGenerator(randx.New(*seed), fake.New(*seed), customers.DefaultConfig(), time.Now())
	alloc := customers.NewIDAllocator(orderIDStart)
	records := gen.Batch(*n, alloc)
	if *debug && len(records) > 0 {
		dump.This(records[0])
	}

	var renderer render.Renderer = render.JSModule{}
	if *format == "json" {
		renderer = render.JSON{}
	}
	data, err := render.Bytes(renderer, customers.Dataset{Customers: records})
	if err != nil {
		log.Error("cannot render customers", "error", err)
		os.Exit(1)
	}
	if err := render.WriteFileAtomic(*out, data); err != nil {
		log.Error("cannot write output module", "path", *out, "error", err)
		os.Exit(1)
	}
	log.Info("customers module generated", "count", len(records), "path", *out, "bytes", len(data))

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
