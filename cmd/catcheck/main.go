package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/Oriono/nautilus-trader/internal/dbg"
	"github.com/Oriono/nautilus-trader/pkg/catalog"
	"github.com/Oriono/nautilus-trader/pkg/model"
	"github.com/Oriono/nautilus-trader/pkg/tools/store"
)

func main() {
	file := flag.String("file", "", "path to the instrument catalog yaml")
	prod := flag.Bool("prod", false, "use the production log encoder")
	verbose := flag.Bool("verbose", false, "log every loaded instrument")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := dbg.NewLogger(*prod)
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	snap, err := catalog.Load(*file)
	if err != nil {
		logger.Fatal("catalog rejected", zap.Error(err))
	}

	s := store.CreateInstrumentStore(snap.Instruments...)

	logger.Info("catalog accepted",
		zap.String("load_id", snap.LoadID.String()),
		zap.String("loaded_at", snap.LoadedAt.String()),
		zap.Int("instruments", s.Len()))

	if *verbose {
		s.Each(func(i model.Instrument) {
			logger.Info("instrument", model.LogFields(i)...)
		})
	}
}
