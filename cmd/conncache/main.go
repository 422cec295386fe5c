package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"conncache/internal/cache"
	"conncache/internal/tcb"
)

type config struct {
	// Capacity is the number of connection records the table retains.
	Capacity int    `env:"CONNCACHE_CAPACITY" envDefault:"2"`
	LogLevel string `env:"CONNCACHE_LOG_LEVEL" envDefault:"debug"`
}

// demoConn stands in for a real transport so the walk-through can show
// exactly when the table tears a connection down.
type demoConn struct {
	log  zerolog.Logger
	peer tcb.Endpoint
}

func (d *demoConn) Close() error {
	d.log.Info().Stringer("peer", d.peer).Msg("transport closed")
	return nil
}

func main() {
	// The .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[config]()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("parse config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	// Signal-aware context so a long demo can be interrupted cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("demo failed")
	}
}

func run(ctx context.Context, cfg config, log zerolog.Logger) error {
	log.Info().Int("capacity", cfg.Capacity).Msg("conncache demo starting")

	// The table is an owned instance: built here, passed by handle,
	// gone when main returns. No package-level state.
	table, err := tcb.NewTable(cfg.Capacity)
	if err != nil {
		return err
	}

	dial := func(host string, port int) (tcb.Endpoint, *tcb.TCB) {
		ep := tcb.Endpoint{Host: host, Port: port}
		return ep, tcb.NewTCB(ep, &demoConn{log: log, peer: ep})
	}

	// -------------------------------------------------------------------
	// 1) Fill to capacity, then overflow: the LRU record's transport is
	//    released inside the Put that displaced it.
	// -------------------------------------------------------------------
	a, recA := dial("127.0.0.1", 80)
	b, recB := dial("192.168.0.1", 443)

	if _, err := table.Put(a, recA); err != nil {
		return err
	}
	if _, err := table.Put(b, recB); err != nil {
		return err
	}
	log.Info().Strs("keys", table.Keys()).Msg("table full (MRU -> LRU)")

	// Touch a so b becomes the retirement candidate.
	if _, err := table.Get(a); err != nil {
		return err
	}
	log.Info().Stringer("peer", a).Msg("touched; now MRU")

	c, recC := dial("10.0.0.7", 8080)
	if _, err := table.Put(c, recC); err != nil {
		return err
	}
	log.Info().Strs("keys", table.Keys()).Msg("after overflow")

	if _, err := table.Get(b); errors.Is(err, cache.ErrKeyNotFound) {
		log.Info().Stringer("peer", b).Msg("retired as LRU, as expected")
	}

	// -------------------------------------------------------------------
	// 2) Overwrite: not an eviction. The displaced record comes back
	//    unreleased and the caller decides its fate.
	// -------------------------------------------------------------------
	_, recA2 := dial("127.0.0.1", 80)
	prev, err := table.Put(a, recA2)
	if err != nil {
		return err
	}
	if prev != nil {
		log.Info().Stringer("peer", a).Msg("replaced; releasing the old record ourselves")
		if err := prev.Release(); err != nil {
			return err
		}
	}

	// -------------------------------------------------------------------
	// 3) Combined keys parse back, and malformed ones fail loudly.
	// -------------------------------------------------------------------
	if rec, err := table.GetByKey("127.0.0.1:80"); err == nil {
		log.Info().Stringer("peer", rec.Endpoint).Msg("looked up by combined key")
	}
	if _, err := table.GetByKey("127.0.0.1"); errors.Is(err, tcb.ErrMalformedKey) {
		log.Info().Err(err).Msg("malformed key rejected")
	}

	log.Info().Int("records", table.Len()).Msg("done")

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	default:
	}
	return nil
}
