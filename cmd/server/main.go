package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/xtding233/curvekit/internal/config"
	"github.com/xtding233/curvekit/internal/httpapi"
	"github.com/xtding233/curvekit/internal/library"
	"github.com/xtding233/curvekit/internal/rpc"
	"github.com/xtding233/curvekit/internal/sampler"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatal(err)
	}

	curves, stopWatch, err := loadLibrary(env)
	if err != nil {
		log.Fatal(err)
	}
	defer stopWatch()

	newRNG := rngFactory(env.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	grpcServer, err := rpc.NewWithAddr(env.GRPCAddr, rpc.NewService(curves, newRNG))
	if err != nil {
		log.Fatal(err)
	}
	grpcDone := make(chan error, 1)
	go func() { grpcDone <- grpcServer.Serve(ctx) }()

	httpServer := &http.Server{
		Addr:              env.HTTPAddr,
		Handler:           httpapi.NewHandler(curves, newRNG).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	log.Println("listening on", env.HTTPAddr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	stop()
	if err := <-grpcDone; err != nil {
		log.Println("grpc:", err)
	}
}

// loadLibrary builds the curve library. Without a config dir the built-in
// calibrations are served and nothing is watched.
func loadLibrary(env config.Env) (*library.Holder, func(), error) {
	if env.ConfigDir == "" {
		log.Println("no CURVEKIT_CONFIG_DIR set; using built-in calibrations")
		return library.NewHolder(library.MustDefault()), func() {}, nil
	}

	loader := config.NewLoader(env.ConfigDir)
	lib, raw, err := loader.Load(env.Profile)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("loaded calibrations version=%q profile=%q", raw.Version, env.Profile)
	curves := library.NewHolder(lib)

	w := config.NewFileWatcher(loader.Paths(env.Profile), env.WatchInterval, func(path string) {
		loader.Invalidate()
		lib, raw, err := loader.Load(env.Profile)
		if err != nil {
			log.Printf("reload after %s changed failed, keeping previous calibrations: %v", path, err)
			return
		}
		curves.Store(lib)
		log.Printf("reloaded calibrations version=%q from %s", raw.Version, path)
	})
	w.Start()
	return curves, w.Stop, nil
}

// rngFactory returns a fresh source per request. With a seed, request i uses
// seed+i so runs are reproducible without sharing one generator.
func rngFactory(seed uint64) func() sampler.RandomSource {
	if seed == 0 {
		return sampler.DefaultRNG
	}
	var n atomic.Uint64
	return func() sampler.RandomSource {
		return sampler.NewSeededRNG(seed + n.Add(1) - 1)
	}
}
