package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/joeyjackson/fourier-series-drawer/internal/animation"
	"github.com/joeyjackson/fourier-series-drawer/internal/catalog"
	"github.com/joeyjackson/fourier-series-drawer/internal/config"
	applog "github.com/joeyjackson/fourier-series-drawer/internal/log"
	"github.com/joeyjackson/fourier-series-drawer/internal/media"
	"github.com/joeyjackson/fourier-series-drawer/internal/server"
)

func runServe(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", cfg.Server.Addr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	applog.Init(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, store := openCatalog(ctx, cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	if store != nil {
		defer store.Close()
	}
	srv, err := server.New(c, server.Options{MaxSamples: cfg.Server.MaxSamples})
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx, *addr)
}

func runExport(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	name := fs.String("signal", catalog.Random, "catalog signal to draw")
	in := fs.String("in", "", "path file (.wav, .json) to draw instead of a catalog signal")
	out := fs.String("out", "", "output file: .svg or .png for a frame, .wav or .json for the reconstructed path")
	epicycles := fs.Int("epicycles", cfg.Animation.MaxEpicycles, "max epicycles per chain (0 keeps all)")
	frames := fs.Int("frames", 0, "substeps to advance before drawing (0 draws a full period)")
	mode := fs.String("mode", cfg.Animation.Mode, "combined, separate or wave")
	width := fs.Int("width", 800, "frame width in pixels")
	height := fs.Int("height", 800, "frame height in pixels")
	loops := fs.Int("loops", 1, "path repetitions in WAV output")
	save := fs.Bool("save", false, "also store the input signal in the library")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("export: -out is required")
	}
	applog.Init(cfg.Logging)
	ctx := context.Background()

	c, store := openCatalog(ctx, cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	if store != nil {
		defer store.Close()
	}

	var sig catalog.Signal
	var err error
	if *in != "" {
		sig, err = media.Load(*in, media.ReadOptions{MaxSamples: cfg.Server.MaxSamples})
		if err == nil && *save {
			if store == nil {
				return fmt.Errorf("export: -save needs the signal store")
			}
			err = store.Save(ctx, sig)
		}
	} else {
		sig, err = c.Get(*name)
	}
	if err != nil {
		return err
	}

	anim, err := cfg.Animation.Options()
	if err != nil {
		return err
	}
	if anim.Mode, err = animation.ParseMode(*mode); err != nil {
		return err
	}
	anim.MaxEpicycles = *epicycles

	return exportSignal(sig, *out, exportOptions{
		Animation: anim,
		Frames:    *frames,
		Width:     *width,
		Height:    *height,
		WAV:       media.WAVOptions{Loops: *loops},
	})
}

func runList(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	applog.Init(cfg.Logging)
	c, store := openCatalog(context.Background(), cfg, nil)
	if store != nil {
		defer store.Close()
	}
	return listSignals(os.Stdout, c)
}

func listSignals(w io.Writer, c *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPOINTS")
	for _, name := range c.Names() {
		sig, err := c.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\n", sig.Name, len(sig.Path))
	}
	return tw.Flush()
}
