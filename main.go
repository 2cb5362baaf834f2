package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joeyjackson/fourier-series-drawer/internal/catalog"
	"github.com/joeyjackson/fourier-series-drawer/internal/config"
	applog "github.com/joeyjackson/fourier-series-drawer/internal/log"
	"github.com/joeyjackson/fourier-series-drawer/internal/media"
	"github.com/joeyjackson/fourier-series-drawer/internal/player"
	"github.com/joeyjackson/fourier-series-drawer/internal/ui"
)

const usage = `usage:
  fourier-series-drawer [signal|file.wav|file.json|playlist.m3u ...]
  fourier-series-drawer serve [-addr host:port]
  fourier-series-drawer export [-signal NAME | -in FILE] -out frame.svg|frame.png|path.wav|path.json
  fourier-series-drawer list
`

func main() {
	cfg, cfgPath, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	args := os.Args[1:]
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}
	switch cmd {
	case "serve":
		err = runServe(cfg, args[1:])
	case "export":
		err = runExport(cfg, args[1:])
	case "list":
		err = runList(cfg, args[1:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		fmt.Printf("\nconfig: %s\n", cfgPath)
		return
	default:
		err = runTUI(cfg, args)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openCatalog builds the catalog from the built-in shapes and the saved
// signals. A store that cannot be opened is logged and skipped so the
// built-ins stay usable.
func openCatalog(ctx context.Context, cfg config.Config, rng *rand.Rand) (*catalog.Catalog, *catalog.Store) {
	c := catalog.New(rng)
	store, err := catalog.OpenStore(ctx, cfg.Catalog.DBPath)
	if err != nil {
		applog.L().Warn("signal store unavailable", slog.Any("err", err))
		return c, nil
	}
	if err := store.LoadInto(ctx, c); err != nil {
		applog.L().Warn("load saved signals", slog.Any("err", err))
	}
	return c, store
}

func isPathArg(arg string) bool {
	ext := filepath.Ext(arg)
	return media.IsSupportedExt(ext) || media.IsPlaylistExt(ext)
}

func runTUI(cfg config.Config, args []string) error {
	logOpts := cfg.Logging
	logOpts.Console = io.Discard
	applog.Init(logOpts)

	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	c, store := openCatalog(ctx, cfg, rng)
	if store != nil {
		defer store.Close()
	}

	var names, files, unsaved []string
	for _, arg := range args {
		if isPathArg(arg) {
			files = append(files, arg)
			continue
		}
		sig, err := c.Get(arg)
		if err != nil {
			return err
		}
		names = append(names, sig.Name)
	}
	if len(files) > 0 {
		sigs, err := media.LoadAll(files, media.ReadOptions{MaxSamples: cfg.Server.MaxSamples})
		if err != nil {
			return err
		}
		for _, sig := range sigs {
			if err := c.Add(sig); err != nil {
				return err
			}
			names = append(names, sig.Name)
			unsaved = append(unsaved, sig.Name)
		}
	}

	var q *catalog.Queue
	if len(names) > 0 {
		q = catalog.NewQueue(names, rng)
	} else {
		q = catalog.NewQueue(c.Names(), rng)
		switch start := strings.TrimSpace(cfg.Catalog.Start); start {
		case "", catalog.Random:
			q.Random()
		default:
			if !q.Select(start) {
				return fmt.Errorf("catalog.start: %w: %q", catalog.ErrUnknownSignal, start)
			}
		}
	}
	if cfg.Catalog.Shuffle {
		q.EnableShuffle()
	}

	anim, err := cfg.Animation.Options()
	if err != nil {
		return err
	}
	model, err := ui.New(c, q, ui.Options{
		Animation:  anim,
		FPS:        cfg.Animation.FPS,
		Visualizer: cfg.Animation.Visualizer,
		Store:      store,
		Read:       media.ReadOptions{MaxSamples: cfg.Server.MaxSamples},
		Tone:       player.ToneOptions{Frequency: cfg.Animation.ToneHz},
		Unsaved:    unsaved,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
