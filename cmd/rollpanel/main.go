package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"rollpanel/internal/config"
	"rollpanel/internal/deck"
	"rollpanel/internal/roller"
	"rollpanel/internal/trace"
	"rollpanel/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// options holds the parsed command line.
type options struct {
	configPath string
	file       string
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "config file (default $ROLLPANEL_CONFIG or the user config dir)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rollpanel [flags] FILE\n\n")
		fmt.Fprintf(os.Stderr, "Pages through FILE with rolling transitions. Pages are\n")
		fmt.Fprintf(os.Stderr, "separated by lines containing only %q.\n\n", deck.Separator)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.file = flag.Arg(0)
	return opts
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "rollpanel")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	d, err := deck.Load(opts.file)
	if err != nil {
		return err
	}

	ctx := context.Background()
	tp, err := trace.NewProvider(ctx)
	if err != nil {
		return err
	}
	var observer roller.Observer = roller.NopObserver{}
	if tp != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				logger.Printf("trace shutdown: %v", err)
			}
		}()
		observer = trace.NewObserver(ctx, tp)
	}

	savePath := opts.configPath
	if savePath == "" {
		savePath = os.Getenv(config.EnvPrefix + "_CONFIG")
	}
	app, err := ui.NewAppModel(d, cfg, savePath,
		roller.WithLogger(logger),
		roller.WithObserver(observer),
	)
	if err != nil {
		return err
	}
	app.Logger = logger
	logger.Printf("loaded %s: %d pages", opts.file, d.Len())

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "rollpanel: %v\n", err)
		os.Exit(1)
	}
}
