package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/wallethunt/internal/adapters/file"
	httpadapter "github.com/aretw0/wallethunt/internal/adapters/http"
	redisstore "github.com/aretw0/wallethunt/internal/adapters/redis"
	"github.com/aretw0/wallethunt/internal/config"
	"github.com/aretw0/wallethunt/internal/logging"
	"github.com/aretw0/wallethunt/internal/presentation/tui"
	"github.com/aretw0/wallethunt/pkg/adapters/process"
	"github.com/aretw0/wallethunt/pkg/domain"
	"github.com/aretw0/wallethunt/pkg/exclusion"
	"github.com/aretw0/wallethunt/pkg/hunt"
	"github.com/aretw0/wallethunt/pkg/input"
	"github.com/aretw0/wallethunt/pkg/observability"
	"github.com/aretw0/wallethunt/pkg/space"
)

// HuntOptions carries the per-invocation settings that are not part of the
// persisted configuration.
type HuntOptions struct {
	InputPath string
	Force     bool
	Quiet     bool
	Version   string
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
}

func (o *HuntOptions) defaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}
}

// Hunt loads the input file and runs the search with cfg.
//
// A match recorded by an earlier run is reported without touching the engine
// unless opts.Force is set.
func Hunt(ctx context.Context, cfg config.Config, opts HuntOptions) (domain.Outcome, error) {
	opts.defaults()
	logger := opts.Logger
	ui := tui.NewPresenter(opts.Stdout, opts.Quiet)

	if err := cfg.Validate(); err != nil {
		return domain.Outcome{}, err
	}

	hf, s, err := loadInput(opts.InputPath, cfg, ui)
	if err != nil {
		return domain.Outcome{}, err
	}

	matches := file.NewMatchStore(cfg.Dir)
	if !opts.Force {
		res, ok, err := matches.ReadMatch(ctx, hf.Address)
		if err != nil {
			return domain.Outcome{}, err
		}
		if ok {
			path, _ := file.MatchPath(cfg.Dir, hf.Address)
			ui.Recorded(path, res)
			return domain.Outcome{Status: domain.StatusFound, Result: res, Total: s.Total()}, nil
		}
	}

	// A lost lease stops the run with its own cause, apart from a signal.
	runCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	store, err := openStore(ctx, cfg, hf.Address, &leaseOptions{
		Logger: logger,
		OnLost: func(string) { cancel(redisstore.ErrLeaseLost) },
	})
	if err != nil {
		return domain.Outcome{}, err
	}
	defer store.Close()

	engineOpts := []process.EngineOption{process.WithLogger(logger)}
	if !opts.Quiet {
		engineOpts = append(engineOpts, process.WithOutput(opts.Stdout, opts.Stderr))
	}
	engine, err := process.NewEngine(cfg.Engine, engineOpts...)
	if err != nil {
		return domain.Outcome{}, err
	}

	if version, err := engine.Version(ctx); err != nil {
		logger.Warn("Engine version check failed", "err", err)
	} else if version != "" {
		ui.Banner(version)
	}

	filter := exclusion.New(store)
	excluded, err := filter.Len(ctx)
	if err != nil {
		return domain.Outcome{}, err
	}
	ui.Start(hf.Address, s.Total(), excluded)

	hooks := ui.Hooks(s.Total()).Merge(createDebugHooks(logger))

	if cfg.MetricsAddr != "" {
		metrics := observability.NewMetrics()
		hooks = hooks.Merge(metrics.Hooks())

		srvCtx, stop := context.WithCancel(ctx)
		handler := httpadapter.NewHandler(&httpadapter.Server{
			Version:  opts.Version,
			Address:  hf.Address,
			Source:   metrics,
			Gatherer: metrics.Registry,
		})
		done, err := httpadapter.Serve(srvCtx, cfg.MetricsAddr, handler, logger)
		if err != nil {
			stop()
			return domain.Outcome{}, fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			stop()
			if err := <-done; err != nil {
				logger.Error("Metrics server failed", "err", err)
			}
		}()
	}

	hunter := hunt.New(engine, filter,
		hunt.WithLogger(logger),
		hunt.WithHooks(hooks),
		hunt.WithMatchSink(matches),
	)

	out, err := hunter.Run(runCtx, s, hunt.Params{
		Target:    domain.Target{Address: hf.Address, WalletType: cfg.WalletType},
		AddrLimit: cfg.AddrLimit,
		Typos:     cfg.Typos,
	})
	if cause := context.Cause(runCtx); err != nil && errors.Is(cause, redisstore.ErrLeaseLost) {
		err = fmt.Errorf("failed to hold target lease: %w", cause)
	}
	// A match is shown even when persisting it failed.
	if out.Result.Found() {
		ui.Found(out.Result)
	}
	switch {
	case err != nil && isInterrupted(err):
		var sig os.Signal
		if sc, ok := ctx.(*SignalContext); ok {
			sig = sc.Signal()
		}
		ui.Interrupted(sig, out)
		return out, err
	case err != nil:
		return out, err
	case out.Status != domain.StatusFound:
		ui.Exhausted(out)
	}
	return out, nil
}

// loadInput reads and lints the input file and builds its candidate space.
func loadInput(path string, cfg config.Config, ui *tui.Presenter) (*input.File, *space.Space, error) {
	if path == "" {
		return nil, nil, errors.New("input file is required")
	}
	hf, err := input.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	issues := input.Lint(hf, cfg.WalletType)
	if cfg.Strict {
		if err := input.LintError(issues); err != nil {
			return nil, nil, err
		}
	}
	for _, issue := range issues {
		ui.Warn(issue)
	}

	s, err := space.New(hf.Positions)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return hf, s, nil
}
