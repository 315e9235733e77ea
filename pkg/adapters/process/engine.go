package process

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"slices"
	"strconv"
	"strings"

	"github.com/aretw0/wallethunt/pkg/domain"
)

// EnvPrefix prefixes the request fields exported to the engine environment.
const EnvPrefix = "WALLETHUNT_ARG_"

// Engine implements ports.RecoveryEngine by running an external program once per candidate.
type Engine struct {
	cfg      Config
	patterns patterns
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithOutput streams the engine's stdout and stderr to the given writers while
// they are also captured for parsing. Nil writers are ignored.
func WithOutput(stdout, stderr io.Writer) EngineOption {
	return func(e *Engine) {
		e.stdout = stdout
		e.stderr = stderr
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine validates cfg and creates an Engine.
func NewEngine(cfg Config, opts ...EngineOption) (*Engine, error) {
	if strings.TrimSpace(cfg.Command) == "" {
		return nil, fmt.Errorf("engine command cannot be empty")
	}
	if cfg.ChildGrace <= 0 {
		cfg.ChildGrace = DefaultChildGrace
	}
	p, err := cfg.compile()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg,
		patterns: p,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Args returns the argument vector (without the command) for req.
func (e *Engine) Args(req domain.Request) []string {
	args := make([]string, 0, len(e.cfg.Args)+len(e.cfg.Flags)+10)
	args = append(args, e.cfg.Args...)
	args = append(args, e.cfg.Flags...)
	args = append(args,
		"--wallet-type", req.WalletType,
		"--addrs", req.Address,
		"--addr-limit", strconv.Itoa(req.AddrLimit),
		"--big-typos", strconv.Itoa(req.Typos),
		"--mnemonic", req.Mnemonic,
	)
	return args
}

func (e *Engine) env(req domain.Request) []string {
	env := make([]string, 0, len(e.cfg.Env)+5)
	for k, v := range e.cfg.Env {
		env = append(env, k+"="+v)
	}
	env = append(env,
		EnvPrefix+"WALLET_TYPE="+req.WalletType,
		EnvPrefix+"ADDRESS="+req.Address,
		EnvPrefix+"ADDR_LIMIT="+strconv.Itoa(req.AddrLimit),
		EnvPrefix+"TYPOS="+strconv.Itoa(req.Typos),
		EnvPrefix+"MNEMONIC="+req.Mnemonic,
	)
	return env
}

func (e *Engine) command(ctx context.Context, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, e.cfg.Command, args...)
	cmd.Dir = e.cfg.WorkDir
	setProcessGroup(cmd)
	// Ask the whole group to stop on cancellation; WaitDelay escalates to a kill.
	cmd.Cancel = func() error {
		return terminateGroup(cmd.Process)
	}
	cmd.WaitDelay = e.cfg.ChildGrace
	return cmd
}

// Recover runs the engine for one candidate.
// It returns a zero Result when the engine finished without a match.
func (e *Engine) Recover(ctx context.Context, req domain.Request) (domain.Result, error) {
	cmd := e.command(ctx, e.Args(req))
	cmd.Env = append(cmd.Environ(), e.env(req)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = tee(&stdout, e.stdout)
	cmd.Stderr = tee(&stderr, e.stderr)

	err := cmd.Run()
	if cmd.Process != nil {
		// Wait for any remaining child processes to exit before the next candidate.
		reapGroup(cmd.Process.Pid, e.cfg.ChildGrace)
	}

	if errors.Is(err, exec.ErrWaitDelay) {
		// The engine exited but a straggler held its pipes open.
		e.logger.Debug("engine left pipes open", "command", e.cfg.Command)
		err = nil
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Result{}, fmt.Errorf("engine interrupted: %w", ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && slices.Contains(e.cfg.NoMatchExitCodes, exitErr.ExitCode()) {
			e.logger.Debug("engine reported no match", "exit_code", exitErr.ExitCode())
			return domain.Result{}, nil
		}
		return domain.Result{}, fmt.Errorf("%w: execution failed: %v. Stderr: %s",
			domain.ErrEngine, err, strings.TrimSpace(stderr.String()))
	}

	return e.parse(stdout.String()), nil
}

type jsonResult struct {
	Mnemonic string `json:"mnemonic"`
	PathCoin any    `json:"path_coin"`
}

// parse extracts a Result from engine stdout.
// A JSON object is preferred; otherwise the configured patterns are applied and
// the last occurrence wins.
func (e *Engine) parse(output string) domain.Result {
	trimmed := strings.TrimSpace(output)

	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		var jr jsonResult
		if err := json.Unmarshal([]byte(trimmed), &jr); err == nil {
			res := domain.Result{Mnemonic: strings.TrimSpace(jr.Mnemonic)}
			switch v := jr.PathCoin.(type) {
			case nil:
			case float64:
				res.PathCoin = strconv.FormatFloat(v, 'f', -1, 64)
			default:
				res.PathCoin = strings.TrimSpace(fmt.Sprint(v))
			}
			return res
		}
	}

	var res domain.Result
	if m := e.patterns.found.FindAllStringSubmatch(output, -1); len(m) > 0 {
		res.Mnemonic = strings.TrimSpace(m[len(m)-1][1])
	}
	if !res.Found() {
		return domain.Result{}
	}
	if m := e.patterns.path.FindAllStringSubmatch(output, -1); len(m) > 0 {
		res.PathCoin = strings.TrimSpace(m[len(m)-1][1])
	}
	return res
}

// Version asks the engine for its version string (first non-blank output line).
func (e *Engine) Version(ctx context.Context) (string, error) {
	args := append(append([]string{}, e.cfg.Args...), "--version")
	cmd := e.command(ctx, args)
	out, err := cmd.CombinedOutput()
	if cmd.Process != nil {
		reapGroup(cmd.Process.Pid, e.cfg.ChildGrace)
	}
	if err != nil && !errors.Is(err, exec.ErrWaitDelay) {
		return "", fmt.Errorf("%w: version check failed: %v", domain.ErrEngine, err)
	}
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
	return "", nil
}

func tee(capture *bytes.Buffer, stream io.Writer) io.Writer {
	if stream == nil {
		return capture
	}
	return io.MultiWriter(capture, stream)
}
