package process

import (
	"bytes"
	"context"
	"runtime"
	"testing"

	"github.com/aretw0/wallethunt/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine mimics seedrecover.py: it reports a match only for $WANT.
const fakeEngine = `
m=""
while [ $# -gt 0 ]; do
  case "$1" in
    --mnemonic) shift; m="$1" ;;
  esac
  shift
done
echo "Starting fake engine"
if [ "$m" = "$WANT" ]; then
  echo "Seed found: $m"
  echo "Derivation Path: m/44'/60'/0'/0"
fi
`

func shellConfig(script string) Config {
	cfg := DefaultConfig()
	cfg.Command = "sh"
	cfg.Args = []string{"-c", script, "fake-engine"}
	return cfg
}

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell fixtures require a POSIX sh")
	}
}

func testRequest(mnemonic string) domain.Request {
	return domain.Request{
		WalletType: "ethereum",
		Address:    "0x82Bd10047dBE588508d5d976d59693E4Ab4ADaC5",
		AddrLimit:  1,
		Typos:      1,
		Mnemonic:   mnemonic,
	}
}

func TestEngine_Args(t *testing.T) {
	e, err := NewEngine(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"seedrecover.py", "--dsw",
		"--wallet-type", "ethereum",
		"--addrs", "0x82Bd10047dBE588508d5d976d59693E4Ab4ADaC5",
		"--addr-limit", "1",
		"--big-typos", "1",
		"--mnemonic", "apology cheese famous",
	}, e.Args(testRequest("apology cheese famous")))
}

func TestNewEngine_Validation(t *testing.T) {
	t.Run("Empty Command", func(t *testing.T) {
		_, err := NewEngine(Config{})
		assert.Error(t, err)
	})

	t.Run("Bad Pattern", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.FoundPattern = "("
		_, err := NewEngine(cfg)
		assert.ErrorContains(t, err, "found_pattern")
	})

	t.Run("Pattern Without Group", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.PathPattern = "Derivation Path"
		_, err := NewEngine(cfg)
		assert.ErrorContains(t, err, "capture group")
	})
}

func TestEngine_Parse(t *testing.T) {
	e, err := NewEngine(DefaultConfig())
	require.NoError(t, err)

	tests := []struct {
		name   string
		output string
		want   domain.Result
	}{
		{"Empty", "", domain.Result{}},
		{"Progress Only", "Using 4 worker threads\n100% done\n", domain.Result{}},
		{
			"Console Report",
			"Using 4 worker threads\nSeed found: apology cheese famous\nDerivation Path: m/44'/60'/0'/0\n",
			domain.Result{Mnemonic: "apology cheese famous", PathCoin: "m/44'/60'/0'/0"},
		},
		{
			"Last Report Wins",
			"Seed found: first try\nSeed found: second try\n",
			domain.Result{Mnemonic: "second try"},
		},
		{"Path Without Seed", "Derivation Path: m/44'/60'\n", domain.Result{}},
		{
			"JSON Numeric Coin",
			`{"mnemonic": "apology cheese", "path_coin": 60}`,
			domain.Result{Mnemonic: "apology cheese", PathCoin: "60"},
		},
		{
			"JSON String Path",
			`{"mnemonic": "apology cheese", "path_coin": "m/44'/60'"}`,
			domain.Result{Mnemonic: "apology cheese", PathCoin: "m/44'/60'"},
		},
		{"JSON No Match", `{"mnemonic": ""}`, domain.Result{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.parse(tt.output))
		})
	}
}

func TestEngine_Recover(t *testing.T) {
	skipWithoutShell(t)

	cfg := shellConfig(fakeEngine)
	cfg.Env = map[string]string{"WANT": "apology cheese famous"}

	var streamed bytes.Buffer
	e, err := NewEngine(cfg, WithOutput(&streamed, nil))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Match", func(t *testing.T) {
		res, err := e.Recover(ctx, testRequest("apology cheese famous"))
		require.NoError(t, err)
		assert.Equal(t, domain.Result{Mnemonic: "apology cheese famous", PathCoin: "m/44'/60'/0'/0"}, res)
		assert.Contains(t, streamed.String(), "Starting fake engine", "stdout is streamed")
	})

	t.Run("No Match", func(t *testing.T) {
		res, err := e.Recover(ctx, testRequest("runway cheese famous"))
		require.NoError(t, err)
		assert.False(t, res.Found())
	})
}

func TestEngine_RecoverEnv(t *testing.T) {
	skipWithoutShell(t)

	e, err := NewEngine(shellConfig(`printf '{"mnemonic": "%s", "path_coin": %s}' "$WALLETHUNT_ARG_MNEMONIC" "$WALLETHUNT_ARG_TYPOS"`))
	require.NoError(t, err)

	req := testRequest("husband expose")
	req.Typos = 2
	res, err := e.Recover(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.Result{Mnemonic: "husband expose", PathCoin: "2"}, res)
}

func TestEngine_ExitCodes(t *testing.T) {
	skipWithoutShell(t)

	t.Run("Configured No Match Code", func(t *testing.T) {
		cfg := shellConfig(`exit 1`)
		cfg.NoMatchExitCodes = []int{1}
		e, err := NewEngine(cfg)
		require.NoError(t, err)

		res, err := e.Recover(context.Background(), testRequest("a b"))
		require.NoError(t, err)
		assert.False(t, res.Found())
	})

	t.Run("Unexpected Failure", func(t *testing.T) {
		e, err := NewEngine(shellConfig(`echo "Something went terribly wrong" >&2; exit 123`))
		require.NoError(t, err)

		_, err = e.Recover(context.Background(), testRequest("a b"))
		assert.ErrorIs(t, err, domain.ErrEngine)
		assert.ErrorContains(t, err, "exit status 123")
		assert.ErrorContains(t, err, "Something went terribly wrong")
	})

	t.Run("Missing Executable", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Command = "wallethunt-no-such-engine"
		e, err := NewEngine(cfg)
		require.NoError(t, err)

		_, err = e.Recover(context.Background(), testRequest("a b"))
		assert.ErrorIs(t, err, domain.ErrEngine)
	})
}

func TestEngine_Version(t *testing.T) {
	skipWithoutShell(t)

	e, err := NewEngine(shellConfig(`[ "$1" = "--version" ] && { echo; echo "seedrecover.py 1.13.0-Cryptoguide"; }`))
	require.NoError(t, err)

	v, err := e.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "seedrecover.py 1.13.0-Cryptoguide", v)
}
