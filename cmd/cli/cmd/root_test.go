package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roas-calculator/core/engine"
	"roas-calculator/core/types"
	"roas-calculator/internal/errors"
	"roas-calculator/internal/logging"
)

// execute runs rootCmd with a config path that does not exist so built-in
// defaults apply.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithConfig(t, filepath.Join(t.TempDir(), "missing.json"), args...)
}

func executeWithConfig(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestCalculateJSON(t *testing.T) {
	out, err := execute(t, "calculate", "--tier", "silver", "--spend", "2500", "--roas", "3", "--margin", "60", "--format", "json")
	require.NoError(t, err)

	var report engine.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "silver", report.Tier.Key)
	assert.InDelta(t, 7500.0, report.Metrics.Revenue, 1e-9)
	assert.InDelta(t, 4500.0, report.Metrics.GrossProfit, 1e-9)
	assert.InDelta(t, 3850.0, report.Metrics.NetAfterFee, 1e-9)
	assert.Len(t, report.Comparison, 4)
}

func TestCalculateFeeOverride(t *testing.T) {
	out, err := execute(t, "calculate", "--tier", "silver", "--spend", "2500", "--roas", "3", "--margin", "60", "--fee", "0", "--format", "json")
	require.NoError(t, err)

	var report engine.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.InDelta(t, 0.0, report.Input.Fee, 1e-9)
	assert.InDelta(t, 4500.0, report.Metrics.NetAfterFee, 1e-9)
	require.True(t, report.Metrics.BreakevenROAS.Valid)
	assert.InDelta(t, 0.0, report.Metrics.BreakevenROAS.Value, 1e-9)
}

func TestCalculateWarnsOnAdjustedInput(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "roas.log")
	cfgPath := filepath.Join(dir, "roas.json")
	cfgJSON := `{"logging": {"level": "warn", "format": "json", "output": "` + logPath + `"}}`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgJSON), 0644))

	out, err := executeWithConfig(t, cfgPath, "calculate", "--tier", "silver", "--spend=-100", "--roas", "3", "--margin", "150", "--format", "json")
	require.NoError(t, err)

	var report engine.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Zero(t, report.Input.Spend)
	assert.InDelta(t, 1.0, report.Input.GrossMarginFraction, 1e-9)

	logging.Sync()
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"spend adjusted"`)
	assert.Contains(t, string(data), `"msg":"gross margin adjusted"`)
	assert.NotContains(t, string(data), "roas adjusted")
}

func TestCalculateRejectsOverflow(t *testing.T) {
	_, err := execute(t, "calculate", "--tier", "silver", "--spend", "1e200", "--roas", "1e200", "--margin", "50")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestCalculateUnknownTier(t *testing.T) {
	_, err := execute(t, "calculate", "--tier", "platinum")
	assert.Error(t, err)
}

func TestCompareJSON(t *testing.T) {
	out, err := execute(t, "compare", "--roas", "3", "--margin", "60", "--format", "json")
	require.NoError(t, err)

	var payload struct {
		Comparison []types.TierComparisonRow `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload.Comparison, 4)

	spends := make([]float64, 0, 4)
	for i, row := range payload.Comparison {
		spends = append(spends, row.SuggestedSpend)
		if i > 0 {
			assert.GreaterOrEqual(t, row.NetAfterFee, payload.Comparison[i-1].NetAfterFee)
		}
	}
	assert.Equal(t, []float64{800, 2000, 4000, 8000}, spends)
}

func TestTiersWithCatalogFile(t *testing.T) {
	out, err := execute(t, "tiers", "--catalog", filepath.Join("..", "..", "..", "core", "catalog", "testdata", "tiers.yaml"), "--format", "json")
	require.NoError(t, err)

	var payload struct {
		Tiers []types.Tier `json:"tiers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.NotEmpty(t, payload.Tiers)
}

func TestCatalogLoadIsLogged(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "roas.log")
	cfgPath := filepath.Join(dir, "roas.json")
	cfgJSON := `{"logging": {"level": "debug", "format": "json", "output": "` + logPath + `"}}`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgJSON), 0644))

	catalogPath := filepath.Join("..", "..", "..", "core", "catalog", "testdata", "tiers.hcl")
	_, err := executeWithConfig(t, cfgPath, "tiers", "--catalog", catalogPath, "--format", "json")
	require.NoError(t, err)

	logging.Sync()
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"loaded tier catalog"`)
	assert.Contains(t, string(data), `"path":"`+catalogPath+`"`)
	assert.Contains(t, string(data), `"tiers":4`)
}

func TestUnknownFormat(t *testing.T) {
	_, err := execute(t, "tiers", "--format", "xml")
	assert.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roas.json")
	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}
