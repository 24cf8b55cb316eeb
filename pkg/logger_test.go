package pkg_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-reactbot/pkg"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer

	logger := pkg.NewLogger(&buf, "warn")

	logger.Info("не должно попасть в журнал")
	assert.Zero(t, buf.Len())

	logger.Warn("Реакция не найдена", "rule", "greet")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "greet", record["rule"])
}

func TestNewLogger_UnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer

	logger := pkg.NewLogger(&buf, "verbose")

	logger.Debug("скрыто")
	assert.Zero(t, buf.Len())

	logger.Info("видно")
	assert.NotZero(t, buf.Len())
}
