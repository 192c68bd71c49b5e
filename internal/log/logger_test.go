package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Configure is once-guarded per process, so a single test exercises the
// whole surface.
func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "streammatch-test"})

	// A second call must not replace the configured logger.
	Configure(Config{Service: "other"})

	resolverLogger := WithComponent("resolver")
	resolverLogger.Info().Str(FieldQuery, "CNN").Msg("resolved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "streammatch-test", entry["service"])
	require.Equal(t, "resolver", entry[FieldComponent])
	require.Equal(t, "CNN", entry["query"])
	require.Equal(t, "resolved", entry["message"])

	buf.Reset()
	baseLogger := Base()
	baseLogger.Info().Msg("hello")
	require.Contains(t, buf.String(), `"service":"streammatch-test"`)
}
