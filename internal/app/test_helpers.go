package app

import (
	"io"
	"os"
	"testing"

	"github.com/specialistvlad/ged2dot/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing. Output written
// to "-" is captured in the returned buffer, logs in the second one.
func SetupAppTest(t *testing.T, appConfig *Config, stdin io.Reader) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	out := &testutil.SafeBuffer{}
	logs := &testutil.SafeBuffer{}
	appConfig.LogLevel = "debug"
	testApp := NewApp(out, logs, appConfig)
	if stdin != nil {
		testApp.inR = stdin
	}

	t.Cleanup(func() {
		if os.Getenv("GED2DOT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}
