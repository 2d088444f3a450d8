package harness_test

import (
	"os"
	"testing"

	"github.com/momentics/spinreact/facade"
	"github.com/momentics/spinreact/reactor"
)

// reactorEnv turns the test binary into a reactor executable, so suite tests
// can start real child processes.
const reactorEnv = "SPINREACT_TEST_REACTOR"

func TestMain(m *testing.M) {
	if kind := os.Getenv(reactorEnv); kind != "" {
		os.Exit(facade.Main(reactor.Kind(kind), os.Args[1:]))
	}
	os.Exit(m.Run())
}
