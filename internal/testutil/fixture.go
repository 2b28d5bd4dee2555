package testutil

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/exprast/pkg/cst"
)

// Fixture is one conversion case read from a YAML file. Nodes are the
// pending nodes handed to the builder named by the first node's rule.
// Want is the expected rendering on success; Error, when set, is a
// substring of the expected failure instead.
type Fixture struct {
	Name  string      `yaml:"name"`
	Want  string      `yaml:"want"`
	Error string      `yaml:"error,omitempty"`
	Nodes []*cst.Node `yaml:"nodes"`
}

// LoadFixtures reads a YAML sequence of fixtures, failing the test on any
// read or decode error.
func LoadFixtures(t testing.TB, path string) []Fixture {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}
	var fixtures []Fixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("decode fixtures %s: %v", path, err)
	}
	if len(fixtures) == 0 {
		t.Fatalf("no fixtures in %s", path)
	}
	return fixtures
}

// LoadCST reads a YAML file in the cst.Decode format and returns its
// pending nodes as a fresh cursor.
func LoadCST(t testing.TB, path string) *cst.Pairs {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open cst: %v", err)
	}
	defer f.Close()

	nodes, err := cst.Decode(f)
	if err != nil {
		t.Fatalf("decode cst %s: %v", path, err)
	}
	return cst.Synthesize(nodes...)
}
