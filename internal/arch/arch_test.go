// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type pkg struct {
	ImportPath string
	Imports    []string
}

// core packages stay free of I/O drivers and presentation; the lint driver
// stays free of writers and the CLI.
var bans = map[string][]string{
	"fqlint/core/": {"fqlint/internal/", "fqlint/cmd/", "fqlint/pkg/"},
	"fqlint/core/validate": {
		"fqlint/core/distributions",
	},
	"fqlint/internal/lint": {
		"fqlint/internal/writers", "fqlint/internal/app", "fqlint/internal/config",
		"fqlint/cmd/",
	},
	"fqlint/internal/writers": {
		"fqlint/internal/app", "fqlint/internal/config", "fqlint/cmd/",
	},
	"fqlint/internal/generate": {
		"fqlint/internal/lint", "fqlint/internal/writers", "fqlint/internal/app", "fqlint/cmd/",
	},
}

func listPackages(t *testing.T) []pkg {
	t.Helper()
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	require.NoError(t, cmd.Run(), "go list")

	var pkgs []pkg
	dec := json.NewDecoder(&out)
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs
}

func TestImportBoundaries(t *testing.T) {
	var violations []string
	for _, p := range listPackages(t) {
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(p.ImportPath, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, p.ImportPath+" → "+dep)
					}
				}
			}
		}
	}
	require.Empty(t, violations, "import boundary violations:\n  %s", strings.Join(violations, "\n  "))
}
