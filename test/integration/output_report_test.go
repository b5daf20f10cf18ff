package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/rothtrad/internal/calculation"
	"github.com/rpgo/rothtrad/internal/config"
	"github.com/rpgo/rothtrad/internal/domain"
	"github.com/rpgo/rothtrad/internal/output"
)

func loadProjection(t *testing.T) *domain.Projection {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/scenario_traditional.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	p, err := calculation.NewEngine().Project(context.Background(), cfg.DistributionParams())
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	p.Assumptions = output.GenerateAssumptions(p)
	return p
}

func TestEveryFormatterRenders(t *testing.T) {
	p := loadProjection(t)
	for _, name := range output.AvailableFormatterNames() {
		var buf bytes.Buffer
		if err := output.Render(&buf, p, name); err != nil {
			t.Fatalf("%s: render error: %v", name, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("%s: empty output", name)
		}
	}
}

func TestConsoleReportShowsComparison(t *testing.T) {
	var buf bytes.Buffer
	if err := output.Render(&buf, loadProjection(t), "console"); err != nil {
		t.Fatalf("render error: %v", err)
	}
	content := buf.String()
	if !strings.Contains(content, "$800.00") {
		t.Fatalf("expected net advantage $800.00 in report")
	}
	if !strings.Contains(content, "TRADITIONAL") {
		t.Fatalf("expected traditional recommendation in report")
	}
}

func TestGenerateReportWritesFiles(t *testing.T) {
	dir := t.TempDir()
	files, err := output.GenerateReport(loadProjection(t), "all", dir)
	if err != nil {
		t.Fatalf("GenerateReport error: %v", err)
	}
	for _, f := range files {
		if filepath.Dir(f) != dir {
			t.Fatalf("report %s written outside %s", f, dir)
		}
		fi, err := os.Stat(f)
		if err != nil {
			t.Fatalf("expected file exists, err: %v", err)
		}
		if fi.Size() == 0 {
			t.Fatalf("expected non-empty file %s", f)
		}
	}
}

func TestSaveConfiguration_WritesLoadableFile(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/scenario_roth.toml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	out := filepath.Join(t.TempDir(), "config.json")
	if err := parser.SaveConfiguration(cfg, out); err != nil {
		t.Fatalf("SaveConfiguration error: %v", err)
	}
	back, err := parser.LoadFromFile(out)
	if err != nil {
		t.Fatalf("reload saved config: %v", err)
	}
	if back.Contribution.Key() != cfg.Contribution.Key() {
		t.Fatalf("round trip changed parameters:\n%s\n%s", back.Contribution.Key(), cfg.Contribution.Key())
	}
}
