package checker

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/smartlogistics/i18n"
)

func TestCheckLocales(t *testing.T) {
	t.Run("CheckLocales_Shipped", func(t *testing.T) {
		res, err := CheckLocales("../../../locales", i18n.English)
		if err != nil {
			t.Fatalf("CheckLocales: %v", err)
		}
		if res.HasIssues() {
			t.Fatalf("shipped catalog has issues: %+v", res)
		}
		if !slices.Equal(res.Languages, []string{"en", "hi", "ta"}) {
			t.Fatalf("Languages = %v", res.Languages)
		}
		if len(res.AllKeys) != len(i18n.Keys()) {
			t.Fatalf("len(AllKeys) = %d, want %d", len(res.AllKeys), len(i18n.Keys()))
		}
	})
	t.Run("CheckLocales_Mismatch", func(t *testing.T) {
		res, err := CheckLocales("../../../testdata/mismatch", i18n.English)
		if err != nil {
			t.Fatalf("CheckLocales: %v", err)
		}
		if !res.HasIssues() {
			t.Fatal("HasIssues = false")
		}
		if got := res.MissingKeys["hi"]; !slices.Equal(got, []string{"nav.settings"}) {
			t.Fatalf("MissingKeys[hi] = %v", got)
		}
		if got := res.MissingKeys["en"]; !slices.Equal(got, []string{"legacy.banner"}) {
			t.Fatalf("MissingKeys[en] = %v", got)
		}
		if got := res.RedundantKeys["hi"]; !slices.Equal(got, []string{"legacy.banner"}) {
			t.Fatalf("RedundantKeys[hi] = %v", got)
		}
		if len(res.RedundantKeys["ta"]) != 0 {
			t.Fatalf("RedundantKeys[ta] = %v", res.RedundantKeys["ta"])
		}
		if res.SyntaxErrors["en"]["metrics.alerts"] == nil {
			t.Fatal("expected unclosed placeholder error for en")
		}
		if res.SyntaxErrors["ta"]["metrics.alerts"] == nil {
			t.Fatal("expected unknown formatter error for ta")
		}
		if len(res.SyntaxErrors["hi"]) != 0 {
			t.Fatalf("SyntaxErrors[hi] = %v", res.SyntaxErrors["hi"])
		}
	})
	t.Run("CheckLocales_Fail", func(t *testing.T) {
		if _, err := CheckLocales("../../../testdata/error", i18n.English); err == nil {
			t.Fatal("expected error for file without language")
		}
	})
}

func TestResult_Export(t *testing.T) {
	res, err := CheckLocales("../../../locales", i18n.English)
	if err != nil {
		t.Fatalf("CheckLocales: %v", err)
	}
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := res.Export(dir)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("paths = %v", paths)
	}
	if _, err := os.Stat(filepath.Join(dir, "active.ta.toml")); err != nil {
		t.Fatalf("stat: %v", err)
	}
}
