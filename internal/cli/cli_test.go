package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/gedtree/pkg/config"
)

const family = `0 HEAD
1 CHAR UTF-8
0 @I1@ INDI
1 NAME Karl /Berg/
1 SEX M
1 BIRT
2 DATE 3 APR 1880
1 FAMS @F1@
0 @I2@ INDI
1 NAME Anna /Berg/
1 SEX F
1 FAMS @F1@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 CHIL @I4@
1 MARR
2 DATE 1905
2 PLAC Bremen
0 @I3@ INDI
1 NAME Otto /Berg/
1 SEX M
1 FAMC @F1@
0 @I4@ INDI
1 NAME Lina /Berg/
1 SEX F
1 FAMC @F1@
0 TRLR
`

// setup isolates config and cache directories and writes the test family.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv(config.EnvRedisAddr, "")
	t.Setenv(config.EnvMongoURI, "")

	path := filepath.Join(dir, "family.ged")
	if err := os.WriteFile(path, []byte(family), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

type brief struct {
	Pointer string `json:"pointer"`
	Name    string `json:"name"`
	Birth   string `json:"birth"`
}

func decodePeople(t *testing.T, out string) []brief {
	t.Helper()
	var people []brief
	if err := json.Unmarshal([]byte(out), &people); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	return people
}

func TestQueryCommands(t *testing.T) {
	ged := setup(t)

	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"query", "children", ged, "@I1@"}, []string{"@I3@", "@I4@"}},
		{[]string{"query", "siblings", ged, "I4"}, []string{"@I3@"}},
		{[]string{"query", "spouses", ged, "I2"}, []string{"@I1@"}},
		{[]string{"query", "ancestors", ged, "I4"}, []string{"@I1@", "@I2@"}},
		{[]string{"query", "path", ged, "I3", "I2"}, []string{"@I3@", "@I2@"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args[:2], " "), func(t *testing.T) {
			out, err := execute(t, append(tt.args, "--format", "json", "--no-cache")...)
			if err != nil {
				t.Fatal(err)
			}
			people := decodePeople(t, out)
			if len(people) != len(tt.want) {
				t.Fatalf("got %d people, want %v", len(people), tt.want)
			}
			for i, p := range people {
				if p.Pointer != tt.want[i] {
					t.Errorf("people[%d] = %s, want %s", i, p.Pointer, tt.want[i])
				}
			}
		})
	}
}

func TestQueryParents(t *testing.T) {
	ged := setup(t)
	motherOnly := filepath.Join(filepath.Dir(ged), "roth.ged")
	src := "0 HEAD\n0 @M@ INDI\n1 NAME Ida /Roth/\n1 FAMS @F@\n" +
		"0 @C@ INDI\n1 NAME Paul /Roth/\n1 FAMC @F@\n" +
		"0 @F@ FAM\n1 WIFE @M@\n1 CHIL @C@\n0 TRLR\n"
	if err := os.WriteFile(motherOnly, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name           string
		file, pointer  string
		father, mother string
	}{
		{"both", ged, "I3", "@I1@", "@I2@"},
		{"mother only", motherOnly, "C", "", "@M@"},
		{"none", ged, "I1", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "query", "parents", tt.file, tt.pointer, "--format", "json", "--no-cache")
			if err != nil {
				t.Fatal(err)
			}
			var got struct {
				Father *brief `json:"father"`
				Mother *brief `json:"mother"`
			}
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("decode %q: %v", out, err)
			}
			slot := func(b *brief) string {
				if b == nil {
					return ""
				}
				return b.Pointer
			}
			if slot(got.Father) != tt.father || slot(got.Mother) != tt.mother {
				t.Errorf("father = %q, mother = %q, want %q, %q", slot(got.Father), slot(got.Mother), tt.father, tt.mother)
			}
		})
	}

	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "query", "parents", motherOnly, "C", "--no-cache")
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"Role", "father", "unknown", "mother", "@M@", "Ida Roth"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})
}

func TestQueryMarriagesYAML(t *testing.T) {
	ged := setup(t)

	out, err := execute(t, "query", "marriages", ged, "I1", "-f", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "date: \"1905\"") || !strings.Contains(out, "place: Bremen") {
		t.Errorf("marriages output = %q", out)
	}
}

func TestQueryErrors(t *testing.T) {
	ged := setup(t)

	if _, err := execute(t, "query", "parents", ged, "I99"); err == nil {
		t.Error("expected error for unknown pointer")
	}
	if _, err := execute(t, "query", "parents", ged, "F1"); err == nil {
		t.Error("expected error for a family pointer")
	}
	if _, err := execute(t, "query", "parents", ged, "I1", "-f", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := execute(t, "query", "parents", filepath.Join(t.TempDir(), "missing.ged"), "I1"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestQueryTextTable(t *testing.T) {
	ged := setup(t)

	out, err := execute(t, "query", "children", ged, "I1")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Otto Berg", "Lina Berg", "Pointer"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSearchCommand(t *testing.T) {
	ged := setup(t)

	out, err := execute(t, "search", ged, "otto", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var hits []searchHit
	if err := json.Unmarshal([]byte(out), &hits); err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].Pointer != "@I3@" {
		t.Errorf("hits = %+v, want Otto only", hits)
	}

	out, err = execute(t, "search", ged, "zzz")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "no individuals match") {
		t.Errorf("output = %q", out)
	}
}

func TestExportCSV(t *testing.T) {
	ged := setup(t)
	dest := filepath.Join(t.TempDir(), "family.csv")

	if _, err := execute(t, "export", ged, "-o", dest, "--date-layout", "02.01.2006"); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(dest)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want header + 4", len(rows))
	}
	if rows[1][0] != "Karl Berg" || rows[1][3] != "03.04.1880" {
		t.Errorf("first row = %v", rows[1])
	}
}

func TestExportInvalidFormat(t *testing.T) {
	ged := setup(t)
	if _, err := execute(t, "export", ged, "--format", "xml"); err == nil {
		t.Error("expected error for unknown export format")
	}
}

func TestRenderDOT(t *testing.T) {
	ged := setup(t)

	out, err := execute(t, "render", ged, "I1", "--format", "dot", "-o", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "digraph") {
		t.Errorf("render output does not start with digraph: %q", out)
	}
	if !strings.Contains(out, `"@I1@" -> "@I3@"`) {
		t.Errorf("missing parent-child edge:\n%s", out)
	}
}

func TestRenderInvalidMode(t *testing.T) {
	ged := setup(t)
	if _, err := execute(t, "render", ged, "I1", "--mode", "sideways"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestShowPointer(t *testing.T) {
	ged := setup(t)

	out, err := execute(t, "show", ged, "-p", "F1")
	if err != nil {
		t.Fatal(err)
	}
	want := "0 @F1@ FAM\n1 HUSB @I1@\n1 WIFE @I2@\n1 CHIL @I3@\n1 CHIL @I4@\n1 MARR\n2 DATE 1905\n2 PLAC Bremen\n"
	if out != want {
		t.Errorf("show -p F1 =\n%s\nwant\n%s", out, want)
	}
}

func TestParseJSONToStdout(t *testing.T) {
	ged := setup(t)

	out, err := execute(t, "parse", ged, "-o", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid([]byte(out)) {
		t.Errorf("parse -o - did not produce JSON: %q", out)
	}
	if !strings.Contains(out, "Bremen") {
		t.Error("element tree is missing the marriage place")
	}
}

func TestConfigInit(t *testing.T) {
	setup(t)

	path, err := execute(t, "config", "path")
	if err != nil {
		t.Fatal(err)
	}
	path = strings.TrimSpace(path)
	if want := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), appName, "config.toml"); path != want {
		t.Errorf("config path = %q, want %q", path, want)
	}

	if _, err := execute(t, "config", "init"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if _, err := execute(t, "config", "init"); err == nil {
		t.Error("second init without --force should fail")
	}
	if _, err := execute(t, "config", "init", "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}

	out, err := execute(t, "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `backend = "file"`) {
		t.Errorf("config show = %q", out)
	}
}

func TestInvalidConfigFails(t *testing.T) {
	ged := setup(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[cache]\nbackend = \"tape\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "--config", path, "parse", ged); err == nil {
		t.Error("expected error for unknown cache backend")
	}
}

func TestOpenStoreUnknown(t *testing.T) {
	c := New(io.Discard, LogInfo)
	if _, err := c.openStore(context.Background(), "tape"); err == nil {
		t.Error("expected error for unknown store")
	}
	st, err := c.openStore(context.Background(), config.StoreMemory)
	if err != nil {
		t.Fatal(err)
	}
	st.Close()
}

func TestCacheClear(t *testing.T) {
	ged := setup(t)

	if _, err := execute(t, "parse", ged); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	dir := strings.TrimSpace(out)
	if want := filepath.Join(os.Getenv("XDG_CACHE_HOME"), appName); dir != want {
		t.Fatalf("cache path = %q, want %q", dir, want)
	}
	shards, err := os.ReadDir(dir)
	if err != nil || len(shards) == 0 {
		t.Fatalf("parse did not populate the cache: %v", err)
	}

	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if shards, _ := os.ReadDir(dir); len(shards) != 0 {
		t.Errorf("%d entries left after clear", len(shards))
	}
}
