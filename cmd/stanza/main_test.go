package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const johnJSON = `{
  "name": "john",
  "text": "John reads books",
  "sentences": [
    [
      {"id": "1", "text": "John", "upos": "PROPN", "head": 2, "deprel": "nsubj", "ner": "S-PER", "misc": "start_char=0|end_char=4"},
      {"id": "2", "text": "reads", "upos": "VERB", "head": 0, "deprel": "root", "ner": "O", "misc": "start_char=5|end_char=10"},
      {"id": "3", "text": "books", "upos": "NOUN", "head": 2, "deprel": "obj", "ner": "O", "misc": "start_char=11|end_char=16"}
    ]
  ]
}`

func setupRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "john.json"), []byte(johnJSON), 0o600); err != nil {
		t.Fatalf("failed to write doc: %v", err)
	}
	return dir
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}
	pool := &Pool{}

	err := newApp(ui, pool).Run(append([]string{"stanza"}, args...))
	if cerr := pool.Close(); err == nil {
		err = cerr
	}
	return out.String(), err
}

func TestAppDocsList(t *testing.T) {
	dir := setupRepo(t)
	out, err := runApp(t, "--repo", dir, "docs")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	want := "📖 0 john.json\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestAppDocsRender(t *testing.T) {
	dir := setupRepo(t)
	out, err := runApp(t, "--repo", dir, "docs", "0")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	want := "✍  0 John reads books\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestAppWords(t *testing.T) {
	dir := setupRepo(t)
	out, err := runApp(t, "--repo", dir, "words", "0", "0")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	if !strings.Contains(lines[0], "nsubj") {
		t.Errorf("expected deprel in %q", lines[0])
	}
}

func TestAppWordsOutOfBounds(t *testing.T) {
	dir := setupRepo(t)
	_, err := runApp(t, "--repo", dir, "words", "0", "7")
	if err == nil {
		t.Fatal("expected error, got none")
	}

	if !strings.Contains(err.Error(), "out of bounds") {
		t.Errorf("expected out of bounds error, got %v", err)
	}
}

func TestAppDeps(t *testing.T) {
	dir := setupRepo(t)
	out, err := runApp(t, "--repo", dir, "deps", "0", "0")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	want := "('John', 2, 'nsubj')\n('reads', 0, 'root')\n('books', 2, 'obj')\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestAppEnts(t *testing.T) {
	dir := setupRepo(t)
	out, err := runApp(t, "--repo", dir, "--no-color", "ents", "0")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	for _, part := range []string{"PER", "John"} {
		if !strings.Contains(out, part) {
			t.Errorf("expected output %q to contain %q", out, part)
		}
	}

	if strings.Contains(out, "\033") {
		t.Errorf("expected no color codes, got %q", out)
	}
}

func TestAppFind(t *testing.T) {
	dir := setupRepo(t)
	out, err := runApp(t, "--repo", dir, "--no-color", "find", "PROPN")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	want := "[ 0     0] ✍  John reads books\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestAppFindConjunction(t *testing.T) {
	dir := setupRepo(t)
	out, err := runApp(t, "--repo", dir, "--no-color", "find", "ner=S-PER", "upos=NOUN")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	want := "[ 0     0] ✍  John reads books\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestAppFindNoMatch(t *testing.T) {
	dir := setupRepo(t)
	out, err := runApp(t, "--repo", dir, "--no-color", "find", "upos=ADJ")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestAppFindDocFlag(t *testing.T) {
	dir := setupRepo(t)
	out, err := runApp(t, "--repo", dir, "--no-color", "find", "--doc", "0", "text=books")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	if !strings.Contains(out, "John reads books") {
		t.Errorf("expected match in %q", out)
	}

	if _, err := runApp(t, "--repo", dir, "--no-color", "find", "--doc", "5", "text=books"); err == nil {
		t.Fatal("expected error for unknown doc, got none")
	}
}

func TestAppFindColor(t *testing.T) {
	dir := setupRepo(t)
	out, err := runApp(t, "--repo", dir, "find", "upos=VERB")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	if !strings.Contains(out, "\033") {
		t.Errorf("expected color codes in %q", out)
	}
}

func TestAppFindUnknownField(t *testing.T) {
	dir := setupRepo(t)
	_, err := runApp(t, "--repo", dir, "find", "head=2")
	if err == nil {
		t.Fatal("expected error, got none")
	}

	if !strings.Contains(err.Error(), "unknown expression field") {
		t.Errorf("expected field error, got %v", err)
	}
}

func TestAppGet(t *testing.T) {
	dir := setupRepo(t)
	out, err := runApp(t, "--repo", dir, "get", "--fields", "text,ner", "0")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	want := "John\tS-PER\nreads\tO\nbooks\tO\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestAppGetUnknownField(t *testing.T) {
	dir := setupRepo(t)
	_, err := runApp(t, "--repo", dir, "get", "--fields", "sentiment", "0")
	if err == nil {
		t.Fatal("expected error, got none")
	}
}

func TestAppStat(t *testing.T) {
	dir := setupRepo(t)
	out, err := runApp(t, "--repo", dir, "stat")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	if !strings.Contains(out, "Num docs 1, num sentences 1, num tokens 3, num words 3") {
		t.Errorf("unexpected summary: %q", out)
	}

	if !strings.Contains(out, "PROPN 1") {
		t.Errorf("expected upos distribution in %q", out)
	}

	if !strings.Contains(out, "🏷  PER 1") {
		t.Errorf("expected entity distribution in %q", out)
	}
}

func TestAppImport(t *testing.T) {
	dir := setupRepo(t)
	db := filepath.Join(t.TempDir(), "corpus.db")

	out, err := runApp(t, "import", "--from", dir, "--to", db)
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	if !strings.Contains(out, "Successfully imported 1 docs") {
		t.Errorf("unexpected import output %q", out)
	}

	// read back through the sqlite repository
	out, err = runApp(t, "--repo", db, "docs")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	want := "📖 1 john.json\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}

	out, err = runApp(t, "--repo", db, "docs", "1")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	if out != "✍  0 John reads books\n" {
		t.Errorf("unexpected doc output %q", out)
	}
}

func TestAppRepoMissing(t *testing.T) {
	_, err := runApp(t, "--repo", "/no/such/repo", "docs")
	if err == nil {
		t.Fatal("expected error, got none")
	}

	if !strings.Contains(err.Error(), "repository not found") {
		t.Errorf("expected repository error, got %v", err)
	}
}

func TestAppVersion(t *testing.T) {
	out, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	if !strings.Contains(out, "stanza version") {
		t.Errorf("unexpected version output %q", out)
	}
}
