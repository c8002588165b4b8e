package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/greenhouse"
)

// writeConfig writes a small config pointing the history database into a temp dir
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`simulation:
  days: 2
  seed: 11
  greenhouse_name: Test Nursery
database:
  type: sqlite
  path: %s
logging:
  level: error
  format: text
  output: stderr
`, filepath.Join(dir, "runs.db"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func TestTreeFormatter_PlainTree(t *testing.T) {
	// Arrange
	manager, err := greenhouse.NewManager("Greenhouse")
	require.NoError(t, err)
	cactus, err := catalog.Default().NewPlant("cactus")
	require.NoError(t, err)
	require.NoError(t, manager.AddPlant(cactus))

	// Act
	tree := NewTreeFormatter(false, false).FormatTree(manager.Root())

	// Assert
	assert.Contains(t, tree, "[+] Greenhouse (1 plant)\n")
	assert.Contains(t, tree, "└── [+] succulent (1 plant)\n")
	assert.Contains(t, tree, "    └── [.] cactus [SEEDLING] age 0, water 100%, $8.50 @ INSIDE\n")
}

func TestTreeFormatter_Nil(t *testing.T) {
	assert.Equal(t, "(empty greenhouse)", NewTreeFormatter(false, false).FormatTree(nil))
}

func TestMaskPassword(t *testing.T) {
	assert.Equal(t, "postgres://gh:****@db:5432/gh", maskPassword("postgres://gh:secret@db:5432/gh"))
	assert.Equal(t, "postgres://db:5432/gh", maskPassword("postgres://db:5432/gh"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"LOW", "HIGH"}, splitList(" LOW, ,HIGH "))
	assert.Nil(t, splitList(""))
}

func TestRunCommand_PersistsAndListsHistory(t *testing.T) {
	// Arrange
	cfg := writeConfig(t)

	// Act
	runOutput := execute(t, "--config", cfg, "run", "--persist", "--levels", "LOW,HIGH", "--tree")
	historyOutput := execute(t, "--config", cfg, "history", "list")

	// Assert
	match := regexp.MustCompile(`Saved run (test-nursery-[0-9a-f]{8})`).FindStringSubmatch(runOutput)
	require.Len(t, match, 2, runOutput)
	assert.Contains(t, runOutput, "Revenue:")
	assert.Contains(t, runOutput, "[+] Test Nursery")
	assert.Contains(t, historyOutput, match[1])

	showOutput := execute(t, "--config", cfg, "history", "show", match[1])
	assert.Contains(t, showOutput, "Greenhouse:   Test Nursery")
	assert.Contains(t, showOutput, "HIGH")
}

func TestRunCommand_RejectsUnknownLevel(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", writeConfig(t), "run", "--levels", "FRANTIC"})

	assert.Error(t, cmd.Execute())
}

func TestAdviseCommand(t *testing.T) {
	out := execute(t, "--config", writeConfig(t), "advise", "--sunlight", "high", "--water", "low")

	assert.Contains(t, out, "cactus")
	assert.NotContains(t, out, "peace lily")
}

func TestInventoryCommand_OpeningStock(t *testing.T) {
	out := execute(t, "--config", writeConfig(t), "inventory")

	assert.Contains(t, out, "Inventory after day 0")
	assert.Contains(t, out, "26 plants")
	assert.Contains(t, out, "Greeting Card")
}

func TestCatalogExport_RoundTrips(t *testing.T) {
	cfg := writeConfig(t)
	path := filepath.Join(t.TempDir(), "plants.yaml")

	out := execute(t, "--config", cfg, "catalog", "export", "--out", path)

	assert.Contains(t, out, fmt.Sprintf("Wrote %d plants", catalog.Default().Len()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: cactus")
}
