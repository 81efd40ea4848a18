package adapter

import (
	"errors"
	"path/filepath"
	"testing"

	m "github.com/kmizu/JavaSee/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, content string) (*m.Config, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "javasee.yml")
	writeTestFile(t, path, content)

	return NewLocalConfigAdapter(NewLocalSourceFSAdapter()).Load(m.Path(path))
}

func requireConfigError(t *testing.T, err error, class ConfigErrorClass) *ConfigError {
	t.Helper()

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr), "expected *ConfigError, got %v", err)
	assert.Equal(t, class, cfgErr.Class)

	return cfgErr
}

func TestLocalConfigAdapter_Load(t *testing.T) {
	cfg, err := loadConfig(t, `
rules:
  - id: a.one
    message: first
    pattern: _.println("debug")
    tags: [debug]
  - id: a.two
    message: second
    pattern:
      - _ == null
      - null == _
    justification: x == null
    before: ['foo == null']
    after:
      - foo != null
preprocessor:
  .javax: cat
check:
  - path: /src/test
    rules: [a.one]
`)
	require.NoError(t, err)

	require.Len(t, cfg.Rules, 2)
	assert.Equal(t, m.RuleSpec{
		ID:       "a.one",
		Message:  "first",
		Patterns: []string{`_.println("debug")`},
		Tags:     []string{"debug"},
	}, cfg.Rules[0])

	assert.Equal(t, []string{"_ == null", "null == _"}, cfg.Rules[1].Patterns)
	assert.Equal(t, []string{"x == null"}, cfg.Rules[1].Justifications)
	assert.Equal(t, []string{"foo == null"}, cfg.Rules[1].Before)
	assert.Equal(t, []string{"foo != null"}, cfg.Rules[1].After)

	assert.Equal(t, map[string]string{".javax": "cat"}, cfg.Preprocessor)
	assert.Equal(t, []m.CheckSpec{{Path: "/src/test", Rules: []string{"a.one"}}}, cfg.Checks)
}

func TestLocalConfigAdapter_Load_Imports(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "shared.yml"), "rules:\n  - id: shared\n    message: s\n    pattern: foo()\n")
	writeTestFile(t, filepath.Join(dir, "javasee.yml"), "rules:\n  - id: own\n    message: o\n    pattern: bar()\nimport: [shared.yml]\n")

	cfg, err := NewLocalConfigAdapter(NewLocalSourceFSAdapter()).Load(m.Path(filepath.Join(dir, "javasee.yml")))
	require.NoError(t, err)

	require.Len(t, cfg.Rules, 2)
	assert.Equal(t, "own", cfg.Rules[0].ID)
	assert.Equal(t, "shared", cfg.Rules[1].ID)
}

func TestLocalConfigAdapter_Load_ImportCycle(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "a.yml"), "rules: []\nimport: [b.yml]\n")
	writeTestFile(t, filepath.Join(dir, "b.yml"), "rules: []\nimport: [a.yml]\n")

	_, err := NewLocalConfigAdapter(NewLocalSourceFSAdapter()).Load(m.Path(filepath.Join(dir, "a.yml")))
	requireConfigError(t, err, ConfigUnknown)
}

func TestLocalConfigAdapter_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		class   ConfigErrorClass
	}{
		{name: "invalid yaml", content: "rules: [\n", class: ConfigSyntax},
		{name: "tab indentation", content: "rules:\n\t- id: x\n", class: ConfigSyntax},
		{name: "empty document", content: "", class: ConfigSchema},
		{name: "rules not a list", content: "rules: 1\n", class: ConfigSchema},
		{name: "missing pattern", content: "rules:\n  - id: x\n    message: m\n", class: ConfigSchema},
		{name: "unknown key", content: "rules: []\nextra: true\n", class: ConfigSchema},
		{name: "empty pattern list", content: "rules:\n  - id: x\n    message: m\n    pattern: []\n", class: ConfigSchema},
		{name: "import not a list", content: "rules: []\nimport: foo\n", class: ConfigSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(t, tt.content)
			requireConfigError(t, err, tt.class)
		})
	}
}

func TestLocalConfigAdapter_Load_SchemaDetails(t *testing.T) {
	_, err := loadConfig(t, "rules:\n  - id: x\n    message: m\n")

	cfgErr := requireConfigError(t, err, ConfigSchema)
	require.NotEmpty(t, cfgErr.Details)
	assert.Contains(t, cfgErr.Error(), "pattern")
}

func TestLocalConfigAdapter_Load_NotFound(t *testing.T) {
	adapter := NewLocalConfigAdapter(NewLocalSourceFSAdapter())

	_, err := adapter.Load(m.Path(filepath.Join(t.TempDir(), "missing.yml")))
	requireConfigError(t, err, ConfigNotFound)
}

func TestLocalConfigAdapter_Load_Directory(t *testing.T) {
	adapter := NewLocalConfigAdapter(NewLocalSourceFSAdapter())

	_, err := adapter.Load(m.Path(t.TempDir()))
	requireConfigError(t, err, ConfigUnknown)
}

func TestLocalConfigAdapter_Template(t *testing.T) {
	adapter := NewLocalConfigAdapter(NewLocalSourceFSAdapter())

	cfg, err := adapter.Decode("template.yml", adapter.Template())
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Rules)

	for _, r := range cfg.Rules {
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Patterns)
	}
}

func TestLocalConfigAdapter_Example(t *testing.T) {
	adapter := NewLocalConfigAdapter(NewLocalSourceFSAdapter())

	cfg, err := adapter.Load(m.Path(filepath.Join(examplePath(t, "basic"), "javasee.yml")))
	require.NoError(t, err)

	ids := make([]string, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		ids = append(ids, r.ID)
	}

	assert.Equal(t, []string{"com.example.debug_print", "com.example.null_check", "com.example.equals_null"}, ids)
	assert.Equal(t, "Remove debug print\nPrinting \"debug\" is left over from local debugging.\n", cfg.Rules[0].Message)
}
