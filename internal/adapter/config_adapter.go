package adapter

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	m "github.com/kmizu/JavaSee/internal/model"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var configSchema []byte

//go:embed template.yml
var configTemplate []byte

// ConfigErrorClass tells apart the ways loading a configuration can fail.
type ConfigErrorClass int

const (
	// ConfigNotFound means the file does not exist.
	ConfigNotFound ConfigErrorClass = iota + 1
	// ConfigSyntax means the file is not valid YAML.
	ConfigSyntax
	// ConfigSchema means the YAML does not have the expected shape.
	ConfigSchema
	// ConfigUnknown covers every other failure.
	ConfigUnknown
)

func (c ConfigErrorClass) String() string {
	switch c {
	case ConfigNotFound:
		return "not found"
	case ConfigSyntax:
		return "syntax error"
	case ConfigSchema:
		return "schema error"
	case ConfigUnknown:
		return "unknown error"
	default:
		return fmt.Sprintf("ConfigErrorClass(%d)", int(c))
	}
}

// ConfigError is returned by ConfigAdapter.Load.
type ConfigError struct {
	Path    m.Path
	Class   ConfigErrorClass
	Details []string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s: config %s", e.Path, e.Class)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	if len(e.Details) > 0 {
		msg += "\n  " + strings.Join(e.Details, "\n  ")
	}

	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ConfigAdapter loads javasee.yml files.
type ConfigAdapter interface {
	// Load reads, validates and decodes the configuration at path, following
	// its imports. Failures are *ConfigError.
	Load(path m.Path) (*m.Config, error)

	// Template returns the configuration written by `javasee init`.
	Template() []byte
}

// LocalConfigAdapter reads configurations through a SourceFSAdapter.
type LocalConfigAdapter struct {
	fs     SourceFSAdapter
	schema gojsonschema.JSONLoader
}

// NewLocalConfigAdapter constructs a LocalConfigAdapter.
func NewLocalConfigAdapter(fs SourceFSAdapter) *LocalConfigAdapter {
	return &LocalConfigAdapter{
		fs:     fs,
		schema: gojsonschema.NewBytesLoader(configSchema),
	}
}

// Template returns the bundled starter configuration.
func (a *LocalConfigAdapter) Template() []byte {
	out := make([]byte, len(configTemplate))
	copy(out, configTemplate)

	return out
}

// Load decodes the configuration at path and appends the rules of every
// imported file after its own.
func (a *LocalConfigAdapter) Load(path m.Path) (*m.Config, error) {
	return a.load(path, map[string]struct{}{})
}

func (a *LocalConfigAdapter) load(path m.Path, visiting map[string]struct{}) (*m.Config, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return nil, &ConfigError{Path: path, Class: ConfigUnknown, Err: err}
	}

	if _, cyclic := visiting[abs]; cyclic {
		return nil, &ConfigError{Path: path, Class: ConfigUnknown, Err: errors.New("import cycle")}
	}

	visiting[abs] = struct{}{}
	defer delete(visiting, abs)

	content, err := a.fs.ReadFile(path)
	if err != nil {
		class := ConfigUnknown
		if errors.Is(err, fs.ErrNotExist) {
			class = ConfigNotFound
		}

		return nil, &ConfigError{Path: path, Class: class, Err: err}
	}

	cfg, err := a.Decode(path, content)
	if err != nil {
		return nil, err
	}

	for _, imp := range cfg.Imports {
		target := imp
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(string(path)), target)
		}

		imported, err := a.load(m.Path(target), visiting)
		if err != nil {
			return nil, err
		}

		cfg.Rules = append(cfg.Rules, imported.Rules...)
	}

	return cfg, nil
}

type stringList []string

func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind { //nolint:exhaustive
	case yaml.ScalarNode:
		*l = stringList{value.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}

		*l = items

		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", value.Line)
	}
}

type rawRule struct {
	ID            string     `yaml:"id"`
	Message       string     `yaml:"message"`
	Pattern       stringList `yaml:"pattern"`
	Justification stringList `yaml:"justification"`
	Tags          []string   `yaml:"tags"`
	Before        stringList `yaml:"before"`
	After         stringList `yaml:"after"`
}

type rawCheck struct {
	Path  string   `yaml:"path"`
	Rules []string `yaml:"rules"`
}

type rawConfig struct {
	Rules        []rawRule         `yaml:"rules"`
	Import       []string          `yaml:"import"`
	Preprocessor map[string]string `yaml:"preprocessor"`
	Check        []rawCheck        `yaml:"check"`
}

// Decode validates and decodes configuration content. Imports are not
// followed.
func (a *LocalConfigAdapter) Decode(path m.Path, content []byte) (*m.Config, error) {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, &ConfigError{Path: path, Class: ConfigSyntax, Err: err}
	}

	result, err := gojsonschema.Validate(a.schema, gojsonschema.NewGoLoader(jsonCompatible(doc)))
	if err != nil {
		return nil, &ConfigError{Path: path, Class: ConfigUnknown, Err: fmt.Errorf("validate: %w", err)}
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, verr := range result.Errors() {
			details = append(details, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
		}

		return nil, &ConfigError{
			Path:    path,
			Class:   ConfigSchema,
			Err:     errors.New("does not match the configuration schema"),
			Details: details,
		}
	}

	var raw rawConfig
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, &ConfigError{Path: path, Class: ConfigSchema, Err: err}
	}

	cfg := &m.Config{
		Imports:      raw.Import,
		Preprocessor: raw.Preprocessor,
		Rules:        make([]m.RuleSpec, 0, len(raw.Rules)),
	}

	for _, r := range raw.Rules {
		cfg.Rules = append(cfg.Rules, m.RuleSpec{
			ID:             r.ID,
			Message:        r.Message,
			Patterns:       r.Pattern,
			Justifications: r.Justification,
			Tags:           r.Tags,
			Before:         r.Before,
			After:          r.After,
		})
	}

	for _, c := range raw.Check {
		cfg.Checks = append(cfg.Checks, m.CheckSpec{Path: c.Path, Rules: c.Rules})
	}

	return cfg, nil
}

// jsonCompatible rewrites maps with non-string keys, which yaml.v3 produces
// for some documents, so the schema loader can marshal them.
func jsonCompatible(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = jsonCompatible(val)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = jsonCompatible(val)
		}

		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = jsonCompatible(val)
		}

		return out
	default:
		return v
	}
}
