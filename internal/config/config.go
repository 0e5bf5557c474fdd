package config

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/orangehrm/oxd/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "oxd.json"

	// DefaultPort is the default docs server port.
	DefaultPort = 6006

	// DefaultHost is the default docs server host.
	DefaultHost = "localhost"

	// DefaultTitle is the default docs site title.
	DefaultTitle = "OXD Components"

	// DefaultSnapshotDir is the default directory for .snap files.
	DefaultSnapshotDir = "__snapshots__"

	// DefaultRegion is the default AWS region.
	DefaultRegion = "us-east-1"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "oxd"
)

// Config represents the complete oxd.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Docs contains documentation server configuration.
	Docs DocsConfig `json:"docs"`

	// Stories contains story file locations.
	Stories StoriesConfig `json:"stories"`

	// Snapshot contains snapshot harness configuration.
	Snapshot SnapshotConfig `json:"snapshot"`

	// S3 contains object storage configuration for snapshot baselines and
	// published docs.
	S3 S3Config `json:"s3"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics"`

	// Log contains logging configuration.
	Log LogConfig `json:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DocsConfig contains docs server settings.
type DocsConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" validate:"required"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" validate:"gte=1,lte=65535"`

	// Title is shown in the page header.
	Title string `json:"title,omitempty"`

	// Live enables websocket re-rendering on story pages.
	Live bool `json:"live"`
}

// StoriesConfig lists directories holding story YAML files.
type StoriesConfig struct {
	Dirs []string `json:"dirs,omitempty" validate:"dive,required"`
}

// SnapshotConfig contains snapshot harness settings.
type SnapshotConfig struct {
	// Dir is the directory of .snap files.
	Dir string `json:"dir,omitempty" validate:"required"`

	// Store overrides Dir with another location, e.g. "s3://bucket/prefix".
	Store string `json:"store,omitempty" validate:"omitempty,store"`

	// CI fails runs that would write a missing baseline.
	CI bool `json:"ci,omitempty"`
}

// S3Config contains object storage settings.
type S3Config struct {
	Bucket    string `json:"bucket,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Region    string `json:"region,omitempty" validate:"required"`
	Endpoint  string `json:"endpoint,omitempty" validate:"omitempty,url"`
	PathStyle bool   `json:"pathStyle,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled"`
	Namespace string `json:"namespace,omitempty" validate:"required_if=Enabled true"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `json:"level,omitempty" validate:"oneof=debug info warn error"`
	Format string `json:"format,omitempty" validate:"oneof=text json"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Name: "oxd",
		Docs: DocsConfig{
			Host:  DefaultHost,
			Port:  DefaultPort,
			Title: DefaultTitle,
			Live:  true,
		},
		Snapshot: SnapshotConfig{
			Dir: DefaultSnapshotDir,
		},
		S3: S3Config{
			Region: DefaultRegion,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for oxd.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail("No oxd.json found in " + filepath.Dir(path)).
				WithSuggestion("Create oxd.json or run without one to use the defaults")
		}
		return nil, errors.New(errors.CodeConfigParse).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		oe := errors.New(errors.CodeConfigParse).
			WithDetail("Failed to parse oxd.json: " + err.Error()).
			WithSuggestion("Check that oxd.json is valid JSON")
		var syn *json.SyntaxError
		if stderrors.As(err, &syn) {
			line, col := position(data, syn.Offset)
			oe.WithLocation(path, line, col)
		}
		return nil, oe
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// LoadOrDefault loads oxd.json from dir or, when there is none, returns
// the defaults rooted at dir.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if err == nil {
		return cfg, nil
	}
	if errors.CodeOf(err) != errors.CodeConfigNotFound {
		return nil, err
	}
	cfg = New()
	cfg.configPath = filepath.Join(dir, ConfigFileName)
	return cfg, nil
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	line, col = 1, 1
	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CodeConfigWrite).Wrap(err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigWrite).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Docs.Host == "" {
		c.Docs.Host = DefaultHost
	}
	if c.Docs.Port == 0 {
		c.Docs.Port = DefaultPort
	}
	if c.Docs.Title == "" {
		c.Docs.Title = DefaultTitle
	}
	if c.Snapshot.Dir == "" {
		c.Snapshot.Dir = DefaultSnapshotDir
	}
	if c.S3.Region == "" {
		c.S3.Region = DefaultRegion
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("store", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if strings.HasPrefix(s, "s3://") {
				return len(strings.TrimPrefix(s, "s3://")) > 0
			}
			return !strings.Contains(s, "://")
		})
		validate = v
	})
	return validate
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(errors.CodeConfigInvalid).
		WithDetail(strings.Join(msgs, "; ")).
		Wrap(err)
}

// describe renders a field error as "docs.port must be <= 65535".
func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required", "required_if":
		return field + " is required"
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return field + " must be a URL"
	case "store":
		return field + ` must be a directory or "s3://bucket/prefix"`
	default:
		return fmt.Sprintf("%s failed %q", field, fe.Tag())
	}
}

// envPrefix prefixes every environment override.
const envPrefix = "OXD_"

// ApplyEnv overrides fields from the process environment.
func (c *Config) ApplyEnv() error {
	return c.ApplyEnvFunc(os.LookupEnv)
}

// ApplyEnvFunc overrides fields from lookup, which has the signature of
// os.LookupEnv.
func (c *Config) ApplyEnvFunc(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok {
			*dst = v
		}
	}
	var firstErr error
	fail := func(key, v string, err error) {
		if firstErr == nil {
			firstErr = errors.New(errors.CodeConfigEnv).
				WithDetailf("%s%s=%q: %v", envPrefix, key, v, err)
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(envPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				fail(key, v, err)
				return
			}
			*dst = n
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(envPrefix + key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				fail(key, v, err)
				return
			}
			*dst = b
		}
	}
	list := func(key string, dst *[]string) {
		if v, ok := lookup(envPrefix + key); ok {
			var out []string
			for _, p := range strings.Split(v, ",") {
				if p = strings.TrimSpace(p); p != "" {
					out = append(out, p)
				}
			}
			*dst = out
		}
	}

	str("DOCS_HOST", &c.Docs.Host)
	integer("DOCS_PORT", &c.Docs.Port)
	str("DOCS_TITLE", &c.Docs.Title)
	boolean("DOCS_LIVE", &c.Docs.Live)
	list("STORIES_DIRS", &c.Stories.Dirs)
	str("SNAPSHOT_DIR", &c.Snapshot.Dir)
	str("SNAPSHOT_STORE", &c.Snapshot.Store)
	boolean("SNAPSHOT_CI", &c.Snapshot.CI)
	str("S3_BUCKET", &c.S3.Bucket)
	str("S3_PREFIX", &c.S3.Prefix)
	str("S3_REGION", &c.S3.Region)
	str("S3_ENDPOINT", &c.S3.Endpoint)
	boolean("S3_PATH_STYLE", &c.S3.PathStyle)
	boolean("METRICS_ENABLED", &c.Metrics.Enabled)
	str("METRICS_NAMESPACE", &c.Metrics.Namespace)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)

	return firstErr
}

// DocsAddress returns the listen address of the docs server.
func (c *Config) DocsAddress() string {
	return c.Docs.Host + ":" + strconv.Itoa(c.Docs.Port)
}

// DocsURL returns the full URL of the docs server.
func (c *Config) DocsURL() string {
	return "http://" + c.DocsAddress()
}

// resolve makes path absolute relative to the config directory.
func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// SnapshotPath returns the absolute path to the snapshot directory.
func (c *Config) SnapshotPath() string {
	return c.resolve(c.Snapshot.Dir)
}

// SnapshotStore returns the configured snapshot location: Store when set,
// otherwise the snapshot directory.
func (c *Config) SnapshotStore() string {
	if c.Snapshot.Store != "" {
		return c.Snapshot.Store
	}
	return c.SnapshotPath()
}

// StoryPaths returns the absolute story directories.
func (c *Config) StoryPaths() []string {
	out := make([]string, len(c.Stories.Dirs))
	for i, d := range c.Stories.Dirs {
		out[i] = c.resolve(d)
	}
	return out
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing oxd.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.CodeConfigNotFound).
				WithDetail("No oxd.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the nearest oxd.json at or
// above the working directory, falling back to defaults rooted at the
// working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return LoadOrDefault(wd)
	}

	return Load(root)
}
