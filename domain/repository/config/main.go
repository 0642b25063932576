package config

type Config struct {
	SourceDir   string    `yaml:"source-dir"`
	TestDir     string    `yaml:"test-dir"`
	ModulesDir  string    `yaml:"modules-dir"`
	TestModules []string  `yaml:"test-modules"`
	Suffixes    []string  `yaml:"suffixes"`
	Output      Output    `yaml:"output"`
	Variables   Variables `yaml:"variables"`
}

type Output struct {
	Sources string `yaml:"sources"`
	Tests   string `yaml:"tests"`
}

type Variables struct {
	Sources string `yaml:"sources"`
	Tests   string `yaml:"tests"`
}

// Default returns the configuration for the standard project layout. It is
// also the effective configuration when no srclist.yml exists.
func Default() *Config {
	return &Config{
		SourceDir:   "SOURCE",
		TestDir:     "TESTS",
		ModulesDir:  "SUBMODULES",
		TestModules: []string{"RD"},
		Suffixes:    []string{".cpp", ".h"},
		Output: Output{
			Sources: "CMAKE/SOURCES.cmake",
			Tests:   "CMAKE/TESTS.cmake",
		},
		Variables: Variables{
			Sources: "SOURCES",
			Tests:   "TEST_SOURCES",
		},
	}
}

// ApplyDefaults fills every field left out of the config file with its
// default. List fields distinguish omitted (nil) from deliberately empty, so
// `test-modules: []` disables module test scanning rather than restoring the
// default.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.SourceDir == "" {
		c.SourceDir = d.SourceDir
	}
	if c.TestDir == "" {
		c.TestDir = d.TestDir
	}
	if c.ModulesDir == "" {
		c.ModulesDir = d.ModulesDir
	}
	if c.TestModules == nil {
		c.TestModules = d.TestModules
	}
	if c.Suffixes == nil {
		c.Suffixes = d.Suffixes
	}
	if c.Output.Sources == "" {
		c.Output.Sources = d.Output.Sources
	}
	if c.Output.Tests == "" {
		c.Output.Tests = d.Output.Tests
	}
	if c.Variables.Sources == "" {
		c.Variables.Sources = d.Variables.Sources
	}
	if c.Variables.Tests == "" {
		c.Variables.Tests = d.Variables.Tests
	}
}

type Repository interface {
	Read(path string) (*Config, error)
	Write(path string, cfg *Config) error
}
