package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/latinga"
	"github.com/npillmayer/latinga/internal/dictfmt"
	"github.com/npillmayer/latinga/internal/tracing"
	"github.com/npillmayer/latinga/script"
	"github.com/npillmayer/latinga/shield"
	"github.com/npillmayer/latinga/uzbek"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// options collects command line settings.
type options struct {
	current    bool
	overwrite  bool
	glob       string
	suffix     string
	rules      string
	exceptions string
	suffixes   string
	shields    []string
	shieldFile string
	presets    []string
	noDefaults bool
	profile    string
	verbose    bool
	check      int
	json       bool
}

// Profile is a bundle of settings read from a YAML file. Flags given on
// the command line take precedence over a profile.
type Profile struct {
	Direction  string   `yaml:"direction"`
	Suffix     string   `yaml:"suffix"`
	Rules      string   `yaml:"rules"`
	Exceptions string   `yaml:"exceptions"`
	Suffixes   string   `yaml:"suffixes"`
	Shields    []string `yaml:"shields"`
	ShieldFile string   `yaml:"shield_file"`
	Presets    []string `yaml:"presets"`
	NoDefaults bool     `yaml:"no_defaults"`
}

// LoadProfile reads a profile from a YAML file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile %q: %w", path, err)
	}
	return &p, nil
}

// complete merges the profile, if any, into the options.
func (o *options) complete(cmd *cobra.Command) error {
	if o.profile == "" {
		return nil
	}
	p, err := LoadProfile(o.profile)
	if err != nil {
		return err
	}
	return o.apply(p, cmd.Flags().Changed)
}

// apply sets options from p, unless changed reports the corresponding flag
// as set on the command line.
func (o *options) apply(p *Profile, changed func(string) bool) error {
	if p.Direction != "" && !changed("current") {
		dir, ok := script.ParseDirection(p.Direction)
		if !ok {
			return fmt.Errorf("profile: unknown direction %q", p.Direction)
		}
		o.current = dir == script.Current
	}
	setString := func(flag string, dst *string, value string) {
		if value != "" && !changed(flag) {
			*dst = value
		}
	}
	setString("suffix", &o.suffix, p.Suffix)
	setString("rules", &o.rules, p.Rules)
	setString("exceptions", &o.exceptions, p.Exceptions)
	setString("suffixes", &o.suffixes, p.Suffixes)
	setString("shield-file", &o.shieldFile, p.ShieldFile)
	if len(p.Shields) > 0 && !changed("shield") {
		o.shields = p.Shields
	}
	if len(p.Presets) > 0 && !changed("preset") {
		o.presets = p.Presets
	}
	if p.NoDefaults && !changed("no-defaults") {
		o.noDefaults = true
	}
	return nil
}

func (o *options) direction() latinga.Direction {
	if o.current {
		return latinga.Current
	}
	return latinga.Legacy
}

// outputSuffix is the sanitized suffix for output file names.
func (o *options) outputSuffix() string {
	s := o.suffix
	if s == "" {
		if o.current {
			s = "-joriyga"
		} else {
			s = "-kelgusiga"
		}
	}
	return sanitizeSuffix(s)
}

// tables holds the serialized dictionaries engines are set up from. Every
// worker creates an engine of its own from them.
type tables struct {
	dir        latinga.Direction
	presets    shield.Preset
	rules      string
	exceptions string
	suffixes   string
	shields    string
}

// tables reads the dictionaries named by the options and combines them
// with the built-in ones.
func (o *options) tables() (*tables, error) {
	tb := &tables{dir: o.direction()}
	if o.noDefaults {
		tb.presets = shield.Marker
	} else {
		tb.presets = uzbek.DefaultPresets
	}
	for _, name := range o.presets {
		p, ok := shield.ParsePreset(name)
		if !ok {
			return nil, fmt.Errorf("unknown shield preset %q", name)
		}
		tb.presets |= p
	}
	rules, err := resolveInput(o.rules)
	if err != nil {
		return nil, err
	}
	exceptions, err := resolveInput(o.exceptions)
	if err != nil {
		return nil, err
	}
	suffixes, err := resolveInput(o.suffixes)
	if err != nil {
		return nil, err
	}
	shields := strings.Join(o.shields, "\n")
	if o.shieldFile != "" {
		data, err := os.ReadFile(o.shieldFile)
		if err != nil {
			return nil, fmt.Errorf("shield file: %w", err)
		}
		shields = joinTables(shields, strings.TrimPrefix(string(data), dictfmt.BOM))
	}
	if o.noDefaults {
		tb.rules, tb.exceptions, tb.suffixes, tb.shields = rules, exceptions, suffixes, shields
	} else {
		// user rules first: they win ties by load order
		tb.rules = joinTables(rules, uzbek.Rules)
		// user exceptions last: later entries win
		tb.exceptions = joinTables(uzbek.Exceptions, exceptions)
		tb.suffixes = joinTables(uzbek.Suffixes, suffixes)
		tb.shields = joinTables(uzbek.Shields, shields)
	}
	// compile once to report errors before any work is done
	probe, err := tb.newEngine()
	if err != nil {
		return nil, err
	}
	tracing.Infof("%d rules, %d exceptions, %d shield patterns, presets %s",
		probe.Rules().Len(), probe.Exceptions().Len(), probe.Shields().Patterns().Len(),
		probe.Shields().Presets())
	probe.Dispose()
	return tb, nil
}

// newEngine creates an engine set up with the tables.
func (tb *tables) newEngine() (*latinga.Engine, error) {
	e := latinga.New(tb.dir, latinga.WithShieldPresets(tb.presets))
	if stats := e.LoadSubstitutionRules(tb.rules); stats.Skipped > 0 {
		tracing.Infof("%d malformed rules skipped", stats.Skipped)
	}
	if stats := e.LoadExceptions(tb.exceptions); stats.Skipped > 0 {
		tracing.Infof("%d malformed exceptions skipped", stats.Skipped)
	}
	e.LoadSuffixes(tb.suffixes)
	if err := e.LoadShieldPatterns(tb.shields); err != nil {
		return nil, err
	}
	return e, nil
}

// resolveInput returns the content of the file named by arg, or arg itself
// if it does not name a regular file.
func resolveInput(arg string) (string, error) {
	if arg == "" {
		return "", nil
	}
	info, err := os.Stat(arg)
	if err != nil || !info.Mode().IsRegular() {
		return arg, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(string(data), dictfmt.BOM), nil
}

// joinTables concatenates serialized tables, one after the other.
func joinTables(tables ...string) string {
	var parts []string
	for _, t := range tables {
		if t != "" {
			parts = append(parts, strings.TrimSuffix(t, "\n"))
		}
	}
	return strings.Join(parts, "\n")
}
