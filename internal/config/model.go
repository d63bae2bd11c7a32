package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/ged2dot/internal/genealogy"
)

// Option keys.
const (
	KeyInput       = "input"
	KeyOutput      = "output"
	KeyRootFamily  = "rootfamily"
	KeyFamilyDepth = "familydepth"
	KeyImageDir    = "imagedir"
	KeyNameOrder   = "nameorder"
	KeyDirection   = "direction"
	KeyBirthFormat = "birthformat"
	KeyRelPath     = "relpath"
	KeyFormat      = "format"
	KeyInline      = "inline"
	KeyAssetDir    = "assetdir"
)

// Keys lists every option key in a stable order.
var Keys = []string{
	KeyInput, KeyOutput, KeyRootFamily, KeyFamilyDepth, KeyImageDir, KeyNameOrder,
	KeyDirection, KeyBirthFormat, KeyRelPath, KeyFormat, KeyInline, KeyAssetDir,
}

// StdStream is the input/output path meaning stdin or stdout.
const StdStream = "-"

// Name orders for individual labels.
const (
	NameOrderLittle = "little" // given name first
	NameOrderBig    = "big"    // family name first
)

// Output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Config holds the options of one conversion.
type Config struct {
	Input      string
	Output     string
	RootFamily string
	// FamilyDepth is the number of generations drawn around the root family.
	FamilyDepth int
	// ImageDir is searched for portraits, relative to the input file's directory.
	ImageDir  string
	NameOrder string
	Direction genealogy.Direction
	// BirthFormat formats the birth year of living individuals; "{}" is the year.
	BirthFormat string
	// RelPath makes image paths relative to the output file's directory.
	RelPath bool
	// Format is the output format. Empty means inferred from Output.
	Format string
	// Inline embeds linked images into SVG output.
	Inline bool
	// AssetDir holds the placeholder and marriage images. Empty means the
	// per-user cache directory.
	AssetDir string
}

// Default returns the options used when nothing else is configured.
func Default() *Config {
	return &Config{
		Input:      StdStream,
		Output:     StdStream,
		RootFamily: "F1",
		// Could be 0, but a default that explodes on large inputs is not helpful.
		FamilyDepth: 3,
		ImageDir:    "images",
		NameOrder:   NameOrderLittle,
		Direction:   genealogy.DirectionBoth,
		BirthFormat: "{}-",
	}
}

// Set applies one option given in its string form.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case KeyInput:
		c.Input = value
	case KeyOutput:
		c.Output = value
	case KeyRootFamily:
		c.RootFamily = value
	case KeyFamilyDepth:
		depth, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid %s %q: must be an integer", KeyFamilyDepth, value)
		}
		c.FamilyDepth = depth
	case KeyImageDir:
		c.ImageDir = value
	case KeyNameOrder:
		c.NameOrder = value
	case KeyDirection:
		direction, err := genealogy.ParseDirection(value)
		if err != nil {
			return err
		}
		c.Direction = direction
	case KeyBirthFormat:
		c.BirthFormat = value
	case KeyRelPath:
		b, err := parseBool(KeyRelPath, value)
		if err != nil {
			return err
		}
		c.RelPath = b
	case KeyFormat:
		c.Format = strings.ToLower(value)
	case KeyInline:
		b, err := parseBool(KeyInline, value)
		if err != nil {
			return err
		}
		c.Inline = b
	case KeyAssetDir:
		c.AssetDir = value
	default:
		return fmt.Errorf("unknown option %q", key)
	}
	return nil
}

// Apply sets every option of m. Keys are applied in the order of Keys so that
// errors are reported deterministically.
func (c *Config) Apply(m map[string]string) error {
	for key := range m {
		if !slices.Contains(Keys, strings.ToLower(key)) {
			return fmt.Errorf("unknown option %q", key)
		}
	}
	for _, key := range Keys {
		for k, v := range m {
			if strings.ToLower(k) != key {
				continue
			}
			if err := c.Set(key, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Map returns the flat string form of the options.
func (c *Config) Map() map[string]string {
	return map[string]string{
		KeyInput:       c.Input,
		KeyOutput:      c.Output,
		KeyRootFamily:  c.RootFamily,
		KeyFamilyDepth: strconv.Itoa(c.FamilyDepth),
		KeyImageDir:    c.ImageDir,
		KeyNameOrder:   c.NameOrder,
		KeyDirection:   string(c.Direction),
		KeyBirthFormat: c.BirthFormat,
		KeyRelPath:     strconv.FormatBool(c.RelPath),
		KeyFormat:      c.OutputFormat(),
		KeyInline:      strconv.FormatBool(c.Inline),
		KeyAssetDir:    c.AssetDir,
	}
}

// OutputFormat returns Format, or the format implied by the output file
// extension when Format is empty.
func (c *Config) OutputFormat() string {
	if c.Format != "" {
		return c.Format
	}
	switch strings.ToLower(filepath.Ext(c.Output)) {
	case ".svg":
		return FormatSVG
	case ".png":
		return FormatPNG
	default:
		return FormatDOT
	}
}

// Validate checks option values that Set cannot check on its own.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%s must not be empty", KeyInput)
	}
	if c.Output == "" {
		return fmt.Errorf("%s must not be empty", KeyOutput)
	}
	if c.RootFamily == "" {
		return fmt.Errorf("%s must not be empty", KeyRootFamily)
	}
	if c.FamilyDepth < 0 {
		return fmt.Errorf("invalid %s %d: must not be negative", KeyFamilyDepth, c.FamilyDepth)
	}
	if _, err := genealogy.ParseDirection(string(c.Direction)); err != nil {
		return err
	}
	switch c.NameOrder {
	case NameOrderLittle, NameOrderBig:
	default:
		return fmt.Errorf("invalid %s %q: must be %q or %q", KeyNameOrder, c.NameOrder, NameOrderLittle, NameOrderBig)
	}
	switch c.OutputFormat() {
	case FormatDOT, FormatSVG, FormatPNG:
	default:
		return fmt.Errorf("invalid %s %q: must be %q, %q or %q", KeyFormat, c.Format, FormatDOT, FormatSVG, FormatPNG)
	}
	if c.Inline && c.OutputFormat() != FormatSVG {
		return fmt.Errorf("%s requires %s output", KeyInline, FormatSVG)
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: must be true or false", key, value)
	}
	return b, nil
}
