package dotexport

import (
	"os"
	"path/filepath"

	"github.com/specialistvlad/ged2dot/internal/config"
)

// ImageFinder reports whether an image file exists.
type ImageFinder interface {
	Exists(path string) bool
}

// osImages looks images up on the local file system.
type osImages struct{}

func (osImages) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Options controls how nodes are labelled.
type Options struct {
	// ImageDir is searched for portraits named "<forename> <surname>[ <birth>].<ext>".
	ImageDir string
	// NameOrder is config.NameOrderLittle or config.NameOrderBig.
	NameOrder string
	// BirthFormat formats the birth year of individuals without a death year.
	BirthFormat string
	// BasePath, when set, makes every image path relative to it.
	BasePath string
	// AssetDir holds placeholder-{m,f,u}.svg and marriage.svg.
	AssetDir string
	// Images defaults to the local file system.
	Images ImageFinder
}

// OptionsFromConfig derives export options from a conversion config. The
// image directory is relative to the directory of the input file, and paths
// are made relative to the output file's directory when RelPath is set.
func OptionsFromConfig(cfg *config.Config, assetDir string) (Options, error) {
	opts := Options{
		ImageDir:    cfg.ImageDir,
		NameOrder:   cfg.NameOrder,
		BirthFormat: cfg.BirthFormat,
		AssetDir:    assetDir,
	}

	if !filepath.IsAbs(opts.ImageDir) {
		input, err := filepath.Abs(cfg.Input)
		if err != nil {
			return Options{}, err
		}
		opts.ImageDir = filepath.Join(filepath.Dir(input), opts.ImageDir)
	}

	if cfg.RelPath && cfg.Output != config.StdStream {
		output, err := filepath.Abs(cfg.Output)
		if err != nil {
			return Options{}, err
		}
		opts.BasePath = filepath.Dir(output)
	}
	return opts, nil
}

func (o Options) images() ImageFinder {
	if o.Images == nil {
		return osImages{}
	}
	return o.Images
}

// relative rewrites path against BasePath when one is set.
func (o Options) relative(path string) string {
	if o.BasePath == "" {
		return path
	}
	rel, err := filepath.Rel(o.BasePath, path)
	if err != nil {
		return path
	}
	return rel
}
