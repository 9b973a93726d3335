// Package norm drives normalization runs: it loads configuration, lists the
// matching files of an input directory, feeds each file through the engine,
// and persists the rewritten text. Files are processed sequentially; no state
// crosses file boundaries.
package norm

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/adaforge/acase/internal"
	"github.com/adaforge/acase/internal/types"
)

const (
	// DefaultSuffix is the input file extension, matched case-insensitively.
	DefaultSuffix = ".ada"
	// DefaultOutDirName is the subdirectory of the input directory that
	// receives rewritten files when no output directory is given.
	DefaultOutDirName = "_normalized"
)

// Normalizer is the engine surface the runner needs.
type Normalizer interface {
	NormalizeSource(source []byte) ([]byte, error)
	Classify(source []byte) []types.Entry
}

// New builds an engine together with the configuration loaded from
// configurationPath. An empty path means defaults.
func New(configurationPath string) (*internal.Engine, Config, error) {
	config, err := parseConfigurationFile(configurationPath)
	if err != nil {
		return nil, Config{}, err
	}
	return internal.NewEngine(), config, nil
}

// Config is the optional on-disk configuration.
type Config struct {
	Name   string `yaml:"name"`
	Suffix string `yaml:"suffix"`
	OutDir string `yaml:"out_dir"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{Name: "acase", Suffix: DefaultSuffix}
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	config := DefaultConfig()
	if configurationPath == "" {
		return config, nil
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}
	if config.Suffix == "" {
		config.Suffix = DefaultSuffix
	}
	return config, nil
}

// Result describes one processed file.
type Result struct {
	Source    string
	Dest      string
	Original  []byte
	Rewritten []byte
}

// Changed reports whether normalization altered the file.
func (r Result) Changed() bool {
	return !bytes.Equal(r.Original, r.Rewritten)
}

// ListFiles returns the regular files directly inside dir (non-recursive)
// whose extension equals suffix case-insensitively. A missing or
// non-directory path is the run's one hard pre-flight failure.
func ListFiles(dir, suffix string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), suffix) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// ResolveOutDir picks the output directory: explicit flag, then config, then
// the default subdirectory of the input directory.
func ResolveOutDir(dir, flagValue string, config Config) string {
	if flagValue != "" {
		return flagValue
	}
	if config.OutDir != "" {
		return config.OutDir
	}
	return filepath.Join(dir, DefaultOutDirName)
}

// ProcessDir normalizes every matching file of dir into outDir, creating it
// (with parents) when needed. In dry-run mode nothing is written. The run
// stops at the first failing file; there is no partial-result recovery.
func ProcessDir(ctx context.Context, logger *zap.Logger, n Normalizer, dir, outDir, suffix string, dryRun bool) ([]Result, error) {
	files, err := ListFiles(dir, suffix)
	if err != nil {
		return nil, err
	}

	if !dryRun {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating output directory %s: %w", outDir, err)
		}
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(dir),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	results := make([]Result, 0, len(files))
	for _, path := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		dest := filepath.Join(outDir, filepath.Base(path))
		result, err := ProcessFile(n, path, dest, dryRun)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing file", zap.String("file", path), zap.Error(err))
			}
			return nil, err
		}
		if logger != nil {
			logger.Info("Processed file",
				zap.String("source", result.Source),
				zap.String("dest", result.Dest))
		}
		results = append(results, result)
		bar.Add(1)
	}
	fmt.Println()

	return results, nil
}

// ProcessFile normalizes a single file. Unless dryRun is set, the rewritten
// text is written to dest.
func ProcessFile(n Normalizer, path, dest string, dryRun bool) (Result, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("error reading %s: %w", path, err)
	}

	rewritten, err := n.NormalizeSource(original)
	if err != nil {
		return Result{}, fmt.Errorf("error normalizing %s: %w", path, err)
	}

	result := Result{Source: path, Dest: dest, Original: original, Rewritten: rewritten}
	if dryRun {
		return result, nil
	}

	if err := os.WriteFile(dest, rewritten, 0o644); err != nil {
		return Result{}, fmt.Errorf("error writing %s: %w", dest, err)
	}
	return result, nil
}
