// Package sources describes the input datasets and the output file.
package sources

import (
	"fmt"
	"os"

	"github.com/hoodstats/go-hoodstats/data"
	"github.com/hoodstats/go-hoodstats/qyaml"
	"github.com/hoodstats/go-hoodstats/root"
)

// A Dataset is one input file.
type Dataset struct {
	Name string
	// Path is the file path, relative to the root unless absolute.
	Path string
	// Origin is the page the file is published on.
	Origin string
}

func (d *Dataset) String() string {
	return fmt.Sprintf("%s[%s]", d.Name, d.Path)
}

// Sources is the set of files a run reads and writes.
type Sources struct {
	Root       root.Root
	Boundaries *Dataset
	Cases      *Dataset
	Census     *Dataset
	Output     string
}

// Parse reads the dataset declarations in y, resolving paths under r.
func Parse(y qyaml.YAML, r root.Root) (*Sources, error) {
	datasets := y.Sub("datasets")
	dataset := func(name string) (*Dataset, error) {
		d := datasets.Sub(name)
		path := d.String("path")
		if path == "" {
			return nil, fmt.Errorf("dataset %s: no path", name)
		}
		return &Dataset{Name: name, Path: path, Origin: d.String("origin")}, nil
	}

	src := &Sources{Root: r, Output: y.String("output")}
	if src.Output == "" {
		return nil, fmt.Errorf("no output path")
	}
	var err error
	if src.Boundaries, err = dataset("boundaries"); err != nil {
		return nil, err
	}
	if src.Cases, err = dataset("cases"); err != nil {
		return nil, err
	}
	if src.Census, err = dataset("census"); err != nil {
		return nil, err
	}
	return src, nil
}

// Default returns the built-in sources resolved under r.
func Default(r root.Root) *Sources {
	src, err := Parse(data.Sources(), r)
	if err != nil {
		panic(err)
	}
	return src
}

// Datasets returns the input datasets.
func (s *Sources) Datasets() []*Dataset {
	return []*Dataset{s.Boundaries, s.Cases, s.Census}
}

// InputPaths returns the resolved paths of all input files.
func (s *Sources) InputPaths() []string {
	paths := make([]string, 0, 3)
	for _, d := range s.Datasets() {
		paths = append(paths, s.Root.Path(d.Path))
	}
	return paths
}

// Missing returns the datasets whose files do not exist.
func (s *Sources) Missing() []*Dataset {
	var missing []*Dataset
	for _, d := range s.Datasets() {
		if _, err := os.Stat(s.Root.Path(d.Path)); err != nil {
			missing = append(missing, d)
		}
	}
	return missing
}

// Override replaces non-empty paths in s.
func (s *Sources) Override(boundaries, cases, census, output string) {
	if boundaries != "" {
		s.Boundaries.Path = boundaries
	}
	if cases != "" {
		s.Cases.Path = cases
	}
	if census != "" {
		s.Census.Path = census
	}
	if output != "" {
		s.Output = output
	}
}
