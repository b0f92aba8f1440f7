// Package action implements the hoodstats commands.
package action

import (
	"io"
	"log"

	"github.com/hoodstats/go-hoodstats/flock"
	"github.com/hoodstats/go-hoodstats/hood"
	"github.com/hoodstats/go-hoodstats/hood/boundary"
	"github.com/hoodstats/go-hoodstats/hood/cases"
	"github.com/hoodstats/go-hoodstats/hood/census"
	"github.com/hoodstats/go-hoodstats/sources"
	"github.com/pkg/errors"
)

// LockFile is the lock taken by commands that write output.
const LockFile = ".hoodstats.lock"

// Inputs are the three datasets, fully loaded.
type Inputs struct {
	Boundaries *boundary.FeatureCollection
	Cases      []cases.Record
	Census     []census.Row
}

// LoadInputs reads all input datasets of src.
func LoadInputs(src *sources.Sources) (*Inputs, error) {
	in := &Inputs{}
	var err error
	if in.Boundaries, err = loadBoundaries(src); err != nil {
		return nil, err
	}
	err = decodeDataset(src, src.Cases, func(r io.Reader) (err error) {
		in.Cases, err = cases.Decode(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = decodeDataset(src, src.Census, func(r io.Reader) (err error) {
		in.Census, err = census.Decode(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d boundaries, %d case records, %d census rows",
		len(in.Boundaries.Features), len(in.Cases), len(in.Census))
	return in, nil
}

func loadBoundaries(src *sources.Sources) (fc *boundary.FeatureCollection, err error) {
	err = decodeDataset(src, src.Boundaries, func(r io.Reader) error {
		fc, err = boundary.Decode(r)
		return err
	})
	return fc, err
}

func decodeDataset(src *sources.Sources, d *sources.Dataset, decode func(io.Reader) error) error {
	f, err := src.Root.Open(d.Path)
	if err != nil {
		return errors.Wrap(err, d.String())
	}
	defer f.Close()
	return errors.Wrap(decode(f), d.String())
}

// Enricher aggregates the case and census inputs into an Enricher.
func (in *Inputs) Enricher() (*boundary.Enricher, error) {
	agg := cases.NewAggregator()
	for i := range in.Cases {
		agg.Add(&in.Cases[i])
	}
	hits, misses := agg.NameCacheStats()
	log.Printf("counted %d case records in %d neighbourhoods (%d without neighbourhood, %d spellings, %d name cache hits)",
		agg.Seen-agg.Skipped, len(agg.Counts()), agg.Skipped, misses, hits)

	populations, err := census.BuildPopulationTable(in.Census)
	if err != nil {
		return nil, err
	}
	return boundary.New(agg.Counts(), populations), nil
}

// Enrich joins case counts and populations onto the boundaries of src and
// writes the enriched collection to the output path. Nothing is written
// unless every boundary joins.
func Enrich(src *sources.Sources) error {
	lock := flock.New(src.Root.Path(LockFile))
	if err := lock.Lock(false); err != nil {
		return err
	}
	defer lock.Unlock()
	return enrich(src)
}

func enrich(src *sources.Sources) error {
	in, err := LoadInputs(src)
	if err != nil {
		return err
	}
	enricher, err := in.Enricher()
	if err != nil {
		return err
	}
	enriched, err := enricher.Enrich(in.Boundaries.Features)
	if err != nil {
		return err
	}
	out := in.Boundaries.WithFeatures(enriched)
	err = src.Root.WriteFile(src.Output, func(w io.Writer) error {
		return boundary.Encode(w, out)
	})
	if err != nil {
		return err
	}
	log.Printf("wrote %d enriched boundaries to %s", len(enriched), src.Root.Path(src.Output))
	return nil
}

// Joined loads the inputs of src and returns the joined statistics.
func Joined(src *sources.Sources) ([]hood.Stat, error) {
	in, err := LoadInputs(src)
	if err != nil {
		return nil, err
	}
	enricher, err := in.Enricher()
	if err != nil {
		return nil, err
	}
	return enricher.Joined(in.Boundaries.Features)
}
