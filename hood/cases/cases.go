// Package cases counts case records per canonical neighbourhood.
package cases

import (
	"encoding/json"
	"io"

	"github.com/hoodstats/go-hoodstats/hood"
	"github.com/hoodstats/go-hoodstats/hood/name"
	"github.com/hoodstats/go-hoodstats/stringnorm"
	"github.com/pkg/errors"
)

// A Record is one case record. Only Neighbourhood takes part in the join;
// the other fields are carried as read.
type Record struct {
	ID                 int     `json:"_id"`
	OutbreakAssociated string  `json:"Outbreak Associated"`
	AgeGroup           *string `json:"Age Group"`
	Neighbourhood      *string `json:"Neighbourhood Name"`
	FSA                *string `json:"FSA"`
}

// Decode reads a JSON array of case records.
func Decode(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return nil, errors.Wrapf(hood.ErrMalformedRecord, "case records: %s", err)
		}
		return nil, errors.Wrap(err, "case records")
	}
	return records, nil
}

// NameCacheSize bounds the raw neighbourhood spellings an Aggregator
// remembers. A case file repeats a few hundred spellings across every record.
const NameCacheSize = 512

// An Aggregator accumulates case counts per canonical neighbourhood using
// the built-in name table. The zero value is ready to use.
type Aggregator struct {
	// Seen is the number of records added.
	Seen int
	// Skipped is the number of records without a neighbourhood.
	Skipped int

	names  *stringnorm.Cache
	counts hood.Counts
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	a := &Aggregator{}
	a.init()
	return a
}

func (a *Aggregator) init() {
	if a.names == nil {
		a.names = stringnorm.NewCache(stringnorm.Func(name.Normalize), NameCacheSize)
	}
	if a.counts == nil {
		a.counts = hood.Counts{}
	}
}

// Add counts rec against its canonical neighbourhood. Records with no
// neighbourhood are skipped.
func (a *Aggregator) Add(rec *Record) {
	a.init()
	a.Seen++
	if rec.Neighbourhood == nil {
		a.Skipped++
		return
	}
	a.counts[stringnorm.NormalizeNoErr(a.names, *rec.Neighbourhood)]++
}

// NameCacheStats returns the name lookups answered from the cache and the
// lookups that had to normalize a new spelling.
func (a *Aggregator) NameCacheStats() (hits, misses int) {
	if a.names == nil {
		return 0, 0
	}
	return a.names.Stats()
}

// Counts returns a copy of the counts accumulated so far. Only
// neighbourhoods with at least one record appear.
func (a *Aggregator) Counts() hood.Counts {
	res := make(hood.Counts, len(a.counts))
	for k, v := range a.counts {
		res[k] = v
	}
	return res
}

// Aggregate counts records per canonical neighbourhood.
func Aggregate(records []Record) hood.Counts {
	agg := NewAggregator()
	for i := range records {
		agg.Add(&records[i])
	}
	return agg.counts
}
