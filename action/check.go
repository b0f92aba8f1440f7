package action

import (
	"fmt"
	"io"
	"sort"

	"github.com/hoodstats/go-hoodstats/hood/name"
	"github.com/hoodstats/go-hoodstats/sources"
	"github.com/pkg/errors"
)

// ErrCheckFailed is returned by Check when it reports any problem.
var ErrCheckFailed = errors.New("check failed")

// Check loads the inputs of src and reports to w every name that does not
// normalize into the registry and every boundary that would not join.
func Check(src *sources.Sources, w io.Writer) error {
	in, err := LoadInputs(src)
	if err != nil {
		return err
	}
	enricher, err := in.Enricher()
	if err != nil {
		return err
	}

	problems := 0
	report := func(dataset string, names map[string]int) {
		for _, n := range sortedKeys(names) {
			if !name.IsCanonical(n) {
				fmt.Fprintf(w, "%s: unknown neighbourhood %#v\n", dataset, n)
				problems++
			}
		}
	}
	report(src.Cases.Name, enricher.Counts)
	report(src.Census.Name, enricher.Populations)

	for i, f := range in.Boundaries.Features {
		if _, err := enricher.Stat(f); err != nil {
			fmt.Fprintf(w, "%s: feature %d: %s\n", src.Boundaries.Name, i, err)
			problems++
		}
	}

	if problems > 0 {
		return errors.Wrapf(ErrCheckFailed, "%d problems", problems)
	}
	fmt.Fprintf(w, "ok: %d boundaries join\n", len(in.Boundaries.Features))
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
