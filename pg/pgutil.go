package pg

import (
	"bytes"

	"github.com/hoodstats/go-hoodstats/hood"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// StatsTable is the table ReplaceStats writes to.
const StatsTable = "neighbourhood_stats"

// statsColumns are inserted per row, in this order.
var statsColumns = []string{"name", "covid_case_count", "population"}

// CreateStatsTableDDL returns the DDL for table.
func CreateStatsTableDDL(table string) string {
	return `create table if not exists ` + pq.QuoteIdentifier(table) + ` (
  name text primary key,
  covid_case_count integer not null,
  population integer not null
)`
}

// InsertStatsQuery returns an insert statement for nrows rows of table.
func InsertStatsQuery(table string, nrows int) string {
	buf := bytes.Buffer{}
	buf.WriteString("insert into " + pq.QuoteIdentifier(table) + " (")
	for i, c := range statsColumns {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(c)
	}
	buf.WriteString(") values ")
	binder := NewBinder()
	for r := 0; r < nrows; r++ {
		if r > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for i := range statsColumns {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(binder.Next())
		}
		buf.WriteString(")")
	}
	return buf.String()
}

// StatsBinds flattens stats into bind values for InsertStatsQuery.
func StatsBinds(stats []hood.Stat) []interface{} {
	binds := make([]interface{}, 0, len(stats)*len(statsColumns))
	for _, s := range stats {
		binds = append(binds, s.Name, s.CaseCount, s.Population)
	}
	return binds
}

// ReplaceStats replaces the contents of the stats table with stats in one
// transaction, creating the table if needed.
func (p DB) ReplaceStats(stats []hood.Stat) (err error) {
	tx, err := p.Begin()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
		err = errors.Wrap(tx.Commit(), "commit")
	}()

	if _, err = tx.Exec(CreateStatsTableDDL(StatsTable)); err != nil {
		return errors.Wrap(err, "create "+StatsTable)
	}
	if _, err = tx.Exec("delete from " + pq.QuoteIdentifier(StatsTable)); err != nil {
		return errors.Wrap(err, "clear "+StatsTable)
	}
	if len(stats) == 0 {
		return nil
	}
	query := InsertStatsQuery(StatsTable, len(stats))
	if _, err = tx.Exec(query, StatsBinds(stats)...); err != nil {
		return errors.Wrapf(err, "insert %d rows into %s", len(stats), StatsTable)
	}
	return nil
}
