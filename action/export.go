package action

import (
	"log"

	"github.com/hoodstats/go-hoodstats/pg"
	"github.com/hoodstats/go-hoodstats/sources"
)

// ExportDB joins the inputs of src and replaces the neighbourhood stats table
// in the database db with the result.
func ExportDB(src *sources.Sources, db pg.ConnSpec) error {
	stats, err := Joined(src)
	if err != nil {
		return err
	}
	dbh, err := db.Open()
	if err != nil {
		return err
	}
	defer dbh.Close()
	if err := dbh.ReplaceStats(stats); err != nil {
		return err
	}
	log.Printf("exported %d neighbourhoods to %s.%s", len(stats), db.Database, pg.StatsTable)
	return nil
}
