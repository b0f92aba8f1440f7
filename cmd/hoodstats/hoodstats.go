package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hoodstats/go-hoodstats/action"
	"github.com/hoodstats/go-hoodstats/hood/name"
	"github.com/hoodstats/go-hoodstats/pg"
	"github.com/hoodstats/go-hoodstats/root"
	"github.com/hoodstats/go-hoodstats/sources"
	"github.com/hoodstats/go-hoodstats/text"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	cmd     = "hoodstats"
	version = "1.0.0"
)

var cmdError error

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	app := &cobra.Command{
		Use:   cmd,
		Short: cmd + " joins case counts and population onto neighbourhood boundaries",
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if logPath := stringFlag(c, "log"); logPath != "" {
				if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
					fmt.Fprintln(os.Stderr, "mkdir", logPath, "failed:", err)
					return
				}
				log.SetOutput(&lumberjack.Logger{
					Filename:   logPath,
					MaxSize:    10,
					MaxBackups: 10,
					MaxAge:     15,
				})
			}
		},
	}
	defineAppFlags(app)
	defineCommands(app)
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
	if cmdError != nil {
		os.Exit(1)
	}
}

func defineAppFlags(app *cobra.Command) {
	f := app.PersistentFlags()
	f.String("log", os.Getenv("HOODSTATS_LOG"), "log file path (default stderr)")
	f.String("root", os.Getenv("HOODSTATS_ROOT"), "directory input and output paths are relative to (default cwd)")
	f.String("boundaries", "", "boundary GeoJSON path")
	f.String("cases", "", "case records JSON path")
	f.String("census", "", "neighbourhood profile JSON path")
	f.String("out", "", "enriched GeoJSON output path")
}

func dbFlags(f *pflag.FlagSet) {
	f.String("db", text.FirstNotEmpty(os.Getenv("HOODSTATS_DBNAME"), "hoodstats"), "database name")
	f.String("user", text.FirstNotEmpty(os.Getenv("HOODSTATS_DBUSER"), "hoodstats"), "database user")
	f.String("password", text.FirstNotEmpty(os.Getenv("HOODSTATS_DBPASS"), "hoodstats"), "database password")
	f.String("host", text.FirstNotEmpty(os.Getenv("HOODSTATS_DBHOST"), "localhost"), "postgres database host")
	f.Int("port", text.ParseInt(os.Getenv("HOODSTATS_DBPORT"), 0), "postgres database port")
}

func reportError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		cmdError = err
	}
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func setFlags(flagSetter func(*pflag.FlagSet), cmd *cobra.Command) *cobra.Command {
	flagSetter(cmd.Flags())
	return cmd
}

func stringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		fatal("bad string value for " + name + ": " + err.Error())
	}
	return val
}

func intFlag(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		fatal("bad int value for " + name + ": " + err.Error())
	}
	return val
}

func sourcesSpec(c *cobra.Command) *sources.Sources {
	src := sources.Default(root.New(stringFlag(c, "root")))
	src.Override(stringFlag(c, "boundaries"), stringFlag(c, "cases"),
		stringFlag(c, "census"), stringFlag(c, "out"))
	return src
}

func dbSpec(c *cobra.Command) pg.ConnSpec {
	return pg.ConnSpec{
		Database: stringFlag(c, "db"),
		User:     stringFlag(c, "user"),
		Password: stringFlag(c, "password"),
		Host:     stringFlag(c, "host"),
		Port:     intFlag(c, "port"),
	}
}

func defineCommands(app *cobra.Command) {
	app.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show " + cmd + " version",
		Run: func(*cobra.Command, []string) {
			fmt.Println(cmd, version)
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "enrich",
		Short: "write the boundaries with covid_case_count and population added",
		Run: func(c *cobra.Command, args []string) {
			reportError(action.Enrich(sourcesSpec(c)))
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "report names that do not normalize or join, without writing output",
		Run: func(c *cobra.Command, args []string) {
			reportError(action.Check(sourcesSpec(c), os.Stdout))
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "enrich, then enrich again whenever an input file changes",
		Run: func(c *cobra.Command, args []string) {
			reportError(action.Watch(sourcesSpec(c)))
		},
	})

	app.AddCommand(setFlags(dbFlags, &cobra.Command{
		Use:   "export-db",
		Short: "replace the " + pg.StatsTable + " table with the joined statistics",
		Run: func(c *cobra.Command, args []string) {
			reportError(action.ExportDB(sourcesSpec(c), dbSpec(c)))
		},
	}))

	app.AddCommand(&cobra.Command{
		Use:   "names",
		Short: "list the canonical neighbourhood names and their known variants",
		Run: func(c *cobra.Command, args []string) {
			for _, n := range name.Registry() {
				fmt.Println(n)
				for _, v := range name.Variants(n) {
					fmt.Println("  <-", v)
				}
			}
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "sources",
		Short: "show the input files and where they are published",
		Run: func(c *cobra.Command, args []string) {
			src := sourcesSpec(c)
			for _, d := range src.Datasets() {
				fmt.Printf("%-10s %s\n           %s\n", d.Name, src.Root.Path(d.Path), d.Origin)
			}
			fmt.Printf("%-10s %s\n", "output", src.Root.Path(src.Output))
		},
	})
}
