// Package pg connects to PostgreSQL and stores joined neighbourhood
// statistics.
package pg

import (
	"database/sql"
	"strconv"

	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

// DB is a PostgreSQL database handle.
type DB struct {
	*sql.DB
}

// ConnSpec identifies a database and the credentials to connect with.
type ConnSpec struct {
	User, Password string
	Database       string
	Host           string
	Port           int
	SSLMode        string
}

// GetSSLMode returns the sslmode, defaulting to "disable".
func (c ConnSpec) GetSSLMode() string {
	if c.SSLMode == "" {
		return "disable"
	}
	return c.SSLMode
}

// ConnectionString returns the lib/pq connection string for c.
func (c ConnSpec) ConnectionString() string {
	connstr := "sslmode=" + c.GetSSLMode()
	if c.Database != "" {
		connstr += " dbname=" + c.Database
	}
	if c.User != "" {
		connstr += " user=" + c.User
		if c.Password != "" {
			connstr += " password=" + c.Password
		}
	}
	if c.Host != "" {
		connstr += " host=" + c.Host
	}
	if c.Port > 0 {
		connstr += " port=" + strconv.Itoa(c.Port)
	}
	return connstr
}

// Open opens the database described by c.
func (c ConnSpec) Open() (DB, error) {
	dbh, err := sql.Open("postgres", c.ConnectionString())
	if err != nil {
		return DB{}, errors.Wrapf(err, "connect db=%s", c.Database)
	}
	return DB{dbh}, nil
}
