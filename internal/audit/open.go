package audit

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/peoplekeeper/internal/config"
)

// defaultSQLiteDSN is used when the sqlite driver is chosen without a DSN.
const defaultSQLiteDSN = "audit.db"

type nopWriter struct{}

func (nopWriter) Write(context.Context, Event) error { return nil }

// OpenWriter builds the Writer selected by c.AuditDriver. The SQL drivers
// also keep the text trail in c.AuditFile when one is set. The returned
// close function releases database connections and is never nil.
func OpenWriter(ctx context.Context, c *config.Config) (Writer, func() error, error) {
	noClose := func() error { return nil }

	switch c.AuditDriver {
	case config.AuditDriverFile, "":
		return NewFileWriter(c.AuditFile), noClose, nil

	case config.AuditDriverNone:
		return nopWriter{}, noClose, nil

	case config.AuditDriverSQLite, config.AuditDriverPgx:
		d, err := DialectFor(c.AuditDriver)
		if err != nil {
			return nil, nil, err
		}
		dsn := c.AuditDSN
		if dsn == "" && d.Driver == DialectSQLite.Driver {
			dsn = defaultSQLiteDSN
		}
		sw, err := OpenSQLWriter(ctx, d, dsn)
		if err != nil {
			return nil, nil, err
		}
		if c.AuditFile == "" {
			return sw, sw.Close, nil
		}
		return NewMultiWriter(sw, NewFileWriter(c.AuditFile)), sw.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported audit driver %q", c.AuditDriver)
	}
}
