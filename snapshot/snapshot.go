// Package snapshot stores decoded SkillMarket ledger in SQLite database for
// offline analysis.
//
// Database holds the current state only: every export replaces the previous
// one.
package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/skillhours/skillmarket-contract/rpc/skillmarket"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS config (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS skill_balances (
	account TEXT PRIMARY KEY,
	amount  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS currency_balances (
	account TEXT PRIMARY KEY,
	amount  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS offers (
	account        TEXT PRIMARY KEY,
	hours_offered  TEXT NOT NULL,
	price_per_hour TEXT NOT NULL
);`

// Config table keys.
const (
	keyAdministrator    = "administrator"
	keySkillRate        = "skill_rate"
	keyServiceFee       = "service_fee"
	keyMaxSkillsPerUser = "max_skills_per_user"
	keyReserveLimit     = "reserve_limit"
	keyTotalReserve     = "total_reserve"
)

// Store is an SQLite database holding a ledger snapshot.
type Store struct {
	sqlDB *sql.DB
}

// Summary describes exported snapshot.
type Summary struct {
	Participants int
	Offers       int
}

// Open opens (creating if needed) the SQLite snapshot at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("snapshot path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Export replaces stored snapshot with the given ledger atomically.
func (s *Store) Export(ctx context.Context, l *skillmarket.Ledger) (Summary, error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"config", "skill_balances", "currency_balances", "offers"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return Summary{}, fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, kv := range []struct {
		key   string
		value string
	}{
		{keyAdministrator, address.Uint160ToString(l.Administrator)},
		{keySkillRate, l.SkillRate.String()},
		{keyServiceFee, l.ServiceFee.String()},
		{keyMaxSkillsPerUser, l.MaxSkillsPerUser.String()},
		{keyReserveLimit, l.ReserveLimit.String()},
		{keyTotalReserve, l.TotalReserve.String()},
	} {
		_, err = tx.ExecContext(ctx, "INSERT INTO config (key, value) VALUES (?, ?)", kv.key, kv.value)
		if err != nil {
			return Summary{}, fmt.Errorf("insert %s: %w", kv.key, err)
		}
	}

	err = insertBalances(ctx, tx, "skill_balances", l.SkillBalances)
	if err != nil {
		return Summary{}, err
	}

	err = insertBalances(ctx, tx, "currency_balances", l.CurrencyBalances)
	if err != nil {
		return Summary{}, err
	}

	for acc, o := range l.Offers {
		_, err = tx.ExecContext(ctx, "INSERT INTO offers (account, hours_offered, price_per_hour) VALUES (?, ?, ?)",
			address.Uint160ToString(acc), o.HoursOffered.String(), o.PricePerHour.String())
		if err != nil {
			return Summary{}, fmt.Errorf("insert offer of %s: %w", address.Uint160ToString(acc), err)
		}
	}

	if err = tx.Commit(); err != nil {
		return Summary{}, fmt.Errorf("commit transaction: %w", err)
	}

	return Summary{
		Participants: len(l.Participants()),
		Offers:       len(l.Offers),
	}, nil
}

func insertBalances(ctx context.Context, tx *sql.Tx, table string, m map[util.Uint160]*big.Int) error {
	for acc, v := range m {
		_, err := tx.ExecContext(ctx, "INSERT INTO "+table+" (account, amount) VALUES (?, ?)",
			address.Uint160ToString(acc), v.String())
		if err != nil {
			return fmt.Errorf("insert %s of %s: %w", table, address.Uint160ToString(acc), err)
		}
	}
	return nil
}

// Load reads stored snapshot back into the ledger.
func (s *Store) Load(ctx context.Context) (*skillmarket.Ledger, error) {
	l := skillmarket.NewLedger()

	rows, err := s.sqlDB.QueryContext(ctx, "SELECT key, value FROM config")
	if err != nil {
		return nil, fmt.Errorf("select config: %w", err)
	}

	var found bool
	err = scanRows(rows, func(vals []string) error {
		if vals[0] == keyAdministrator {
			acc, err := address.StringToUint160(vals[1])
			if err != nil {
				return fmt.Errorf("administrator: %w", err)
			}
			l.Administrator = acc
			found = true
			return nil
		}

		v, err := parseInt(vals[1])
		if err != nil {
			return fmt.Errorf("%s: %w", vals[0], err)
		}

		switch vals[0] {
		case keySkillRate:
			l.SkillRate = v
		case keyServiceFee:
			l.ServiceFee = v
		case keyMaxSkillsPerUser:
			l.MaxSkillsPerUser = v
		case keyReserveLimit:
			l.ReserveLimit = v
		case keyTotalReserve:
			l.TotalReserve = v
		default:
			return fmt.Errorf("unexpected config key %q", vals[0])
		}
		return nil
	}, 2)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, errors.New("snapshot is empty")
	}

	err = loadBalances(ctx, s.sqlDB, "skill_balances", l.SkillBalances)
	if err != nil {
		return nil, err
	}

	err = loadBalances(ctx, s.sqlDB, "currency_balances", l.CurrencyBalances)
	if err != nil {
		return nil, err
	}

	rows, err = s.sqlDB.QueryContext(ctx, "SELECT account, hours_offered, price_per_hour FROM offers")
	if err != nil {
		return nil, fmt.Errorf("select offers: %w", err)
	}

	err = scanRows(rows, func(vals []string) error {
		acc, err := address.StringToUint160(vals[0])
		if err != nil {
			return fmt.Errorf("offer account: %w", err)
		}

		var o skillmarket.Offer
		if o.HoursOffered, err = parseInt(vals[1]); err != nil {
			return fmt.Errorf("offer of %s: %w", vals[0], err)
		}
		if o.PricePerHour, err = parseInt(vals[2]); err != nil {
			return fmt.Errorf("offer of %s: %w", vals[0], err)
		}

		l.Offers[acc] = o
		return nil
	}, 3)
	if err != nil {
		return nil, err
	}

	return l, nil
}

func loadBalances(ctx context.Context, db *sql.DB, table string, m map[util.Uint160]*big.Int) error {
	rows, err := db.QueryContext(ctx, "SELECT account, amount FROM "+table)
	if err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}

	return scanRows(rows, func(vals []string) error {
		acc, err := address.StringToUint160(vals[0])
		if err != nil {
			return fmt.Errorf("%s account: %w", table, err)
		}

		v, err := parseInt(vals[1])
		if err != nil {
			return fmt.Errorf("%s of %s: %w", table, vals[0], err)
		}

		m[acc] = v
		return nil
	}, 2)
}

// scanRows passes every row of n text columns to f and closes rows.
func scanRows(rows *sql.Rows, f func([]string) error, n int) error {
	defer rows.Close()

	vals := make([]string, n)
	dst := make([]any, n)
	for i := range vals {
		dst[i] = &vals[i]
	}

	for rows.Next() {
		if err := rows.Scan(dst...); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		if err := f(vals); err != nil {
			return err
		}
	}

	return rows.Err()
}

func parseInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}
