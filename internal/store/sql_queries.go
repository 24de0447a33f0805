package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/snapback/internal/config"
	"github.com/MKhiriev/snapback/models"
)

const (
	cnodeUsersTable = "cnode_users"
	filesTable      = "files"

	// multihashSeparator joins multihashes before hashing. Peers compute the
	// same digest, so it must not change.
	multihashSeparator = ","
)

// statementBuilder returns a squirrel builder with the placeholder format of
// the given driver.
func statementBuilder(driver string) sq.StatementBuilderType {
	if driver == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// rangeFilter restricts files to the wallet's user and the clock range.
func rangeFilter(query models.RangeDigestQuery) sq.And {
	filter := sq.And{
		sq.Eq{"u.wallet_public_key": query.Wallet},
		sq.GtOrEq{"f.clock": query.ClockMin},
	}
	if query.ClockMax > 0 {
		filter = append(filter, sq.Lt{"f.clock": query.ClockMax})
	}
	return filter
}

// buildFilesHashQuery builds the Postgres query that aggregates and hashes the
// multihashes server-side. It yields one row whose value is NULL when no
// file matches.
func buildFilesHashQuery(query models.RangeDigestQuery) (string, []any, error) {
	q, args, err := statementBuilder(config.DriverPostgres).
		Select(fmt.Sprintf("MD5(STRING_AGG(f.multihash, '%s' ORDER BY f.clock ASC)) AS files_hash", multihashSeparator)).
		From(filesTable + " f").
		Join(cnodeUsersTable + " u ON u.cnode_user_uuid = f.cnode_user_uuid").
		Where(rangeFilter(query)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, nil
}

// buildMultihashesQuery builds the query listing the multihashes in clock
// order, for drivers without STRING_AGG and MD5.
func buildMultihashesQuery(driver string, query models.RangeDigestQuery) (string, []any, error) {
	q, args, err := statementBuilder(driver).
		Select("f.multihash").
		From(filesTable + " f").
		Join(cnodeUsersTable + " u ON u.cnode_user_uuid = f.cnode_user_uuid").
		Where(rangeFilter(query)).
		OrderBy("f.clock ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, nil
}

// buildUserClockQuery builds the query reading the user's current clock.
func buildUserClockQuery(driver, wallet string) (string, []any, error) {
	q, args, err := statementBuilder(driver).
		Select("clock").
		From(cnodeUsersTable).
		Where(sq.Eq{"wallet_public_key": wallet}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, nil
}
