// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"errors"
	"io/fs"
	"path"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	createTableRe = regexp.MustCompile(`CREATE TABLE IF NOT EXISTS (\w+)`)
	dropTableRe   = regexp.MustCompile(`DROP TABLE IF EXISTS (\w+)`)
)

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil)

	require.ErrorIs(t, err, errNilDB)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_StopsOnFailingStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// an empty database has no version table, goose then fails creating it
	mock.ExpectQuery("SELECT version_id, is_applied from goose_db_version").
		WillReturnError(errors.New(`relation "goose_db_version" does not exist`))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE goose_db_version").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = Migrate(db)
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "migration error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrations_AreVersionedInOrder(t *testing.T) {
	goose.SetBaseFS(embedMigrations)
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	migrations, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	require.NoError(t, err)

	want := []string{
		"00001_create_users.sql",
		"00002_create_sales.sql",
		"00003_create_nft_tokens.sql",
		"00004_create_market_orders.sql",
	}
	require.Len(t, migrations, len(want))
	for i, m := range migrations {
		assert.Equal(t, int64(i+1), m.Version)
		assert.Equal(t, want[i], path.Base(m.Source))
	}
}

func TestMigrations_CreateMarketTables(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)

	var created, dropped []string
	for _, name := range files {
		data, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)
		sql := string(data)

		up := strings.Index(sql, "-- +goose Up")
		down := strings.Index(sql, "-- +goose Down")
		require.GreaterOrEqual(t, up, 0, "%s: no Up section", name)
		require.Greater(t, down, up, "%s: Down must follow Up", name)

		fileCreated := tableNames(createTableRe, sql[up:down])
		fileDropped := tableNames(dropTableRe, sql[down:])
		assert.ElementsMatch(t, fileCreated, fileDropped, "%s: Down must drop what Up creates", name)

		created = append(created, fileCreated...)
		dropped = append(dropped, fileDropped...)
	}

	assert.ElementsMatch(t, []string{"users", "sales", "nft_tokens", "asks", "bids"}, created)
	assert.ElementsMatch(t, created, dropped)
}

func tableNames(re *regexp.Regexp, sql string) []string {
	var names []string
	for _, m := range re.FindAllStringSubmatch(sql, -1) {
		names = append(names, m[1])
	}
	return names
}
