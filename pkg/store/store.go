package store

import (
	"database/sql"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gimlet-io/gerrit-slack/pkg/store/ddl"
	"github.com/russross/meddler"
	"github.com/sirupsen/logrus"

	// PostgreSQL driver
	_ "github.com/lib/pq"
	// Sqlite driver
	_ "modernc.org/sqlite"
)

// Store is used to access data
// from the sql/database driver with a relational database backend.
type Store struct {
	*sql.DB

	driver string
	config string
}

// New creates a database connection for the given driver and datasource
// and returns a new Store.
func New(driver, config, encryptionKey string) *Store {
	return &Store{
		DB:     open(driver, config, encryptionKey),
		driver: driver,
		config: config,
	}
}

// open opens a new database connection with the specified
// driver and connection string and returns a store.
func open(driver, config, encryptionKey string) *sql.DB {
	db, err := sql.Open(driver, config)
	if err != nil {
		logrus.Errorln(err)
		logrus.Fatalln("database connection failed")
	}
	if driver == "sqlite" && config == ":memory:" {
		// every connection of an in-memory sqlite is a separate database
		db.SetMaxOpenConns(1)
	}

	if err := setupMeddler(driver, encryptionKey); err != nil {
		logrus.Errorln(err)
		logrus.Fatalln("invalid database encryption key")
	}

	if err := pingDatabase(db); err != nil {
		logrus.Errorln(err)
		logrus.Fatalln("database ping attempts failed")
	}

	if err := setupDatabase(driver, db); err != nil {
		logrus.Errorln(err)
		logrus.Fatalln("migration failed")
	}
	return db
}

const testEncryptionKey = "the-test-encryption-key-32-bytes"

// NewTest creates a new database connection for testing purposes.
// The database driver and connection string are provided by
// environment variables, with fallback to in-memory sqlite.
func NewTest() *Store {
	var (
		driver = "sqlite"
		config = ":memory:"
	)
	if os.Getenv("DATABASE_DRIVER") != "" {
		driver = os.Getenv("DATABASE_DRIVER")
		config = os.Getenv("DATABASE_CONFIG")
	}
	store := &Store{
		DB:     open(driver, config, testEncryptionKey),
		driver: driver,
		config: config,
	}

	if driver != "sqlite" {
		// if not in-memory DB, recreate tables between tests
		store.Exec(`
drop table migrations;
drop table project_configs;
drop table notifications;
`)
		setupDatabase(driver, store.DB)
	}

	return store
}

// helper function to ping the database with backoff to ensure
// a connection can be established before we proceed with the
// database setup and migration.
func pingDatabase(db *sql.DB) error {
	retry := backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 10)
	return backoff.RetryNotify(db.Ping, retry, func(err error, next time.Duration) {
		logrus.Infof("database ping failed. retry in %s", next)
	})
}

// helper function to setup the databsae by performing
// automated database migration steps.
func setupDatabase(driver string, db *sql.DB) error {
	return ddl.Migrate(driver, db)
}

// helper function to setup the meddler default driver
// based on the selected driver name.
func setupMeddler(driver, encryptionKey string) error {
	switch driver {
	case "sqlite":
		meddler.Default = meddler.SQLite
	case "postgres":
		meddler.Default = meddler.PostgreSQL
	}

	return registerSecretMeddler(encryptionKey)
}
