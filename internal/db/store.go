package db

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"sdet/internal/config"
	"sdet/internal/domain"
)

// Summary table layout, as consumed by the reporting dashboard.
const (
	tableName    = "SDET"
	tableColumns = "Detail_Info,No_of_Executed_Tests,No_of_Failed_Tests,List_of_IDs,Run_Status"
)

// SummaryStore persists per-test summary rows into MySQL.
type SummaryStore struct {
	config *config.Config
}

// NewSummaryStore creates a new SummaryStore.
func NewSummaryStore(cfg *config.Config) *SummaryStore {
	return &SummaryStore{config: cfg}
}

// connect opens a connection to the MySQL server. When database is empty the
// connection is server-level, which is what schema management needs.
func (s *SummaryStore) connect(database string) (*sql.DB, error) {
	if err := godotenv.Load(s.config.EnvFile); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	// Get database connection info from environment or use defaults
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}
	dbPassword := os.Getenv("DB_PASSWORD")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPassword, dbHost, dbPort, database)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}
	return db, nil
}

// DatabaseName returns the summary database name from the environment, with
// a fallback for local runs.
func (s *SummaryStore) DatabaseName() string {
	name := os.Getenv("DB_DATABASE")
	if name == "" {
		name = "sdet"
	}
	return name
}

// EnsureSchema creates the summary database and table when they do not exist
// yet. It is safe to call before every insert batch.
func (s *SummaryStore) EnsureSchema() error {
	db, err := s.connect("")
	if err != nil {
		return err
	}
	defer db.Close()

	dbName := s.DatabaseName()
	// Sanitize database name to prevent SQL injection
	if !isValidDatabaseName(dbName) {
		return fmt.Errorf("invalid database name: %s", dbName)
	}

	exists, err := s.databaseExists(db, dbName)
	if err != nil {
		return fmt.Errorf("failed to check database %s: %w", dbName, err)
	}
	if !exists {
		if err := s.createDatabase(db, dbName); err != nil {
			return fmt.Errorf("failed to create database %s: %w", dbName, err)
		}
	}

	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s`.`%s` ("+
		"Detail_Info TEXT NOT NULL, "+
		"No_of_Executed_Tests INT NOT NULL, "+
		"No_of_Failed_Tests INT NOT NULL, "+
		"List_of_IDs TEXT NOT NULL, "+
		"Run_Status VARCHAR(16) NOT NULL)", dbName, tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}
	return nil
}

// InsertSummaries writes one row per classified test.
func (s *SummaryStore) InsertSummaries(rows []domain.SummaryRow) error {
	if len(rows) == 0 {
		return nil
	}

	db, err := s.connect(s.DatabaseName())
	if err != nil {
		return err
	}
	defer db.Close()

	query := fmt.Sprintf("INSERT INTO `%s`(%s) VALUES (?,?,?,?,?)", tableName, tableColumns)
	stmt, err := db.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare summary insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.Exec(row.DetailInfo, row.ExecutedTests, row.FailedTests, row.PlatformIDs, row.RunStatus)
		if err != nil {
			return fmt.Errorf("failed to insert summary for %s: %w", row.DetailInfo, err)
		}
	}
	return nil
}

// databaseExists checks if a database exists
func (s *SummaryStore) databaseExists(db *sql.DB, dbName string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	err := db.QueryRow(query, dbName).Scan(&exists)
	return exists, err
}

// createDatabase creates a new database
func (s *SummaryStore) createDatabase(db *sql.DB, dbName string) error {
	query := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName)
	_, err := db.Exec(query)
	return err
}

// isValidDatabaseName validates database name (basic check)
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	// Check for SQL injection patterns
	invalidChars := []string{"'", "\"", ";", "--", "/*", "*/", "DROP", "DELETE", "TRUNCATE"}
	upperName := strings.ToUpper(name)
	for _, char := range invalidChars {
		if strings.Contains(upperName, char) {
			return false
		}
	}
	return true
}
