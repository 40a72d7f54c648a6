package iocache

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// Table names for survey storage.
const (
	runsTable         = "archsurvey_runs"
	answersTable      = "archsurvey_answers"
	chatMessagesTable = "archsurvey_chat_messages"
)

// storeTables lists every table owned by the survey store.
var storeTables = []string{runsTable, answersTable, chatMessagesTable}

// runColumns is the column order shared by every run query and scanRun.
const runColumns = `run_id, session_id, created_at, answer_mode, answered, total_questions,
	rec_type, winner, score, description, message, near_ties, interpretation,
	score_microservices, score_events, score_monolithic, score_hybrid,
	avg_autonomy, avg_global, avg_events`

// SurveyStoreImpl implements the SurveyStore interface.
type SurveyStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.SurveyStore = &SurveyStoreImpl{} // Compile-time check

// NewSurveyStore creates a new SurveyStore with the specified backend.
func NewSurveyStore(backend schema.DatabaseBackend, connStr string) (contract.SurveyStore, error) {
	if backend == schema.NoneBackend {
		// Return a no-op store for disabled storage
		return &SurveyStoreImpl{backend: backend}, nil
	}

	db, driverName, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database file is accessible."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}

	// Create the table schemas
	if err := createStoreTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create survey tables: %w", err)
	}

	return &SurveyStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// openDB opens a connection for the backend without verifying it.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, string, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetStoreDBFilePath()
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		return db, "sqlite", nil

	case schema.MySQLBackend:
		dsn, err := mysqlDSN(connStr)
		if err != nil {
			return nil, "", err
		}
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}
		return db, "mysql", nil

	case schema.PostgreSQLBackend:
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... dbname=... user=... password=...", err)
		}
		return db, "pgx", nil

	default:
		return nil, "", fmt.Errorf("unsupported backend: %s", backend)
	}
}

// mysqlDSN makes sure DATETIME columns scan into time.Time.
func mysqlDSN(connStr string) (string, error) {
	cfg, err := mysql.ParseDSN(connStr)
	if err != nil {
		return "", fmt.Errorf("invalid MySQL connection string: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// createStoreTables creates the survey storage tables.
func createStoreTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{runsTable, getCreateRunsQuery(backend)},
		{answersTable, getCreateAnswersQuery(backend)},
		{chatMessagesTable, getCreateChatMessagesQuery(backend)},
	}

	for _, table := range tables {
		if err := validateTableName(table.name); err != nil {
			return err
		}
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}
	return nil
}

// getCreateRunsQuery returns the CREATE TABLE query for archsurvey_runs.
func getCreateRunsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(runsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				session_id VARCHAR(36) NOT NULL,
				created_at DATETIME(6) NOT NULL,
				answer_mode VARCHAR(16) NOT NULL,
				answered INT NOT NULL,
				total_questions INT NOT NULL,
				rec_type VARCHAR(32) NOT NULL,
				winner VARCHAR(32) NOT NULL,
				score DOUBLE NOT NULL,
				description TEXT NOT NULL,
				message TEXT NOT NULL,
				near_ties VARCHAR(128) NOT NULL,
				interpretation TEXT NOT NULL,
				score_microservices DOUBLE NOT NULL,
				score_events DOUBLE NOT NULL,
				score_monolithic DOUBLE NOT NULL,
				score_hybrid DOUBLE NOT NULL,
				avg_autonomy DOUBLE NOT NULL,
				avg_global DOUBLE NOT NULL,
				avg_events DOUBLE NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				session_id TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL,
				answer_mode TEXT NOT NULL,
				answered INT NOT NULL,
				total_questions INT NOT NULL,
				rec_type TEXT NOT NULL,
				winner TEXT NOT NULL,
				score DOUBLE PRECISION NOT NULL,
				description TEXT NOT NULL,
				message TEXT NOT NULL,
				near_ties TEXT NOT NULL,
				interpretation TEXT NOT NULL,
				score_microservices DOUBLE PRECISION NOT NULL,
				score_events DOUBLE PRECISION NOT NULL,
				score_monolithic DOUBLE PRECISION NOT NULL,
				score_hybrid DOUBLE PRECISION NOT NULL,
				avg_autonomy DOUBLE PRECISION NOT NULL,
				avg_global DOUBLE PRECISION NOT NULL,
				avg_events DOUBLE PRECISION NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				session_id TEXT NOT NULL,
				created_at TEXT NOT NULL,
				answer_mode TEXT NOT NULL,
				answered INTEGER NOT NULL,
				total_questions INTEGER NOT NULL,
				rec_type TEXT NOT NULL,
				winner TEXT NOT NULL,
				score REAL NOT NULL,
				description TEXT NOT NULL,
				message TEXT NOT NULL,
				near_ties TEXT NOT NULL,
				interpretation TEXT NOT NULL,
				score_microservices REAL NOT NULL,
				score_events REAL NOT NULL,
				score_monolithic REAL NOT NULL,
				score_hybrid REAL NOT NULL,
				avg_autonomy REAL NOT NULL,
				avg_global REAL NOT NULL,
				avg_events REAL NOT NULL
			);
		`, quotedTableName)
	}
}

// getCreateAnswersQuery returns the CREATE TABLE query for archsurvey_answers.
func getCreateAnswersQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(answersTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				question_id INT NOT NULL,
				category VARCHAR(32) NOT NULL,
				answer_value DOUBLE NOT NULL,
				weight DOUBLE NOT NULL,
				PRIMARY KEY (run_id, question_id)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				question_id INT NOT NULL,
				category TEXT NOT NULL,
				answer_value DOUBLE PRECISION NOT NULL,
				weight DOUBLE PRECISION NOT NULL,
				PRIMARY KEY (run_id, question_id)
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER NOT NULL,
				question_id INTEGER NOT NULL,
				category TEXT NOT NULL,
				answer_value REAL NOT NULL,
				weight REAL NOT NULL,
				PRIMARY KEY (run_id, question_id)
			);
		`, quotedTableName)
	}
}

// getCreateChatMessagesQuery returns the CREATE TABLE query for archsurvey_chat_messages.
func getCreateChatMessagesQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(chatMessagesTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				message_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				run_id BIGINT NOT NULL,
				role VARCHAR(16) NOT NULL,
				content TEXT NOT NULL,
				created_at DATETIME(6) NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				message_id BIGSERIAL PRIMARY KEY,
				run_id BIGINT NOT NULL,
				role TEXT NOT NULL,
				content TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				message_id INTEGER PRIMARY KEY AUTOINCREMENT,
				run_id INTEGER NOT NULL,
				role TEXT NOT NULL,
				content TEXT NOT NULL,
				created_at TEXT NOT NULL
			);
		`, quotedTableName)
	}
}

// disabled reports whether the store is a no-op.
func (ss *SurveyStoreImpl) disabled() bool {
	return ss.backend == schema.NoneBackend || ss.db == nil
}

// bind rewrites ? placeholders into $n for PostgreSQL.
func (ss *SurveyStoreImpl) bind(query string) string {
	if ss.backend != schema.PostgreSQLBackend {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// table returns the quoted name of a store table.
func (ss *SurveyStoreImpl) table(name string) string {
	return quoteTableName(name, ss.backend)
}

// RecordRun stores a finalized result with its answers in one transaction.
func (ss *SurveyStoreImpl) RecordRun(result schema.SurveyResult) (int64, error) {
	// Skip for NoneBackend
	if ss.disabled() {
		return 0, nil
	}

	rec := schema.NewSurveyRunRecord(result)
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	tx, err := ss.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	runID, err := ss.insertRun(tx, rec)
	if err != nil {
		return 0, fmt.Errorf("failed to insert survey run: %w", err)
	}

	answerQuery := ss.bind(fmt.Sprintf(`INSERT INTO %s (run_id, question_id, category, answer_value, weight) VALUES (?, ?, ?, ?, ?)`,
		ss.table(answersTable)))
	for _, a := range schema.NewAnswerRecords(runID, result.Answers) {
		if _, err := tx.Exec(answerQuery, a.RunID, a.QuestionID, string(a.Category), a.Value, a.Weight); err != nil {
			return 0, fmt.Errorf("failed to insert answer for question %d: %w", a.QuestionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit survey run: %w", err)
	}
	return runID, nil
}

func (ss *SurveyStoreImpl) insertRun(tx *sql.Tx, rec schema.SurveyRunRecord) (int64, error) {
	query := ss.bind(fmt.Sprintf(`
		INSERT INTO %s (session_id, created_at, answer_mode, answered, total_questions,
		                rec_type, winner, score, description, message, near_ties, interpretation,
		                score_microservices, score_events, score_monolithic, score_hybrid,
		                avg_autonomy, avg_global, avg_events)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, ss.table(runsTable)))
	args := []any{
		rec.SessionID, formatTime(rec.CreatedAt, ss.backend), string(rec.Mode), rec.Answered, rec.Total,
		string(rec.Type), string(rec.Winner), rec.Score, rec.Description, rec.Message,
		schema.FormatStyles(rec.NearTies), rec.Interpretation,
		rec.ScoreMicroservices, rec.ScoreEvents, rec.ScoreMonolithic, rec.ScoreHybrid,
		rec.AvgAutonomy, rec.AvgGlobal, rec.AvgEvents,
	}

	var runID int64
	switch ss.backend {
	case schema.PostgreSQLBackend:
		err := tx.QueryRow(query+" RETURNING run_id", args...).Scan(&runID)
		return runID, err
	default: // SQLite and MySQL
		result, err := tx.Exec(query, args...)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	}
}

// GetRun returns a single run or ErrRunNotFound.
func (ss *SurveyStoreImpl) GetRun(runID int64) (schema.SurveyRunRecord, error) {
	if ss.disabled() {
		return schema.SurveyRunRecord{}, fmt.Errorf("%w: %d", contract.ErrRunNotFound, runID)
	}
	query := ss.bind(fmt.Sprintf(`SELECT %s FROM %s WHERE run_id = ?`, runColumns, ss.table(runsTable)))
	rec, err := scanRun(ss.db.QueryRow(query, runID))
	if errors.Is(err, sql.ErrNoRows) {
		return rec, fmt.Errorf("%w: %d", contract.ErrRunNotFound, runID)
	}
	if err != nil {
		return rec, fmt.Errorf("failed to get run %d: %w", runID, err)
	}
	return rec, nil
}

// GetLatestRun returns the most recent run or ErrRunNotFound.
func (ss *SurveyStoreImpl) GetLatestRun() (schema.SurveyRunRecord, error) {
	if ss.disabled() {
		return schema.SurveyRunRecord{}, contract.ErrRunNotFound
	}
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY run_id DESC LIMIT 1`, runColumns, ss.table(runsTable))
	rec, err := scanRun(ss.db.QueryRow(query))
	if errors.Is(err, sql.ErrNoRows) {
		return rec, contract.ErrRunNotFound
	}
	if err != nil {
		return rec, fmt.Errorf("failed to get latest run: %w", err)
	}
	return rec, nil
}

// ListRuns returns the most recent runs, newest first.
func (ss *SurveyStoreImpl) ListRuns(limit int) ([]schema.SurveyRunRecord, error) {
	if ss.disabled() {
		return nil, nil
	}
	query := ss.bind(fmt.Sprintf(`SELECT %s FROM %s ORDER BY run_id DESC LIMIT ?`, runColumns, ss.table(runsTable)))
	return ss.queryRuns(query, limit)
}

// GetAllRuns returns every run, oldest first.
func (ss *SurveyStoreImpl) GetAllRuns() ([]schema.SurveyRunRecord, error) {
	if ss.disabled() {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY run_id`, runColumns, ss.table(runsTable))
	return ss.queryRuns(query)
}

func (ss *SurveyStoreImpl) queryRuns(query string, args ...any) ([]schema.SurveyRunRecord, error) {
	rows, err := ss.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query survey runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.SurveyRunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan survey run: %w", err)
		}
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating survey runs: %w", err)
	}
	return results, nil
}

// GetRunAnswers returns the answers of a run ordered by question ID.
func (ss *SurveyStoreImpl) GetRunAnswers(runID int64) ([]schema.AnswerRecord, error) {
	if ss.disabled() {
		return nil, nil
	}
	query := ss.bind(fmt.Sprintf(`SELECT run_id, question_id, category, answer_value, weight FROM %s WHERE run_id = ? ORDER BY question_id`,
		ss.table(answersTable)))
	return ss.queryAnswers(query, runID)
}

// GetAllAnswers returns every stored answer.
func (ss *SurveyStoreImpl) GetAllAnswers() ([]schema.AnswerRecord, error) {
	if ss.disabled() {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT run_id, question_id, category, answer_value, weight FROM %s ORDER BY run_id, question_id`,
		ss.table(answersTable))
	return ss.queryAnswers(query)
}

func (ss *SurveyStoreImpl) queryAnswers(query string, args ...any) ([]schema.AnswerRecord, error) {
	rows, err := ss.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.AnswerRecord
	for rows.Next() {
		var rec schema.AnswerRecord
		var category string
		if err := rows.Scan(&rec.RunID, &rec.QuestionID, &category, &rec.Value, &rec.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		rec.Category = schema.CategoryKey(category)
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating answers: %w", err)
	}
	return results, nil
}

// AppendChatMessage adds one message to the transcript of a run.
func (ss *SurveyStoreImpl) AppendChatMessage(runID int64, msg schema.ChatMessage) (int64, error) {
	if ss.disabled() {
		return 0, nil
	}
	if _, err := ss.GetRun(runID); err != nil {
		return 0, err
	}

	query := ss.bind(fmt.Sprintf(`INSERT INTO %s (run_id, role, content, created_at) VALUES (?, ?, ?, ?)`, ss.table(chatMessagesTable)))
	args := []any{runID, string(msg.Role), msg.Content, formatTime(time.Now().UTC(), ss.backend)}

	var messageID int64
	switch ss.backend {
	case schema.PostgreSQLBackend:
		if err := ss.db.QueryRow(query+" RETURNING message_id", args...).Scan(&messageID); err != nil {
			return 0, fmt.Errorf("failed to insert chat message: %w", err)
		}
	default: // SQLite and MySQL
		result, err := ss.db.Exec(query, args...)
		if err != nil {
			return 0, fmt.Errorf("failed to insert chat message: %w", err)
		}
		if messageID, err = result.LastInsertId(); err != nil {
			return 0, fmt.Errorf("failed to read chat message id: %w", err)
		}
	}
	return messageID, nil
}

// GetChatHistory returns the transcript of a run in insertion order.
func (ss *SurveyStoreImpl) GetChatHistory(runID int64) ([]schema.ChatMessageRecord, error) {
	if ss.disabled() {
		return nil, nil
	}
	query := ss.bind(fmt.Sprintf(`SELECT message_id, run_id, role, content, created_at FROM %s WHERE run_id = ? ORDER BY message_id`,
		ss.table(chatMessagesTable)))
	rows, err := ss.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.ChatMessageRecord
	for rows.Next() {
		var rec schema.ChatMessageRecord
		var role string
		if err := rows.Scan(&rec.MessageID, &rec.RunID, &role, &rec.Content, &dbTime{&rec.CreatedAt}); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		rec.Role = schema.ChatRole(role)
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat history: %w", err)
	}
	return results, nil
}

// Close closes the underlying connection.
func (ss *SurveyStoreImpl) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}

// GetStatus returns status information about the survey store.
func (ss *SurveyStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:    string(ss.backend),
		Connected:  ss.db != nil,
		TableSizes: make(map[string]int64),
	}
	if ss.disabled() {
		return status, nil
	}

	// Get table sizes
	for _, table := range storeTables {
		var count int64
		row := ss.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", ss.table(table)))
		if err := row.Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}
	status.TotalRuns = int(status.TableSizes[runsTable])
	status.TotalAnswers = int(status.TableSizes[answersTable])
	status.TotalMessages = int(status.TableSizes[chatMessagesTable])

	if status.TotalRuns > 0 {
		// Get last run info
		lastRunQuery := fmt.Sprintf("SELECT run_id, created_at FROM %s ORDER BY run_id DESC LIMIT 1", ss.table(runsTable))
		if err := ss.db.QueryRow(lastRunQuery).Scan(&status.LastRunID, &dbTime{&status.LastRunTime}); err != nil {
			return status, fmt.Errorf("failed to get last run info: %w", err)
		}

		// Get oldest run time
		oldestRunQuery := fmt.Sprintf("SELECT created_at FROM %s ORDER BY run_id ASC LIMIT 1", ss.table(runsTable))
		if err := ss.db.QueryRow(oldestRunQuery).Scan(&dbTime{&status.OldestRunTime}); err != nil {
			return status, fmt.Errorf("failed to get oldest run time: %w", err)
		}
	}

	return status, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRun reads one row selected with runColumns.
func scanRun(row rowScanner) (schema.SurveyRunRecord, error) {
	var rec schema.SurveyRunRecord
	var mode, recType, winner, nearTies string
	err := row.Scan(
		&rec.RunID, &rec.SessionID, &dbTime{&rec.CreatedAt}, &mode, &rec.Answered, &rec.Total,
		&recType, &winner, &rec.Score, &rec.Description, &rec.Message, &nearTies, &rec.Interpretation,
		&rec.ScoreMicroservices, &rec.ScoreEvents, &rec.ScoreMonolithic, &rec.ScoreHybrid,
		&rec.AvgAutonomy, &rec.AvgGlobal, &rec.AvgEvents,
	)
	if err != nil {
		return rec, err
	}
	rec.Mode = schema.AnswerMode(mode)
	rec.Type = schema.Style(recType)
	rec.Winner = schema.Style(winner)
	rec.NearTies = schema.ParseStyles(nearTies)
	return rec, nil
}

// dbTime scans a timestamp stored natively (MySQL, PostgreSQL) or as RFC3339 text (SQLite).
type dbTime struct {
	t *time.Time
}

// Scan implements sql.Scanner.
func (d *dbTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d.t = time.Time{}
	case time.Time:
		*d.t = v
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("unsupported time value %T", src)
	}
	return nil
}

func (d *dbTime) parse(s string) error {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			*d.t = t
			return nil
		}
	}
	return fmt.Errorf("failed to parse time %q", s)
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return t.UTC()
	}
}
