// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists generated articles in SQLite with full-text
// search over the article body. Requires building with the sqlite_fts5
// tag so go-sqlite3 compiles in the FTS5 module; the mage targets pass it.
// Implements: prd017-article-store (R1-R5);
//
//	docs/ARCHITECTURE § Article Store.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/article-engine/internal/plan"
	"github.com/pdiddy/article-engine/pkg/types"
)

const (
	indexDir    = "index"
	markdownDir = "markdown"
	dbFile      = "articles.db"
)

// Store manages the article SQLite database under the articles directory.
type Store struct {
	db          *sql.DB
	articlesDir string
	maxResults  int
}

// NewStore opens or creates the article database at
// articlesDir/index/articles.db, creating the schema if needed (R1.2).
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.ArticlesDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:          db,
		articlesDir: cfg.ArticlesDir,
		maxResults:  maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS articles (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			primary_keyword TEXT NOT NULL,
			category TEXT NOT NULL,
			markdown TEXT NOT NULL,
			metrics TEXT NOT NULL,
			generated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_keyword ON articles(primary_keyword)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='articles_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE articles_fts USING fts5(primary_keyword, markdown, content=articles, content_rowid=rowid)`,
			`CREATE TRIGGER articles_ai AFTER INSERT ON articles BEGIN
				INSERT INTO articles_fts(rowid, primary_keyword, markdown) VALUES (new.rowid, new.primary_keyword, new.markdown);
			END`,
			`CREATE TRIGGER articles_ad AFTER DELETE ON articles BEGIN
				INSERT INTO articles_fts(articles_fts, rowid, primary_keyword, markdown) VALUES('delete', old.rowid, old.primary_keyword, old.markdown);
			END`,
			`CREATE TRIGGER articles_au AFTER UPDATE ON articles BEGIN
				INSERT INTO articles_fts(articles_fts, rowid, primary_keyword, markdown) VALUES('delete', old.rowid, old.primary_keyword, old.markdown);
				INSERT INTO articles_fts(rowid, primary_keyword, markdown) VALUES (new.rowid, new.primary_keyword, new.markdown);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Save persists a generated document, assigning an ID if the document does
// not have one yet (R2.1). Saving an existing ID replaces the stored row.
func (s *Store) Save(ctx context.Context, doc *types.GeneratedDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	metricsJSON, err := json.Marshal(doc.Metrics)
	if err != nil {
		return fmt.Errorf("marshaling metrics: %w", err)
	}

	generatedAt := doc.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO articles (id, primary_keyword, category, markdown, metrics, generated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			primary_keyword=excluded.primary_keyword, category=excluded.category,
			markdown=excluded.markdown, metrics=excluded.metrics,
			generated_at=excluded.generated_at`,
		doc.ID, doc.PrimaryKeyword, string(doc.Category), doc.Markdown,
		string(metricsJSON), generatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving article: %w", err)
	}
	return nil
}

// Get loads a full document by ID (R2.2).
func (s *Store) Get(ctx context.Context, id string) (types.GeneratedDocument, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, primary_keyword, category, markdown, metrics, generated_at
		 FROM articles WHERE id = ?`, id)

	var (
		doc         types.GeneratedDocument
		category    string
		metricsJSON string
		generatedAt string
	)
	err := row.Scan(&doc.ID, &doc.PrimaryKeyword, &category, &doc.Markdown, &metricsJSON, &generatedAt)
	if err == sql.ErrNoRows {
		return types.GeneratedDocument{}, fmt.Errorf("article %s not found", id)
	}
	if err != nil {
		return types.GeneratedDocument{}, fmt.Errorf("loading article: %w", err)
	}

	doc.Category = types.TopicCategory(category)
	if err := json.Unmarshal([]byte(metricsJSON), &doc.Metrics); err != nil {
		return types.GeneratedDocument{}, fmt.Errorf("unmarshaling metrics: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, generatedAt); err == nil {
		doc.GeneratedAt = t
	}
	return doc, nil
}

// ListOptions holds parameters for article listing (R3).
type ListOptions struct {
	// Query is an FTS5 full-text search over keyword and body (R3.1).
	Query string

	// Category filters by topic category (R3.2).
	Category types.TopicCategory

	// MaxResults limits result count. Zero uses the store default (R3.3).
	MaxResults int
}

// Summary is one row of a listing: identity and headline metrics, without
// the article body.
type Summary struct {
	ID             string              `json:"id" yaml:"id"`
	PrimaryKeyword string              `json:"primary_keyword" yaml:"primary_keyword"`
	Category       types.TopicCategory `json:"category" yaml:"category"`
	WordCount      int                 `json:"word_count" yaml:"word_count"`
	SEOScore       int                 `json:"seo_score" yaml:"seo_score"`
	GeneratedAt    time.Time           `json:"generated_at" yaml:"generated_at"`
}

// List queries stored articles with optional full-text search and a
// category filter. Full-text matches rank by relevance; structured-only
// queries sort newest first (R3.4).
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Summary, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT a.id, a.primary_keyword, a.category, a.metrics, a.generated_at
			FROM articles_fts
			JOIN articles a ON a.rowid = articles_fts.rowid
			WHERE articles_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT a.id, a.primary_keyword, a.category, a.metrics, a.generated_at
			FROM articles a
			WHERE 1=1`)
	}

	if opts.Category != "" {
		qb.WriteString(` AND a.category = ?`)
		args = append(args, string(opts.Category))
	}

	if useFTS {
		qb.WriteString(` ORDER BY articles_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY a.generated_at DESC`)
	}
	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var (
			sum         Summary
			category    string
			metricsJSON string
			generatedAt string
		)
		if err := rows.Scan(&sum.ID, &sum.PrimaryKeyword, &category, &metricsJSON, &generatedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		sum.Category = types.TopicCategory(category)

		var metrics types.ValidationMetrics
		if err := json.Unmarshal([]byte(metricsJSON), &metrics); err == nil {
			sum.WordCount = metrics.WordCount
			sum.SEOScore = metrics.SEOScore
		}
		if t, err := time.Parse(time.RFC3339, generatedAt); err == nil {
			sum.GeneratedAt = t
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// Delete removes an article by ID (R4.1). Deleting an unknown ID is an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting article: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("article %s not found", id)
	}
	return nil
}

// Export writes an article's markdown to articlesDir/markdown/, named by
// the slugified keyword, with a YAML metrics sidecar (R5.1, R5.2). It
// returns the markdown file path.
func (s *Store) Export(ctx context.Context, id string) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	outDir := filepath.Join(s.articlesDir, markdownDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating markdown directory: %w", err)
	}

	base := plan.Slugify(doc.PrimaryKeyword)
	if base == "" {
		base = doc.ID
	}

	mdPath := filepath.Join(outDir, base+".md")
	if err := os.WriteFile(mdPath, []byte(doc.Markdown), 0o644); err != nil {
		return "", fmt.Errorf("writing markdown: %w", err)
	}

	meta, err := yaml.Marshal(doc.Metrics)
	if err != nil {
		return "", fmt.Errorf("marshaling metrics: %w", err)
	}
	metaPath := filepath.Join(outDir, base+".metrics.yaml")
	if err := os.WriteFile(metaPath, meta, 0o644); err != nil {
		return "", fmt.Errorf("writing metrics sidecar: %w", err)
	}

	return mdPath, nil
}
