package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Document is one cached operation result.
type Document struct {
	DocID       int64
	ContentHash string
	Operation   string
	OptionsHash string
	Source      string
	InputBytes  int64
	OutputBytes int64
	Output      []byte
	CreatedAt   time.Time
}

// SaveDocument inserts the cached output for (content, operation, options),
// replacing any previous row for the same key. Returns the doc_id.
func (db *DB) SaveDocument(doc *Document) (int64, error) {
	_, err := db.Exec(`
		INSERT INTO documents (content_hash, operation, options_hash, source, input_bytes, output_bytes, output)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(content_hash, operation, options_hash) DO UPDATE SET
			source = excluded.source,
			input_bytes = excluded.input_bytes,
			output_bytes = excluded.output_bytes,
			output = excluded.output,
			created_at = CURRENT_TIMESTAMP
	`, doc.ContentHash, doc.Operation, doc.OptionsHash, doc.Source, doc.InputBytes, doc.OutputBytes, doc.Output)
	if err != nil {
		return 0, fmt.Errorf("failed to save document: %w", err)
	}

	var docID int64
	err = db.QueryRow(`
		SELECT doc_id FROM documents
		WHERE content_hash = ? AND operation = ? AND options_hash = ?
	`, doc.ContentHash, doc.Operation, doc.OptionsHash).Scan(&docID)
	if err != nil {
		return 0, fmt.Errorf("failed to get document ID: %w", err)
	}

	return docID, nil
}

// GetDocument returns the cached document for the key if it exists and is
// younger than maxAge. A maxAge <= 0 disables the cache and always misses.
func (db *DB) GetDocument(contentHash, operation, optionsHash string, maxAge time.Duration) (*Document, bool, error) {
	if maxAge <= 0 {
		return nil, false, nil
	}

	doc, err := db.scanDocument(db.QueryRow(`
		SELECT doc_id, content_hash, operation, options_hash, source, input_bytes, output_bytes, output, created_at
		FROM documents
		WHERE content_hash = ? AND operation = ? AND options_hash = ?
	`, contentHash, operation, optionsHash))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get document: %w", err)
	}

	if time.Since(doc.CreatedAt) > maxAge {
		return nil, false, nil
	}

	return doc, true, nil
}

// GetDocumentByID returns a single document by its doc_id.
func (db *DB) GetDocumentByID(docID int64) (*Document, error) {
	doc, err := db.scanDocument(db.QueryRow(`
		SELECT doc_id, content_hash, operation, options_hash, source, input_bytes, output_bytes, output, created_at
		FROM documents
		WHERE doc_id = ?
	`, docID))
	if err != nil {
		return nil, fmt.Errorf("failed to get document %d: %w", docID, err)
	}
	return doc, nil
}

// ListDocuments returns the most recent documents, newest first.
// Output blobs are not loaded.
func (db *DB) ListDocuments(limit int) ([]Document, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.Query(`
		SELECT doc_id, content_hash, operation, options_hash, source, input_bytes, output_bytes, created_at
		FROM documents
		ORDER BY created_at DESC, doc_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		var source sql.NullString
		if err := rows.Scan(&doc.DocID, &doc.ContentHash, &doc.Operation, &doc.OptionsHash,
			&source, &doc.InputBytes, &doc.OutputBytes, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc.Source = source.String
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// CountByOperation returns the number of cached documents per operation.
func (db *DB) CountByOperation() (map[string]int, error) {
	rows, err := db.Query("SELECT operation, COUNT(*) FROM documents GROUP BY operation")
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var op string
		var n int
		if err := rows.Scan(&op, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[op] = n
	}

	return counts, rows.Err()
}

// DeleteOlderThan removes documents created before now-age and returns the
// number of rows removed.
func (db *DB) DeleteOlderThan(age time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-age).Format(sqliteTimeLayout)

	result, err := db.Exec("DELETE FROM documents WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete documents: %w", err)
	}

	return result.RowsAffected()
}

// Clear removes all cached documents and returns the number of rows removed.
func (db *DB) Clear() (int64, error) {
	result, err := db.Exec("DELETE FROM documents")
	if err != nil {
		return 0, fmt.Errorf("failed to clear documents: %w", err)
	}
	return result.RowsAffected()
}

func (db *DB) scanDocument(row *sql.Row) (*Document, error) {
	var doc Document
	var source sql.NullString
	err := row.Scan(&doc.DocID, &doc.ContentHash, &doc.Operation, &doc.OptionsHash,
		&source, &doc.InputBytes, &doc.OutputBytes, &doc.Output, &doc.CreatedAt)
	if err != nil {
		return nil, err
	}
	doc.Source = source.String
	return &doc, nil
}
