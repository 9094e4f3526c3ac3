package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA temp_store = MEMORY;

-- Document cache: one row per (content, operation, options) combination
CREATE TABLE IF NOT EXISTS documents (
    doc_id INTEGER PRIMARY KEY AUTOINCREMENT,
    content_hash TEXT NOT NULL,       -- SHA256 of the input bytes
    operation TEXT NOT NULL,          -- slim, select, extract
    options_hash TEXT NOT NULL DEFAULT '',
    source TEXT,                      -- input file path, or '-' for stdin
    input_bytes INTEGER NOT NULL DEFAULT 0,
    output_bytes INTEGER NOT NULL DEFAULT 0,
    output BLOB NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    UNIQUE(content_hash, operation, options_hash)
);

CREATE INDEX IF NOT EXISTS idx_documents_operation ON documents(operation);
CREATE INDEX IF NOT EXISTS idx_documents_created ON documents(created_at);
`
