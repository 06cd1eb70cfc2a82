package storage

// Open depends on the cgo SQLite driver being registered.
import _ "github.com/mattn/go-sqlite3"
