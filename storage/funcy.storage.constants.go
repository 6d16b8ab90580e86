package storage

import "time"

// Driver names
const (
	DriverNameMemory     = "memory"
	DriverNameFilesystem = "filesystem"
	DriverNamePostgres   = "postgres"
)

// Filesystem storage constants
const (
	FilesystemDirPermissions  = 0755
	FilesystemFilePermissions = 0644
	FilesystemFileSuffix      = ".json"
	FilesystemTempPattern     = ".funcy-*"
)

// PostgreSQL storage constants
const (
	PostgresTablePrefix            = "funcy_"
	PostgresDefaultMaxOpenConns    = 25
	PostgresDefaultMaxIdleConns    = 5
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
)

// Error message constants
const (
	ErrMsgTemplateNotFound         = "template not found"
	ErrMsgStoreClosed              = "template store is closed"
	ErrMsgNilTemplate              = "template cannot be nil"
	ErrMsgInvalidTemplateName      = "invalid template name"
	ErrMsgPathTraversalDetected    = "path traversal detected in template name"
	ErrMsgDriverNotFound           = "storage driver not found"
	ErrMsgNilDriver                = "storage driver cannot be nil"
	ErrMsgDriverAlreadyRegistered  = "storage driver already registered"
	ErrMsgInvalidStorageRoot       = "storage root directory is empty"
	ErrMsgCreateStorageDir         = "failed to create storage directory"
	ErrMsgReadStorageDir           = "failed to read storage directory"
	ErrMsgReadTemplate             = "failed to read template"
	ErrMsgWriteTemplate            = "failed to write template"
	ErrMsgDeleteTemplate           = "failed to delete template"
	ErrMsgMarshalTemplate          = "failed to marshal template"
	ErrMsgUnmarshalTemplate        = "failed to unmarshal template"
	ErrMsgPostgresEmptyConnString  = "PostgreSQL connection string is empty"
	ErrMsgPostgresConnectionFailed = "failed to connect to PostgreSQL"
	ErrMsgPostgresQueryFailed      = "PostgreSQL query failed"
	ErrMsgPostgresMigrationFailed  = "PostgreSQL migration failed"
)
