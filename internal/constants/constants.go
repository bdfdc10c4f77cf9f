package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// API path constants.
const (
	// APIPathBeers is the collection path; a beer id is appended for single
	// resources.
	APIPathBeers = "/api/v1/beer/"
)

// Client identification.
const (
	// DefaultUserAgent is sent unless the caller configures another one.
	DefaultUserAgent = "beer-client/1.0.0"
)

// Pagination constants.
const (
	// DefaultPageSize is the page size the server applies when none is sent.
	DefaultPageSize = 25

	// ExportPageSize is the page size used when walking every page.
	ExportPageSize = 100
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Formatting constants.
const (
	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// ProgressBarWidth is the width of the export progress bar.
	ProgressBarWidth = 40
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Confirmation constants.
const (
	// ConfirmationYes for positive confirmations.
	ConfirmationYes = "yes"
)
