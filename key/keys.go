// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Parser Selection - these keys manage the registration and selection of album parsers.
const (
	ParsersDefault = "parsers.default"
)

// Search Behavior - these keys define pagination defaults and search discovery UX.
const (
	SearchDefaultSize     = "search.default_size"
	SearchShowSuggestions = "search.show_suggestions"
)

// Minimalist (Mini) Mode - these keys configure the lightweight interactive interface.
const (
	MiniSearchLimit = "mini.search_limit"
)

// Download Pipeline - these keys configure where and how album pictures are saved.
const (
	DownloadPath        = "download.path"
	DownloadConcurrency = "download.concurrency"
)

// HTTP Server - these keys configure the browsing API surface.
const (
	ServerAddress = "server.address"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
