package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default results file name
	DefaultOutputJSONFile = "run-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultWorkers is the default number of workers
	DefaultWorkers = 4
	// DefaultLogLevel is the default logging level
	DefaultLogLevel = "info"
	// DefaultCronSpec is the default soak schedule
	DefaultCronSpec = "@every 1m"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning
// for suite files
var DefaultPathsToIgnore = []string{
	".git",
	"vendor",
	"node_modules",
	"storage",
	"testdata",
}
