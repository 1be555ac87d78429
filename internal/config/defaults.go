package config

const (
	// DefaultProjectPath is the directory holding the project file, .env and the manifest
	DefaultProjectPath = "."
	// DefaultScanRoot is the directory scanned for candidate paths
	DefaultScanRoot = "."
	// DefaultProjectFile is the optional YAML project configuration
	DefaultProjectFile = ".balpath.yaml"
	// DefaultOutputJSONFile is the default manifest file name
	DefaultOutputJSONFile = "manifest.json"
	// DefaultOutputJSONDir is the default manifest directory
	DefaultOutputJSONDir = ".balpath"
	// DefaultResolver labels paths by their parent directory
	DefaultResolver = "parent"
	// DefaultTable is the MySQL table the manifest is exported to
	DefaultTable = "balanced_paths"
	// SeedEnv overrides the shuffle seed
	SeedEnv = "BALPATH_SEED"
)

// DefaultPathsToIgnore are the directories never descended into while scanning
var DefaultPathsToIgnore = []string{
	"node_modules",
	"vendor",
	"__pycache__",
}
