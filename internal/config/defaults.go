package config

// DefaultVersion is the config format version written by and accepted by this build
const DefaultVersion = "1.0.0"

// SupportedVersions is the semver constraint a config file's version must satisfy
const SupportedVersions = "^1"

const (
	// DefaultSourceDir holds the exported feature maps; {subject} is substituted per subject
	DefaultSourceDir = "feature_maps_alexnet/+{subject}"

	// DefaultCatalogDir is the network folder inside the asset catalog
	DefaultCatalogDir = "Assets.xcassets/Alexnet"
)

// DefaultSubjects are the input samples organized by default
var DefaultSubjects = []string{"ship"}

// AlexNetLayers maps AlexNet's feature-extraction stages to catalog folders.
// Source indices skip the ReLU stages, which export no feature maps.
var AlexNetLayers = []Layer{
	{SourceIndex: 0, Name: "conv1", Count: 64},
	{SourceIndex: 2, Name: "maxp1", Count: 64},
	{SourceIndex: 3, Name: "conv2", Count: 192},
	{SourceIndex: 5, Name: "maxp2", Count: 192},
	{SourceIndex: 6, Name: "conv3", Count: 384},
	{SourceIndex: 8, Name: "conv4", Count: 256},
	{SourceIndex: 10, Name: "conv5", Count: 256},
	{SourceIndex: 12, Name: "maxp3", Count: 256},
}

// Default returns the built-in configuration
func Default() *Config {
	layers := make([]Layer, len(AlexNetLayers))
	copy(layers, AlexNetLayers)

	subjects := make([]string, len(DefaultSubjects))
	copy(subjects, DefaultSubjects)

	return &Config{
		Version:    DefaultVersion,
		SourceDir:  DefaultSourceDir,
		CatalogDir: DefaultCatalogDir,
		Subjects:   subjects,
		Layers:     layers,
		IndexMode:  IndexModeCompact,
	}
}
