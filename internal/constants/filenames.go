package constants

const (
	// ContentsFile is the descriptor file asset catalogs expect in every folder
	ContentsFile = "Contents.json"

	// ImageSetExt is the directory suffix for catalog image sets
	ImageSetExt = ".imageset"

	// ImageExt is the extension of every copied feature map
	ImageExt = ".png"

	// ConfigFile is the config file picked up from the working directory
	ConfigFile = "fmcat.toml"

	// LogFile is the rotating log file name inside the cache directory
	LogFile = "fmcat.log"

	// SourceFeatureMapInfix joins layer index and 1-based map index in source names
	SourceFeatureMapInfix = "_feature_map_"
)

const (
	// DescriptorAuthor is written into every descriptor's info block
	DescriptorAuthor = "xcode"

	// DescriptorVersion is the catalog format version in every info block
	DescriptorVersion = 1

	// IdiomUniversal is the idiom declared for every image-set entry
	IdiomUniversal = "universal"
)
