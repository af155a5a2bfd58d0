package datapacks

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Layered game data resolution through packages"
	MsgListShort       = "List known packages and their dependencies"
	MsgSearchPathShort = "Show the search path of the active package"
	MsgResolveShort    = "Resolve a resource name to a file"
	MsgWritePathShort  = "Show where a resource would be written"
	MsgRelativeShort   = "Convert an absolute path to a resource name"
	MsgSavegameShort   = "Show the files of a savegame slot"
	MsgVersionShort    = "Print version information"
	MsgManShort        = "Generate man pages"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat = "datapacks version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten    = "Man pages written to %s"

	// Error messages
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrRoots         = "failed to determine data roots: %w"
	MsgErrInitResolver  = "failed to initialize resolver: %w"
	MsgErrFormat        = "invalid --format: %w"
	MsgErrNotFound      = "%s %q not found in any search path root"
	MsgErrInvalidSlot   = "invalid savegame slot %q"
	MsgErrNoCommand     = "no command specified"
	MsgErrCreateManDir  = "failed to create man page directory: %w"
	MsgErrGenerateMan   = "failed to generate man pages: %w"
	MsgErrNotAbsolute   = "path %q is not absolute"
	MsgErrSavegameDir   = "failed to create savegame directory: %w"
	MsgWarnConfigActive = "Ignoring unknown package from configuration"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/datapacks/config.toml)"
	MsgFlagUserDir = "User data root (overrides data.user_dir)"
	MsgFlagGameDir = "Game data root (overrides data.game_dir)"
	MsgFlagPackage = "Active package (overrides packages.active)"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagFormat  = "Output format: auto, term, text, json or yaml"
	MsgFlagCreate  = "Create the savegame directory"
	MsgFlagManDir  = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/relativize-long.txt
	msgRelativizeLongRaw string
	MsgRelativizeLong    = strings.TrimSpace(msgRelativizeLongRaw)

	//go:embed msgs/savegame-long.txt
	msgSavegameLongRaw string
	MsgSavegameLong    = strings.TrimSpace(msgSavegameLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
