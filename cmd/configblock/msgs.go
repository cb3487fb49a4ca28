package configblock

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render markdown configuration blocks"
	MsgRenderShort     = "Render one markdown file to stdout"
	MsgBuildShort      = "Render a directory of markdown files"
	MsgFormatsShort    = "List known format tags and their labels"
	MsgConfigShort     = "Manage configuration"
	MsgConfigInitShort = "Write a configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgBuiltFormat       = "Built %d file(s) into %s\n"
	MsgConfigWritten     = "Wrote %s\n"
	MsgVersionFormat     = "configblock version %s (commit %s, built %s)\n"
	MsgFormatsCount      = "%d formats\n"
	MsgNoCommandSpecified = "no command specified"

	// Error messages
	MsgErrConfigExists = "%s already exists, use --force to overwrite"
	MsgErrOutputFormat = "unknown output format %q (want table, yaml, toml or json)"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Read configuration from this file"
	MsgFlagBackend    = "Output backend (html or latex)"
	MsgFlagOut        = "Output directory"
	MsgFlagStandalone = "Emit complete LaTeX documents"
	MsgFlagOutput     = "Output format (table, yaml, toml or json)"
	MsgFlagStdout     = "Print the configuration instead of writing a file"
	MsgFlagForce      = "Overwrite an existing file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/formats-long.txt
	msgFormatsLongRaw string
	MsgFormatsLong    = strings.TrimSpace(msgFormatsLongRaw)

	//go:embed msgs/config-init-long.txt
	msgConfigInitLongRaw string
	MsgConfigInitLong    = strings.TrimSpace(msgConfigInitLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
