package probe

import "embed"

// builtinProbesFS embeds the built-in probes directory.
//
//go:embed probes/*.yml
var builtinProbesFS embed.FS
