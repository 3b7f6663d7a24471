// Package content embeds the default game content.
package content

import _ "embed"

// BreakfastRun is the compiled-in content used when no content file is configured.
//
//go:embed breakfast_run.yaml
var BreakfastRun []byte
