// Package all registers all shell commands.
package all

import (
	// command packages register with sh in init.
	_ "github.com/robotalks/maestro.go/pkg/cli/cmds/params"
	_ "github.com/robotalks/maestro.go/pkg/cli/cmds/script"
	_ "github.com/robotalks/maestro.go/pkg/cli/cmds/servo"
)
