package maestro

// CommandSpec describes the fixed shape of a serial command.
type CommandSpec struct {
	Opcode Opcode
	// Operands is the number of data bytes following the opcode.
	Operands int
	// Response is the number of bytes the device replies with.
	Response int
}

var commandSpecs = map[Opcode]CommandSpec{
	OpSetTarget:                          {OpSetTarget, 3, 0},
	OpSetSpeed:                           {OpSetSpeed, 3, 0},
	OpSetAcceleration:                    {OpSetAcceleration, 3, 0},
	OpSetPWM:                             {OpSetPWM, 4, 0},
	OpGetPosition:                        {OpGetPosition, 1, 2},
	OpGetMovingState:                     {OpGetMovingState, 0, 1},
	OpGetErrors:                          {OpGetErrors, 0, 2},
	OpGoHome:                             {OpGoHome, 0, 0},
	OpStopScript:                         {OpStopScript, 0, 0},
	OpRestartScriptAtSubroutine:          {OpRestartScriptAtSubroutine, 1, 0},
	OpRestartScriptAtSubroutineWithParam: {OpRestartScriptAtSubroutineWithParam, 3, 0},
	OpGetScriptStatus:                    {OpGetScriptStatus, 0, 1},
	OpMiniSSC:                            {OpMiniSSC, 2, 0},
}

// SpecOf returns the command shape of op.
func SpecOf(op Opcode) (CommandSpec, bool) {
	spec, ok := commandSpecs[op]
	return spec, ok
}
