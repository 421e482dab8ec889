package prompt

import "promptstudio/internal/domain"

// MaxConstraintBlocks is the number of constraint blocks above which the
// prompt is flagged as overly restrictive.
const MaxConstraintBlocks = 2

// Lint returns structural warnings for the prompt being built.
func Lint(blocks []domain.Block) []string {
	types := domain.TypeSet(blocks)
	warnings := []string{}

	if !types[domain.BlockTypeSystem] && !types[domain.BlockTypePersona] {
		warnings = append(warnings, "Consider adding a 'System Role' or 'Persona' block for clear AI behavior.")
	}
	if !types[domain.BlockTypeInstruction] && !types[domain.BlockTypeTask] {
		warnings = append(warnings, "It's good practice to include an 'Instruction' or 'Task' block.")
	}
	if domain.CountType(blocks, domain.BlockTypeConstraint) > MaxConstraintBlocks {
		warnings = append(warnings, "Too many 'Constraint' blocks might make the prompt overly restrictive.")
	}
	return warnings
}
