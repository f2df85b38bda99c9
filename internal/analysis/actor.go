package analysis

import (
	"math"
	"strings"
)

// Heuristics for actor-model and supervision-tree idioms. These operate on
// collections of module or function names rather than raw code, so callers
// that already resolved names (BEAM-family codebases mostly) can score
// process topology without another text scan.

// PatternEffectiveness rates how well a named pattern appears to work for a
// measured snippet, averaging three threshold indicators: complexity
// reduction, maintainability boost, and readability. The label is carried for
// the caller's bookkeeping and does not influence the value.
func PatternEffectiveness(label string, f Features) float64 {
	_ = label

	complexityReduction := 0.3
	if f.Cyclomatic > ThresholdEffectiveCyclomatic {
		complexityReduction = 0.8
	}
	maintainabilityBoost := 0.4
	if f.CommentRatio > ThresholdEffectiveComments {
		maintainabilityBoost = 0.9
	}
	readability := 0.5
	if f.AvgIdentifierLen > ThresholdEffectiveIdentLen {
		readability = 0.7
	}

	return (complexityReduction + maintainabilityBoost + readability) / 3.0
}

// SupervisionComplexity scores a module list by how many names look like
// supervisors or gen_servers. Empty input is exactly 0.0; otherwise a
// weighted count capped at ActorScoreCap.
func SupervisionComplexity(modules []string) float64 {
	if len(modules) == 0 {
		return 0.0
	}

	supervisors, genServers := 0, 0
	for _, name := range modules {
		if strings.Contains(name, "Supervisor") || strings.Contains(name, "supervisor") {
			supervisors++
		}
		if strings.Contains(name, "GenServer") || strings.Contains(name, "gen_server") {
			genServers++
		}
	}

	score := float64(supervisors)*WeightSupervisor + float64(genServers)*WeightGenServer
	return math.Min(score, ActorScoreCap)
}

// ActorComplexity scores a function list by spawn/send/receive idioms.
// Empty input is exactly 0.0; otherwise a weighted count capped at
// ActorScoreCap.
func ActorComplexity(functions []string) float64 {
	if len(functions) == 0 {
		return 0.0
	}

	spawns, sends, receives := 0, 0, 0
	for _, name := range functions {
		if strings.Contains(name, "spawn") || strings.Contains(name, "Task.async") {
			spawns++
		}
		if strings.Contains(name, "send") || strings.Contains(name, "cast") {
			sends++
		}
		if strings.Contains(name, "receive") || strings.Contains(name, "call") {
			receives++
		}
	}

	score := float64(spawns)*WeightSpawn + float64(sends)*WeightSend + float64(receives)*WeightReceive
	return math.Min(score, ActorScoreCap)
}
