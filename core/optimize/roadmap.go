package optimize

import "github.com/skyops/farecast/core/model"

// Roadmap partitions the scenario catalogue into three rollout phases by
// implementation complexity. Pure function of the scenario list.
func Roadmap(scenarios []model.OptimizationScenario) []model.RoadmapPhase {
	byTier := func(c model.Complexity) []model.OptimizationScenario {
		var out []model.OptimizationScenario
		for _, s := range scenarios {
			if s.Complexity == c {
				out = append(out, s)
			}
		}
		return out
	}
	return []model.RoadmapPhase{
		{
			Phase:            "Phase 1: Quick Wins",
			Scenarios:        byTier(model.ComplexityLow),
			Duration:         "1-3 weeks",
			ExpectedBenefits: "Immediate load factor improvements with minimal disruption",
		},
		{
			Phase:            "Phase 2: Strategic Adjustments",
			Scenarios:        byTier(model.ComplexityMedium),
			Duration:         "4-8 weeks",
			ExpectedBenefits: "Significant revenue gains through schedule and capacity optimization",
		},
		{
			Phase:            "Phase 3: Structural Changes",
			Scenarios:        byTier(model.ComplexityHigh),
			Duration:         "6-12 weeks",
			ExpectedBenefits: "Long-term efficiency gains through route consolidation and network redesign",
		},
	}
}
