package gamedata

import "sort"

// PrestigeRequirement holds the thresholds a profile must meet for one
// prestige level. A kill-count threshold of zero means the check does not
// apply for that level.
type PrestigeRequirement struct {
	Name               string   `json:"name"`
	Level              int      `json:"level"`
	Strength           int      `json:"strength"`
	Endurance          int      `json:"endurance"`
	Charisma           int      `json:"charisma"`
	IntelligenceCenter int      `json:"intelligenceCenter"`
	Security           int      `json:"security"`
	RestSpace          int      `json:"restSpace"`
	Roubles            int64    `json:"roubles"`
	Figurines          []string `json:"figurines"`
	ScavsKilled        int      `json:"scavsKilled"`
	PMCsKilled         int      `json:"pmcsKilled"`
	LabsExtracted      bool     `json:"labsExtracted"`
}

var prestigeRequirements = map[int]PrestigeRequirement{
	1: {
		Name:               "A New Beginning - Prestige 1",
		Level:              55,
		Strength:           20,
		Endurance:          20,
		Charisma:           15,
		IntelligenceCenter: 2,
		Security:           3,
		RestSpace:          3,
		Roubles:            20000000,
		Figurines: []string{
			"Bear operative figurine",
			"Cultist figurine",
			"Den figurine",
			"Killa figurine",
			"Politician Mutkevich figurine",
			"Reshala figurine",
			"Ryzhy figurine",
			"Scav figurine",
			"Tagilla figurine",
			"USEC operative figurine",
		},
		ScavsKilled:   50,
		PMCsKilled:    0,
		LabsExtracted: true,
	},
	2: {
		Name:               "A New Beginning - Prestige 2",
		Level:              55,
		Strength:           20,
		Endurance:          20,
		Charisma:           15,
		IntelligenceCenter: 2,
		Security:           3,
		RestSpace:          3,
		Roubles:            20000000,
		Figurines: []string{
			"Bear operative figurine (FIR)",
			"Cultist figurine (FIR)",
			"Den figurine (FIR)",
			"Killa figurine (FIR)",
			"Politician Mutkevich figurine (FIR)",
			"Reshala figurine (FIR)",
			"Ryzhy figurine (FIR)",
			"Scav figurine (FIR)",
			"Tagilla figurine (FIR)",
			"USEC operative figurine (FIR)",
		},
		ScavsKilled:   0,
		PMCsKilled:    15,
		LabsExtracted: true,
	},
}

// PrestigeRequirementFor looks up the requirement set for one prestige level.
func PrestigeRequirementFor(level int) (PrestigeRequirement, bool) {
	req, ok := prestigeRequirements[level]
	return req, ok
}

// PrestigeLevels returns the known prestige levels in ascending order.
func PrestigeLevels() []int {
	levels := make([]int, 0, len(prestigeRequirements))
	for level := range prestigeRequirements {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}
