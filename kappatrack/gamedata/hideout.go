package gamedata

import "sort"

// Target levels and counts the hideout tracker measures progress against.
// Keys are display names; values are the required level or item count.
var (
	hideoutTraderLevels = map[string]int{
		"Prapor":      4,
		"Therapist":   4,
		"Skier":       4,
		"Peacekeeper": 4,
		"Mechanic":    4,
		"Ragman":      4,
		"Jaeger":      4,
	}

	hideoutSkillLevels = map[string]int{
		"Strength":          51,
		"Endurance":         51,
		"Vitality":          51,
		"Health":            51,
		"Stress Resistance": 51,
	}

	hideoutItems = map[string]int{
		"FireKlean Gun Lube":          1,
		"Alkaline Cleaner":            2,
		"Aseptic Bandage":             2,
		"Awl":                         1,
		"Bolts":                       13,
		"Corrugated Hose":             4,
		"Electric Drill":              2,
		"Screw Nuts":                  13,
		"Metal Spare Parts":           8,
		"Pack of Screws":              9,
		"Shustrilo Sealing Foam":      6,
		"Toolset":                     2,
		"Wires":                       16,
		"Working LCD":                 2,
		"Xenomorph Sealing Foam":      4,
		"Military Power Filter":       2,
		"Gas Analyzer":                2,
		"Military Corrugated Tube":    2,
		"Light Bulb":                  10,
		"Printed Circuit Board":       6,
		"Phase Control Relay":         4,
		"Car Battery":                 4,
		"Spark Plug":                  4,
		"Electric Motor":              5,
		"Power Supply Unit":           2,
		"Military Cable":              6,
		"CPU Fan":                     12,
		"Analog Thermometer":          3,
		"Medical Bloodset":            3,
		"Ophthalmoscope":              3,
		"Pile of Meds":                3,
		"Saline Solution":             3,
		"Sodium Bicarbonate":          2,
		"Bottle of Hydrogen Peroxide": 3,
		"Leatherman Multitool":        2,
		"Silicone Tube":               4,
		"Radiator Helix":              3,
		"Water Filter":                8,
	}
)

// HideoutTraderLevels returns the trader loyalty level requirements.
func HideoutTraderLevels() map[string]int { return hideoutTraderLevels }

// HideoutSkillLevels returns the skill level requirements.
func HideoutSkillLevels() map[string]int { return hideoutSkillLevels }

// HideoutItems returns the item count requirements.
func HideoutItems() map[string]int { return hideoutItems }

// SortedKeys returns the keys of a requirement table in a stable order.
func SortedKeys(table map[string]int) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
