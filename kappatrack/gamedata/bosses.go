package gamedata

// BossChain describes the task chain gating a boss's final hunting task.
// TotalRequired counts the prerequisites plus the final task itself and is
// derived from the prerequisite list, never hand-maintained.
type BossChain struct {
	Boss          string
	FinalTask     string
	Prerequisites []string
	TotalRequired int
}

var bossOrder = []string{"Killa", "Goons", "Tagilla", "Shturman", "Reshala", "Glukhar"}

var bossChains = buildBossChains(map[string]struct {
	finalTask string
	tasks     []string
}{
	"Killa": {
		finalTask: "The Huntsman Path - Sellout",
		tasks: []string{
			"Acquaintance",
			"Only Business",
			"The Tarkov Shooter - Part 1",
			"The Tarkov Shooter - Part 2",
			"The Tarkov Shooter - Part 3",
			"The Survivalist Path - Unprotected",
			"The Survivalist Path - Thrifty",
			"The Survivalist Path - Zhivchik",
			"The Survivalist Path - Wounded Beast",
			"The Survivalist Path - Tough Guy",
			"The Huntsman Path - Secured Perimeter",
			"The Huntsman Path - Forest Cleaning",
			"Big Sale",
			"Make ULTRA Great Again",
			"The Blood of War - Part 1",
			"Dressed to Kill",
			"Database - Part 1",
			"Database - Part 2",
			"Gratitude",
			"Sales Night",
		},
	},
	"Goons": {
		finalTask: "Stray Dogs",
		tasks: []string{
			"Acquaintance",
			"Only Business",
			"The Tarkov Shooter - Part 1",
			"The Tarkov Shooter - Part 2",
			"The Tarkov Shooter - Part 3",
			"The Survivalist Path - Unprotected",
			"The Survivalist Path - Thrifty",
			"The Survivalist Path - Zhivchik",
			"The Survivalist Path - Wounded Beast",
			"The Survivalist Path - Tough Guy",
			"The Huntsman Path - Secured Perimeter",
			"The Huntsman Path - Forest Cleaning",
			"Big Sale",
			"Make ULTRA Great Again",
			"The Blood of War - Part 1",
			"Dressed to Kill",
			"Database - Part 1",
			"Database - Part 2",
			"Gratitude",
			"Sales Night",
			"The Huntsman Path - Trophy",
			"The Huntsman Path - Woods Keeper",
			"The Huntsman Path - Sellout",
		},
	},
	"Tagilla": {
		finalTask: "The Huntsman Path - Factory Chief",
		tasks: []string{
			"Acquaintance",
			"The Tarkov Shooter - Part 1",
			"The Tarkov Shooter - Part 2",
			"The Tarkov Shooter - Part 3",
			"The Survivalist Path - Unprotected",
			"The Survivalist Path - Thrifty",
			"The Survivalist Path - Zhivchik",
			"The Survivalist Path - Wounded Beast",
			"The Survivalist Path - Tough Guy",
			"The Huntsman Path - Secured Perimeter",
			"The Huntsman Path - Forest Cleaning",
			"Saving The Mole",
			"Gunsmith - Part 1",
			"Gunsmith - Part 2",
			"Signal - Part 1",
			"Signal - Part 2",
			"Scout",
		},
	},
	"Shturman": {
		finalTask: "The Huntsman Path - Woods Keeper",
		tasks: []string{
			"Acquaintance",
			"The Tarkov Shooter - Part 1",
			"The Tarkov Shooter - Part 2",
			"The Tarkov Shooter - Part 3",
			"The Survivalist Path - Unprotected",
			"The Survivalist Path - Thrifty",
			"The Survivalist Path - Zhivchik",
			"The Survivalist Path - Wounded Beast",
			"The Survivalist Path - Tough Guy",
			"The Huntsman Path - Secured Perimeter",
			"First In Line",
			"Shortage",
			"Sanitary Standards - Part 1",
			"Sanitary Standards - Part 2",
			"Painkiller",
			"Pharmacist",
			"Supply Plans",
		},
	},
	"Reshala": {
		finalTask: "The Huntsman Path - Trophy",
		tasks: []string{
			"Acquaintance",
			"The Tarkov Shooter - Part 1",
			"The Tarkov Shooter - Part 2",
			"The Tarkov Shooter - Part 3",
			"The Survivalist Path - Unprotected",
			"The Survivalist Path - Thrifty",
			"The Survivalist Path - Zhivchik",
			"The Survivalist Path - Wounded Beast",
			"The Survivalist Path - Tough Guy",
			"The Huntsman Path - Secured Perimeter",
		},
	},
	"Glukhar": {
		finalTask: "The Huntsman Path - Eraser - Part 1",
		tasks: []string{
			"Acquaintance",
			"The Survivalist Path - Unprotected",
			"The Survivalist Path - Thrifty",
			"The Delicious Sausage",
			"Reserve",
			"Pest Control",
		},
	},
})

func buildBossChains(raw map[string]struct {
	finalTask string
	tasks     []string
}) map[string]BossChain {
	chains := make(map[string]BossChain, len(raw))
	for boss, data := range raw {
		chains[boss] = BossChain{
			Boss:          boss,
			FinalTask:     data.finalTask,
			Prerequisites: data.tasks,
			TotalRequired: len(data.tasks) + 1,
		}
	}
	return chains
}

// Bosses returns every boss chain in display order.
func Bosses() []BossChain {
	chains := make([]BossChain, 0, len(bossOrder))
	for _, boss := range bossOrder {
		chains = append(chains, bossChains[boss])
	}
	return chains
}

// Boss looks up a single boss chain by name.
func Boss(name string) (BossChain, bool) {
	chain, ok := bossChains[name]
	return chain, ok
}
