package gamedata

import "strings"

// SubTask is a single hand-in item a Lightkeeper quest asks for.
type SubTask struct {
	Item        string `json:"item"`
	FoundInRaid bool   `json:"foundInRaid"`
}

// LightkeeperQuest is one entry of the Lightkeeper checklist, in the order
// the quest line is normally worked through.
type LightkeeperQuest struct {
	Name     string    `json:"name"`
	WikiURL  string    `json:"wikiUrl"`
	Trader   string    `json:"trader"`
	Location string    `json:"location"`
	SubTasks []SubTask `json:"subTasks,omitempty"`
}

const wikiBase = "https://escapefromtarkov.fandom.com/wiki/"

// Pages whose slug does not follow the plain space-to-underscore rule.
var wikiOverrides = map[string]string{
	"What’s on the Flash Drive?":  wikiBase + "What%E2%80%99s_on_the_Flash_Drive%3F",
	"Chemical - Part 4 (choice)":  wikiBase + "Chemical_-_Part_4",
	"Delivery from the Past":      wikiBase + "Delivery_From_the_Past",
}

func wikiURL(name string) string {
	if url, ok := wikiOverrides[name]; ok {
		return url
	}
	return wikiBase + strings.ReplaceAll(name, " ", "_")
}

type questSeed struct {
	name     string
	trader   string
	location string
}

var lightkeeperSeeds = []questSeed{
	{"Burning Rubber", "Skier", "Customs"},
	{"Debut", "Prapor", "Customs"},
	{"First in Line", "Therapist", "Ground Zero"},
	{"Luxurious Life", "Prapor", "Streets of Tarkov"},
	{"Saving the Mole", "Mechanic", "Customs"},
	{"Shooting Cans", "Prapor", "Ground Zero"},
	{"Shortage", "Therapist", "Customs"},
	{"Acquaintance", "Jaeger", "Woods"},
	{"Background Check", "Prapor", "Customs"},
	{"Gunsmith - Part 1", "Mechanic", "Any"},
	{"Introduction", "Mechanic", "Woods"},
	{"The Huntsman Path - Forest Cleaning", "Jaeger", "Woods"},
	{"The Huntsman Path - Secured Perimeter", "Jaeger", "Customs"},
	{"The Survivalist Path - Thrifty", "Jaeger", "Any"},
	{"The Survivalist Path - Tough Guy", "Jaeger", "Any"},
	{"The Survivalist Path - Unprotected but Dangerous", "Jaeger", "Any"},
	{"The Survivalist Path - Wounded Beast", "Jaeger", "Any"},
	{"The Survivalist Path - Zhivchik", "Jaeger", "Any"},
	{"The Tarkov Shooter - Part 1", "Jaeger", "Any"},
	{"The Tarkov Shooter - Part 2", "Jaeger", "Any"},
	{"The Tarkov Shooter - Part 3", "Jaeger", "Any"},
	{"The Tarkov Shooter - Part 4", "Jaeger", "Any"},
	{"The Tarkov Shooter - Part 5", "Jaeger", "Any"},
	{"Sanitary Standards - Part 1", "Therapist", "Customs"},
	{"BP Depot", "Prapor", "Customs"},
	{"Delivery from the Past", "Prapor", "Customs"},
	{"Gunsmith - Part 2", "Mechanic", "Any"},
	{"Supplier", "Skier", "Customs"},
	{"Bad Rep Evidence", "Prapor", "Customs"},
	{"Gunsmith - Part 3", "Mechanic", "Any"},
	{"The Extortionist", "Skier", "Customs"},
	{"Golden Swag", "Skier", "Customs"},
	{"Painkiller", "Therapist", "Any"},
	{"Sanitary Standards - Part 2", "Therapist", "Customs"},
	{"What’s on the Flash Drive?", "Skier", "Customs"},
	{"Friend From the West - Part 1", "Skier", "Customs"},
	{"Friend From the West - Part 2", "Skier", "Customs"},
	{"Ice Cream Cones", "Prapor", "Factory"},
	{"Chemical - Part 1", "Skier", "Customs"},
	{"Chemical - Part 2", "Skier", "Customs"},
	{"Fishing Gear", "Jaeger", "Shoreline"},
	{"Gunsmith - Part 4", "Mechanic", "Any"},
	{"Gunsmith - Part 5", "Mechanic", "Any"},
	{"Pharmacist", "Therapist", "Customs"},
	{"Scrap Metal", "Peacekeeper", "Shoreline"},
	{"Tigr Safari", "Jaeger", "Shoreline"},
	{"Chemical - Part 3", "Skier", "Customs"},
	{"Chemical - Part 4 (choice)", "Skier", "Factory"},
	{"Eagle Eye", "Peacekeeper", "Woods"},
	{"Humanitarian Supplies", "Peacekeeper", "Shoreline"},
	{"Broadcast - Part 1", "Peacekeeper", "Shoreline"},
	{"Cargo X - Part 1", "Peacekeeper", "Shoreline"},
	{"Cargo X - Part 2", "Peacekeeper", "Shoreline"},
	{"Cargo X - Part 3", "Peacekeeper", "Shoreline"},
	{"Cargo X - Part 4", "Peacekeeper", "Shoreline"},
	{"Farming - Part 1", "Mechanic", "Interchange"},
	{"Farming - Part 2", "Mechanic", "Interchange"},
	{"Spa Tour - Part 1", "Peacekeeper", "Shoreline"},
	{"Spa Tour - Part 2", "Peacekeeper", "Shoreline"},
	{"Spa Tour - Part 3", "Peacekeeper", "Shoreline"},
	{"Spa Tour - Part 4", "Peacekeeper", "Shoreline"},
	{"Spa Tour - Part 5", "Peacekeeper", "Shoreline"},
	{"Spa Tour - Part 6", "Peacekeeper", "Shoreline"},
	{"Spa Tour - Part 7", "Peacekeeper", "Shoreline"},
	{"The Cult - Part 1", "Therapist", "Customs"},
	{"The Cult - Part 2", "Therapist", "Woods"},
	{"Gunsmith - Part 6", "Mechanic", "Any"},
	{"A Fuel Matter", "Skier", "Customs"},
	{"Big Sale", "Ragman", "Interchange"},
	{"Broadcast - Part 2", "Peacekeeper", "Shoreline"},
	{"Database - Part 1", "Ragman", "Interchange"},
	{"Database - Part 2", "Ragman", "Interchange"},
	{"Gunsmith - Part 7", "Mechanic", "Any"},
	{"Make ULTRA Great Again", "Ragman", "Interchange"},
	{"Only Business", "Ragman", "Any"},
	{"Shaking up the Teller", "Ragman", "Interchange"},
	{"Gunsmith - Part 8", "Mechanic", "Any"},
	{"Seaside Vacation", "Peacekeeper", "Shoreline"},
	{"The Punisher - Part 1", "Prapor", "Woods"},
	{"Setup", "Skier", "Customs"},
	{"The Punisher - Part 2", "Prapor", "Customs"},
	{"Gunsmith - Part 9", "Mechanic", "Any"},
	{"The Punisher - Part 3", "Prapor", "Any"},
	{"Courtesy Visit", "Jaeger", "Shoreline"},
	{"Gunsmith - Part 10", "Mechanic", "Any"},
	{"Health Care Privacy - Part 1", "Therapist", "Shoreline"},
	{"Health Care Privacy - Part 2", "Therapist", "Shoreline"},
	{"The Punisher - Part 4", "Prapor", "Any"},
	{"Informed Means Armed", "Peacekeeper", "Lighthouse"},
	{"Lost Contact", "Mechanic", "Lighthouse"},
	{"Chumming", "Lightkeeper", "Lighthouse"},
	{"Debtor", "Lightkeeper", "Lighthouse"},
	{"House Arrest - Part 1", "Lightkeeper", "Streets of Tarkov"},
	{"Assessment - Part 1", "Lightkeeper", "Lighthouse"},
	{"Assessment - Part 2", "Lightkeeper", "Lighthouse"},
	{"Assessment - Part 3", "Lightkeeper", "Lighthouse"},
	{"Getting Acquainted", "Lightkeeper", "Lighthouse"},
	{"Key to the Tower", "Lightkeeper", "Lighthouse"},
	{"Knock-Knock", "Lightkeeper", "Lighthouse"},
	{"Network Provider - Part 1", "Lightkeeper", "Lighthouse"},
	{"Network Provider - Part 2", "Lightkeeper", "Lighthouse"},
}

var lightkeeperSubTasks = map[string][]SubTask{
	"First in Line": {
		{Item: "Any different medical item from the list on the wiki (1/3)", FoundInRaid: true},
		{Item: "Any different medical item from the list on the wiki (2/3)", FoundInRaid: true},
		{Item: "Any different medical item from the list on the wiki (3/3)", FoundInRaid: true},
	},
	"Shortage": {
		{Item: "Salewa first aid kit", FoundInRaid: true},
		{Item: "Salewa first aid kit", FoundInRaid: true},
		{Item: "Salewa first aid kit", FoundInRaid: true},
	},
	"Acquaintance": {
		{Item: "Iskra ration pack", FoundInRaid: true},
		{Item: "Iskra ration pack", FoundInRaid: true},
		{Item: "Iskra ration pack", FoundInRaid: true},
		{Item: "Pack of instant noodles", FoundInRaid: true},
		{Item: "Pack of instant noodles", FoundInRaid: true},
		{Item: "Can of beef stew (Large)", FoundInRaid: true},
		{Item: "Can of beef stew (Large)", FoundInRaid: true},
	},
	"Sanitary Standards - Part 1": {
		{Item: "Gas analyzer", FoundInRaid: true},
	},
	"Supplier": {
		{Item: "BNTI Module-3M body armor", FoundInRaid: true},
		{Item: "TOZ-106 20ga bolt-action shotgun", FoundInRaid: true},
	},
	"Painkiller": {
		{Item: "Morphine injector", FoundInRaid: true},
		{Item: "Morphine injector", FoundInRaid: true},
		{Item: "Morphine injector", FoundInRaid: true},
		{Item: "Morphine injector", FoundInRaid: true},
	},
	"Sanitary Standards - Part 2": {
		{Item: "Gas analyzer", FoundInRaid: true},
		{Item: "Gas analyzer", FoundInRaid: true},
	},
	"What’s on the Flash Drive?": {
		{Item: "Secure Flash drive", FoundInRaid: true},
		{Item: "Secure Flash drive", FoundInRaid: true},
	},
	"Ice Cream Cones": {
		{Item: "AK-74 5.45x39 6L31 60-round magazine", FoundInRaid: false},
		{Item: "AK-74 5.45x39 6L31 60-round magazine", FoundInRaid: false},
		{Item: "AK-74 5.45x39 6L31 60-round magazine", FoundInRaid: false},
	},
	"Farming - Part 2": {
		{Item: "Power cord", FoundInRaid: true},
		{Item: "Power cord", FoundInRaid: true},
		{Item: "T-Shaped plug", FoundInRaid: true},
		{Item: "T-Shaped plug", FoundInRaid: true},
		{Item: "T-Shaped plug", FoundInRaid: true},
		{Item: "T-Shaped plug", FoundInRaid: true},
		{Item: "Printed circuit board", FoundInRaid: true},
		{Item: "Printed circuit board", FoundInRaid: true},
	},
	"Spa Tour - Part 3": {
		{Item: "WD-40 (100ml)", FoundInRaid: true},
		{Item: "WD-40 (400ml)", FoundInRaid: true},
		{Item: "Clin window cleaner", FoundInRaid: true},
		{Item: "Clin window cleaner", FoundInRaid: true},
		{Item: "Corrugated hose", FoundInRaid: true},
		{Item: "Corrugated hose", FoundInRaid: true},
		{Item: "Ox bleach", FoundInRaid: true},
		{Item: "Ox bleach", FoundInRaid: true},
	},
	"Spa Tour - Part 7": {
		{Item: "Morphine injector", FoundInRaid: true},
		{Item: "Morphine injector", FoundInRaid: true},
		{Item: "Morphine injector", FoundInRaid: true},
		{Item: "Morphine injector", FoundInRaid: true},
		{Item: "Alkaline cleaner for heat exchangers", FoundInRaid: true},
		{Item: "Alkaline cleaner for heat exchangers", FoundInRaid: true},
		{Item: "Corrugated hose", FoundInRaid: true},
		{Item: "Corrugated hose", FoundInRaid: true},
		{Item: "Propane tank (5L)", FoundInRaid: true},
		{Item: "Propane tank (5L)", FoundInRaid: true},
	},
	"The Punisher - Part 2": {
		{Item: "Lower half-mask", FoundInRaid: true},
		{Item: "Lower half-mask", FoundInRaid: true},
		{Item: "Lower half-mask", FoundInRaid: true},
		{Item: "Lower half-mask", FoundInRaid: true},
		{Item: "Lower half-mask", FoundInRaid: true},
		{Item: "Lower half-mask", FoundInRaid: true},
		{Item: "Lower half-mask", FoundInRaid: true},
	},
	"The Punisher - Part 4": {
		{Item: "Bars A-2607 95Kh18 knife", FoundInRaid: true},
		{Item: "Bars A-2607 95Kh18 knife", FoundInRaid: true},
		{Item: "Bars A-2607 95Kh18 knife", FoundInRaid: true},
		{Item: "Bars A-2607 95Kh18 knife", FoundInRaid: true},
		{Item: "Bars A-2607 95Kh18 knife", FoundInRaid: true},
	},
	"Network Provider - Part 1": {
		{Item: "Electronic components", FoundInRaid: true},
		{Item: "Electronic components", FoundInRaid: true},
		{Item: "Electronic components", FoundInRaid: true},
		{Item: "Electronic components", FoundInRaid: true},
		{Item: "Military COFDM Wireless Signal Transmitter", FoundInRaid: true},
		{Item: "Military COFDM Wireless Signal Transmitter", FoundInRaid: true},
		{Item: "Military COFDM Wireless Signal Transmitter", FoundInRaid: true},
		{Item: "Military COFDM Wireless Signal Transmitter", FoundInRaid: true},
		{Item: "Gas analyzer", FoundInRaid: true},
		{Item: "Gas analyzer", FoundInRaid: true},
		{Item: "Gas analyzer", FoundInRaid: true},
		{Item: "Gas analyzer", FoundInRaid: true},
		{Item: "Broken GPhone smartphone", FoundInRaid: true},
		{Item: "Broken GPhone smartphone", FoundInRaid: true},
		{Item: "Broken GPhone smartphone", FoundInRaid: true},
		{Item: "Broken GPhone smartphone", FoundInRaid: true},
	},
}

var lightkeeperQuests = buildLightkeeperQuests()

func buildLightkeeperQuests() []LightkeeperQuest {
	quests := make([]LightkeeperQuest, 0, len(lightkeeperSeeds))
	for _, seed := range lightkeeperSeeds {
		quests = append(quests, LightkeeperQuest{
			Name:     seed.name,
			WikiURL:  wikiURL(seed.name),
			Trader:   seed.trader,
			Location: seed.location,
			SubTasks: lightkeeperSubTasks[seed.name],
		})
	}
	return quests
}

// LightkeeperQuests returns the full quest line in checklist order.
func LightkeeperQuests() []LightkeeperQuest {
	return lightkeeperQuests
}

// LightkeeperQuestByName looks up a quest by its exact name.
func LightkeeperQuestByName(name string) (LightkeeperQuest, bool) {
	for _, quest := range lightkeeperQuests {
		if quest.Name == name {
			return quest, true
		}
	}
	return LightkeeperQuest{}, false
}
