package gamedata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed collector_items.json
var collectorItemsJSON []byte

// CollectorItem is one item the Collector quest asks for, in display order.
type CollectorItem struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
	Img   string `json:"img"`
}

var collectorItems = mustLoadCollectorItems()

func mustLoadCollectorItems() []CollectorItem {
	var items []CollectorItem
	if err := json.Unmarshal(collectorItemsJSON, &items); err != nil {
		panic(fmt.Sprintf("gamedata: bad collector_items.json: %v", err))
	}
	return items
}

// CollectorItems returns the full item list sorted by order.
func CollectorItems() []CollectorItem {
	return collectorItems
}
