package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/skyops/farecast/core/model"
)

// Fixture is the on-disk shape of a catalog snapshot.
type Fixture struct {
	Flights []model.Flight `json:"flights"`
	Routes  []model.Route  `json:"routes"`
}

// LoadFile reads a catalog fixture from a JSON file.
func LoadFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read fixture: %w", err)
	}
	var fx Fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("catalog: parse fixture: %w", err)
	}
	return NewMemoryStore(fx.Flights, fx.Routes)
}
