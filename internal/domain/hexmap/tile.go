package hexmap

type Terrain string

const (
	TerrainPlain    Terrain = "PLAIN"
	TerrainForest   Terrain = "FOREST"
	TerrainMountain Terrain = "MOUNTAIN"
	TerrainWater    Terrain = "WATER"
	TerrainCave     Terrain = "CAVE"
	TerrainUrban    Terrain = "URBAN"
)

var AllTerrains = []Terrain{TerrainPlain, TerrainForest, TerrainMountain, TerrainWater, TerrainCave, TerrainUrban}

func (t Terrain) Valid() bool {
	switch t {
	case TerrainPlain, TerrainForest, TerrainMountain, TerrainWater, TerrainCave, TerrainUrban:
		return true
	}
	return false
}

type Resource string

const (
	ResourceIronOre     Resource = "IRON_ORE"
	ResourceGoldOre     Resource = "GOLD_ORE"
	ResourceHerbs       Resource = "HERBS"
	ResourceMonsterNest Resource = "MONSTER_NEST"
)

var AllResources = []Resource{ResourceIronOre, ResourceGoldOre, ResourceHerbs, ResourceMonsterNest}

func (r Resource) Valid() bool {
	switch r {
	case ResourceIronOre, ResourceGoldOre, ResourceHerbs, ResourceMonsterNest:
		return true
	}
	return false
}

type Building string

const (
	BuildingVillage    Building = "VILLAGE"
	BuildingTown       Building = "TOWN"
	BuildingCity       Building = "CITY"
	BuildingHouse      Building = "HOUSE"
	BuildingBlacksmith Building = "BLACKSMITH"
	BuildingInn        Building = "INN"
)

var AllBuildings = []Building{BuildingVillage, BuildingTown, BuildingCity, BuildingHouse, BuildingBlacksmith, BuildingInn}

func (b Building) Valid() bool {
	switch b {
	case BuildingVillage, BuildingTown, BuildingCity, BuildingHouse, BuildingBlacksmith, BuildingInn:
		return true
	}
	return false
}

type Tile struct {
	ID       string      `json:"id"`
	Q        int         `json:"q"`
	R        int         `json:"r"`
	Terrain  Terrain     `json:"terrain"`
	Resource *Resource   `json:"resource,omitempty"`
	Building *Building   `json:"building,omitempty"`
	Roads    []Direction `json:"roads,omitempty"`
}

func (t Tile) Coord() Axial {
	return Axial{Q: t.Q, R: t.R}
}
