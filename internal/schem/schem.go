package schem

// Block identifiers and template constants. DataVersion pins the game
// data format the templates were authored against (1.21.1).
const (
	DataVersion = 3955

	ArmBlockID      = "create:mechanical_arm"
	ConveyorBlockID = "create:chain_conveyor"

	// PhaseSearchInputs is the arm state machine's initial phase.
	PhaseSearchInputs = "SEARCH_INPUTS"
)

// Mode is an interaction point's direction: whether the arm takes items
// from the target or deposits items onto it.
type Mode string

const (
	ModeTake    Mode = "TAKE"
	ModeDeposit Mode = "DEPOSIT"
)

// Valid reports whether m is one of the two known modes.
func (m Mode) Valid() bool {
	return m == ModeTake || m == ModeDeposit
}

// Structure is the root of a structure file, parameterized by the block
// entity type of its single block. The size and pos fields must encode
// as TagList of TagInt, not TagIntArray; the "list" tag option pins that.
type Structure[E any] struct {
	Size        []int32        `nbt:"size,list" json:"size"`
	Blocks      []Block[E]     `nbt:"blocks" json:"blocks"`
	Palette     []PaletteEntry `nbt:"palette" json:"palette"`
	Entities    []Entity       `nbt:"entities" json:"entities"`
	DataVersion int32          `nbt:"DataVersion" json:"DataVersion"`
}

// ArmStructure is a structure holding one mechanical arm block.
type ArmStructure = Structure[*ArmBlockEntity]

// ConveyorStructure is a structure holding one chain conveyor block.
type ConveyorStructure = Structure[*ConveyorBlockEntity]

// Block is one placed block: a palette index, a position within the
// structure and the block entity data.
type Block[E any] struct {
	State int32   `nbt:"state" json:"state"`
	Pos   []int32 `nbt:"pos,list" json:"pos"`
	NBT   E       `nbt:"nbt" json:"nbt"`
}

// PaletteEntry names a block state. Properties is omitted entirely when
// the block state has none (the conveyor case).
type PaletteEntry struct {
	Name       string           `nbt:"Name" json:"Name"`
	Properties *BlockProperties `nbt:"Properties,omitempty" json:"Properties,omitempty"`
}

// BlockProperties holds block state properties used by the machine
// palettes.
type BlockProperties struct {
	Ceiling string `nbt:"ceiling,omitempty" json:"ceiling,omitempty"`
}

// Entity is a structure-file entity record. Machine templates are a
// single block and never carry entities, so the list stays empty.
type Entity struct {
	BlockPos []int32        `nbt:"blockPos,list" json:"blockPos"`
	Pos      []float64      `nbt:"pos" json:"pos"`
	NBT      map[string]any `nbt:"nbt" json:"nbt"`
}

// ArmBlockEntity is the mechanical arm's block entity data.
type ArmBlockEntity struct {
	NeedsSpeedUpdate  int8               `nbt:"NeedsSpeedUpdate" json:"NeedsSpeedUpdate"`
	Phase             string             `nbt:"Phase" json:"Phase"`
	InteractionPoints []InteractionPoint `nbt:"InteractionPoints" json:"InteractionPoints"`
	ID                string             `nbt:"id" json:"id"`
	Speed             float32            `nbt:"Speed" json:"Speed"`
	Powered           int8               `nbt:"Powered" json:"Powered"`
	Goggles           int8               `nbt:"Goggles" json:"Goggles"`
	ScrollValue       int32              `nbt:"ScrollValue" json:"ScrollValue"`
	MovementProgress  float32            `nbt:"MovementProgress" json:"MovementProgress"`
	TargetPointIndex  int32              `nbt:"TargetPointIndex" json:"TargetPointIndex"`
	HeldItem          ItemStack          `nbt:"HeldItem" json:"HeldItem"`
}

// InteractionPoint is a target the arm reads to decide pick-up/drop-off
// behavior. Pos is stored relative to the arm's origin as a TagIntArray.
// Entries are append-only; their index is referenced by TargetPointIndex.
//
// Mode is a plain string here, not the Mode type: the NBT codec only
// writes the value of string-kinded fields when they are declared as
// string, so a named type would serialize as an empty TagString.
// Validation happens before construction, against the Mode constants.
type InteractionPoint struct {
	Type string  `nbt:"Type" json:"Type"`
	Mode string  `nbt:"Mode" json:"Mode"`
	Pos  []int32 `nbt:"Pos" json:"Pos"`
}

// ItemStack is the held-item compound. Templates always start with an
// empty held item, so only the empty form is ever emitted.
type ItemStack struct{}

// ConveyorBlockEntity is the chain conveyor's block entity data.
// Connections encode as a TagList of TagIntArray.
type ConveyorBlockEntity struct {
	LoopingPackages    []Package `nbt:"LoopingPackages" json:"LoopingPackages"`
	NeedsSpeedUpdate   int8      `nbt:"NeedsSpeedUpdate" json:"NeedsSpeedUpdate"`
	ID                 string    `nbt:"id" json:"id"`
	Speed              float32   `nbt:"Speed" json:"Speed"`
	TravellingPackages []Package `nbt:"TravellingPackages" json:"TravellingPackages"`
	Connections        [][]int32 `nbt:"Connections" json:"Connections"`
}

// Package is a chain-conveyor package record. Generated conveyors start
// with no packages in transit.
type Package struct{}

// NewArm builds a fresh mechanical arm template. Every call allocates an
// independent tree: no sub-structure is shared between two calls, so
// mutating one template can never leak into another.
func NewArm() *ArmStructure {
	return &ArmStructure{
		Size: []int32{1, 1, 1},
		Blocks: []Block[*ArmBlockEntity]{
			{
				State: 0,
				Pos:   []int32{0, 0, 0},
				NBT: &ArmBlockEntity{
					NeedsSpeedUpdate:  1,
					Phase:             PhaseSearchInputs,
					InteractionPoints: []InteractionPoint{},
					ID:                ArmBlockID,
					Speed:             0,
					Powered:           0,
					Goggles:           0,
					ScrollValue:       0,
					MovementProgress:  0,
					TargetPointIndex:  0,
				},
			},
		},
		Palette: []PaletteEntry{
			{
				Name:       ArmBlockID,
				Properties: &BlockProperties{Ceiling: "false"},
			},
		},
		Entities:    []Entity{},
		DataVersion: DataVersion,
	}
}

// NewConveyor builds a fresh chain conveyor template with the same
// isolation guarantee as NewArm.
func NewConveyor() *ConveyorStructure {
	return &ConveyorStructure{
		Size: []int32{1, 1, 1},
		Blocks: []Block[*ConveyorBlockEntity]{
			{
				State: 0,
				Pos:   []int32{0, 0, 0},
				NBT: &ConveyorBlockEntity{
					LoopingPackages:    []Package{},
					NeedsSpeedUpdate:   1,
					ID:                 ConveyorBlockID,
					Speed:              0,
					TravellingPackages: []Package{},
					Connections:        [][]int32{},
				},
			},
		},
		Palette: []PaletteEntry{
			{Name: ConveyorBlockID},
		},
		Entities:    []Entity{},
		DataVersion: DataVersion,
	}
}

// BlockEntity returns the single block's entity data for mutation.
func (s *Structure[E]) BlockEntity() E {
	return s.Blocks[0].NBT
}
