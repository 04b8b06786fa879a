package domain

// EquipmentType tags the physical class of a unit on the factory floor.
type EquipmentType string

const (
	EquipmentMotor      EquipmentType = "motor"
	EquipmentPump       EquipmentType = "pump"
	EquipmentConveyor   EquipmentType = "conveyor"
	EquipmentRobot      EquipmentType = "robot"
	EquipmentCompressor EquipmentType = "compressor"
	EquipmentHVAC       EquipmentType = "hvac"
)

// Range is an inclusive operating range for one sensor kind.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Mid() float64 { return (r.Min + r.Max) / 2 }

func (r Range) Width() float64 { return r.Max - r.Min }

// EquipmentProfile describes one unit of the equipment registry. Profiles are
// immutable for the duration of a run.
type EquipmentProfile struct {
	ID       string
	Type     EquipmentType
	Line     string
	Temp     Range
	Vib      Range
	Pressure *Range
}

// HasPressure reports whether the unit carries a pressure sensor (pumps and
// the compressor do, everything else does not).
func (p EquipmentProfile) HasPressure() bool { return p.Pressure != nil }

// DriftState holds the per-equipment drift rates sampled once at the start of
// a run. The rates never change afterwards; generation only multiplies them by
// elapsed days.
type DriftState struct {
	TempPerDay float64
	VibPerDay  float64
}
