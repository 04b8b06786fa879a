// Package catalog holds the static equipment registry the generators run
// against. The registry is compiled in; there is no external source to fail.
package catalog

import "github.com/ghalamif/ForgeFeed/internal/domain"

// ID pools shared by the quality-control and maintenance generators.
var (
	ProductIDs    = []string{"PROD_A001", "PROD_B002", "PROD_C003", "PROD_D004"}
	InspectorIDs  = []string{"INSP_001", "INSP_002", "INSP_003", "INSP_004"}
	TechnicianIDs = []string{"TECH_001", "TECH_002", "TECH_003", "TECH_004", "TECH_005"}
)

// Catalog is an ordered, immutable set of equipment profiles plus the
// production lines metrics are reported for.
type Catalog struct {
	profiles []domain.EquipmentProfile
	byID     map[string]domain.EquipmentProfile
	lines    []string
}

// New builds a catalog from the given profiles. If lines is nil the
// production lines are derived from the profiles in order of first appearance.
func New(profiles []domain.EquipmentProfile, lines []string) *Catalog {
	c := &Catalog{
		profiles: profiles,
		byID:     make(map[string]domain.EquipmentProfile, len(profiles)),
	}
	for _, p := range profiles {
		c.byID[p.ID] = p
	}
	if lines == nil {
		seen := make(map[string]bool)
		for _, p := range profiles {
			if !seen[p.Line] {
				seen[p.Line] = true
				lines = append(lines, p.Line)
			}
		}
	}
	c.lines = lines
	return c
}

// Profile looks up one unit by ID.
func (c *Catalog) Profile(id string) (domain.EquipmentProfile, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns the profiles in registry order.
func (c *Catalog) All() []domain.EquipmentProfile { return c.profiles }

// Lines returns the production lines in order.
func (c *Catalog) Lines() []string { return c.lines }

// OnLine returns the profiles assigned to one production line, in registry order.
func (c *Catalog) OnLine(line string) []domain.EquipmentProfile {
	var out []domain.EquipmentProfile
	for _, p := range c.profiles {
		if p.Line == line {
			out = append(out, p)
		}
	}
	return out
}

func pressure(min, max float64) *domain.Range { return &domain.Range{Min: min, Max: max} }

// Default returns the workshop factory: two motors, two pumps, two conveyors,
// two robots, a compressor, and an HVAC unit. Only Line 1 and Line 2 report
// production metrics; Utility and Factory Floor carry support equipment.
func Default() *Catalog {
	profiles := []domain.EquipmentProfile{
		{ID: "MOTOR_001", Type: domain.EquipmentMotor, Line: "Line 1", Temp: domain.Range{Min: 45, Max: 75}, Vib: domain.Range{Min: 2, Max: 12}},
		{ID: "MOTOR_002", Type: domain.EquipmentMotor, Line: "Line 1", Temp: domain.Range{Min: 45, Max: 75}, Vib: domain.Range{Min: 2, Max: 12}},
		{ID: "PUMP_001", Type: domain.EquipmentPump, Line: "Line 1", Temp: domain.Range{Min: 40, Max: 65}, Vib: domain.Range{Min: 5, Max: 18}, Pressure: pressure(180, 240)},
		{ID: "PUMP_002", Type: domain.EquipmentPump, Line: "Line 2", Temp: domain.Range{Min: 40, Max: 65}, Vib: domain.Range{Min: 5, Max: 18}, Pressure: pressure(180, 240)},
		{ID: "CONV_001", Type: domain.EquipmentConveyor, Line: "Line 1", Temp: domain.Range{Min: 25, Max: 55}, Vib: domain.Range{Min: 1, Max: 8}},
		{ID: "CONV_002", Type: domain.EquipmentConveyor, Line: "Line 2", Temp: domain.Range{Min: 25, Max: 55}, Vib: domain.Range{Min: 1, Max: 8}},
		{ID: "ROBOT_001", Type: domain.EquipmentRobot, Line: "Line 1", Temp: domain.Range{Min: 35, Max: 60}, Vib: domain.Range{Min: 1, Max: 6}},
		{ID: "ROBOT_002", Type: domain.EquipmentRobot, Line: "Line 2", Temp: domain.Range{Min: 35, Max: 60}, Vib: domain.Range{Min: 1, Max: 6}},
		{ID: "COMP_001", Type: domain.EquipmentCompressor, Line: "Utility", Temp: domain.Range{Min: 60, Max: 85}, Vib: domain.Range{Min: 8, Max: 22}, Pressure: pressure(6, 7.5)},
		{ID: "HVAC_001", Type: domain.EquipmentHVAC, Line: "Factory Floor", Temp: domain.Range{Min: 18, Max: 24}, Vib: domain.Range{Min: 1, Max: 4}},
	}
	return New(profiles, []string{"Line 1", "Line 2"})
}
