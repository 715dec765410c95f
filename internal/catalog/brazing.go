package catalog

// BrazingRequirement is a consolidated brazing criterion from the MIL
// brazing guidance.
type BrazingRequirement struct {
	Topic       string
	Requirement string
}

var BrazingRequirements = []BrazingRequirement{
	{
		Topic:       "Base material cleanliness",
		Requirement: "Oxide removal and solvent cleaning immediately prior to brazing; avoid chloride residues",
	},
	{
		Topic:       "Brazing alloy",
		Requirement: "BNi-2 for nickel alloys; BAlSi-4/BAlSi-1 for aluminum; follow flow/clearance guidance",
	},
	{
		Topic:       "Flux/atmosphere",
		Requirement: "Use appropriate flux for torch brazing; vacuum or argon for furnace/inert brazing",
	},
	{
		Topic:       "Post-braze cleaning",
		Requirement: "Remove flux residues; inspect for voids and flow completeness via section or NDI",
	},
}

func BrazingRequirementsTable() Table {
	rows := make([][]string, len(BrazingRequirements))
	for i, r := range BrazingRequirements {
		rows[i] = []string{r.Topic, r.Requirement}
	}
	return Table{
		Title:   "Material and brazing alloy requirements",
		Columns: []string{"Topic", "Requirement"},
		Rows:    rows,
	}
}

// BrazingQualificationItem covers alloys, specimens, and loads for brazing
// procedure and performance qualification.
type BrazingQualificationItem struct {
	Item        string
	Requirement string
}

var BrazingQualification = []BrazingQualificationItem{
	{
		Item:        "Brazing alloys for PQ",
		Requirement: "Use production filler type and thickness range; document heat/lot",
	},
	{
		Item:        "Performance test specimens",
		Requirement: "Lap shear coupons sized to joint design; furnace/torch cycle recorded",
	},
	{
		Item:        "Thickness qualified",
		Requirement: "Test coupon thickness qualifies 0.5x to 2x of tested thickness for same alloy family",
	},
	{
		Item:        "Axial load / torque",
		Requirement: "Demonstrate joint can meet calculated load or torque from design allowables; fixture and record peak values",
	},
}

func BrazingQualificationTable() Table {
	rows := make([][]string, len(BrazingQualification))
	for i, q := range BrazingQualification {
		rows[i] = []string{q.Item, q.Requirement}
	}
	return Table{
		Title:   "Brazing alloys, test specimens, and loads",
		Columns: []string{"Item", "Requirement"},
		Rows:    rows,
	}
}
