package catalog

// ChecklistItem is one characteristic to verify before or during welding.
type ChecklistItem struct {
	Category       string
	Characteristic string
	WhyItMatters   string
}

var InspectionChecklist = []ChecklistItem{
	{
		Category:       "Joint preparation",
		Characteristic: "Edges deburred, fit-up within specified root opening, backing/consumable inserts per WPS",
		WhyItMatters:   "Controls penetration and prevents inclusions or lack of fusion",
	},
	{
		Category:       "Cleanliness",
		Characteristic: "No oil, oxide, paint, or mill scale; solvent wiped per process instructions",
		WhyItMatters:   "Prevents porosity and incomplete fusion, especially critical for GTAW/GMAW on aluminum",
	},
	{
		Category:       "Filler verification",
		Characteristic: "Filler classification, diameter, heat/lot match WPS and MIL filler list",
		WhyItMatters:   "Ensures mechanical properties and corrosion resistance align with base metal",
	},
	{
		Category:       "Preheat/interpass",
		Characteristic: "Measured with contact pyrometer or temp stick; documented within WPS limits",
		WhyItMatters:   "Prevents hydrogen cracking and controls distortion",
	},
	{
		Category:       "Shielding gas",
		Characteristic: "Type, purity, flow rate per WPS; hoses purged; dew point controlled for aluminum",
		WhyItMatters:   "Protects molten pool from contamination and nitrogen/oxygen pickup",
	},
	{
		Category:       "Visual weld quality",
		Characteristic: "Bead profile, reinforcement, undercut, arc strikes, overlap within acceptance per MIL-SD-248D",
		WhyItMatters:   "Visual cues often correlate with internal quality and dimensional control",
	},
	{
		Category:       "Dimensional/GD&T",
		Characteristic: "Flatness, perpendicularity, hole position check against drawing feature control frames",
		WhyItMatters:   "Assures assembly interchangeability and fit for bonded/brazed structures",
	},
}

func InspectionChecklistTable() Table {
	rows := make([][]string, len(InspectionChecklist))
	for i, c := range InspectionChecklist {
		rows[i] = []string{c.Category, c.Characteristic, c.WhyItMatters}
	}
	return Table{
		Title:   "Inspection checklist",
		Columns: []string{"Category", "Characteristic", "Why it matters"},
		Rows:    rows,
	}
}

// WeldingLimitation summarizes where a process is appropriate and what
// restrictions apply.
type WeldingLimitation struct {
	Process     string
	Forms       string
	Positions   string
	Limitations string
}

var WeldingLimitations = []WeldingLimitation{
	{
		Process:     "GTAW",
		Forms:       "Sheet, tube, light gauge extrusions",
		Positions:   "All (1G/2G/3G/4G, 1F-4F)",
		Limitations: "Use direct current electrode negative for most alloys; AC with balance control for aluminum; backing or purge required on full-penetration joints",
	},
	{
		Process:     "GMAW-P",
		Forms:       "Sheet and thin plate with spray or pulsed transfer",
		Positions:   "Flat, horizontal, limited vertical-up",
		Limitations: "Preferred for controlled heat input; short-circuit only where allowed by WPS for thin gage and fillets",
	},
	{
		Process:     "FCAW-G",
		Forms:       "Structural shapes, thicker sheet assemblies",
		Positions:   "All position with appropriate classification",
		Limitations: "Requires external shielding; restrict for thin sheet due to higher heat and spatter",
	},
	{
		Process:     "Brazing (torch/furnace)",
		Forms:       "Lap joints, hem flanges, honeycomb core skins",
		Positions:   "Primarily flat/fixtured",
		Limitations: "Gap uniformity critical; flux selection and post-cleaning per filler manufacturer and spec",
	},
}

func WeldingLimitationsTable() Table {
	rows := make([][]string, len(WeldingLimitations))
	for i, l := range WeldingLimitations {
		rows[i] = []string{l.Process, l.Forms, l.Positions, l.Limitations}
	}
	return Table{
		Title:   "Welding procedure limitations",
		Columns: []string{"Process", "Forms", "Positions", "Limitations"},
		Rows:    rows,
	}
}

// ThicknessLimit gives the thickness range a process typically qualifies.
type ThicknessLimit struct {
	Process            string
	ThicknessQualified string
	Notes              string
}

var ThicknessLimits = []ThicknessLimit{
	{
		Process:            "GTAW",
		ThicknessQualified: "0.020 in to 0.500 in depending on test coupon",
		Notes:              "Use backing for full-penetration under 0.125 in; pulse recommended for thin aluminum",
	},
	{
		Process:            "GMAW-P",
		ThicknessQualified: "0.063 in to 0.750 in",
		Notes:              "Spray/pulsed transfer for >0.125 in; short-circuit limited to sheet if procedure qualified",
	},
	{
		Process:            "Brazing",
		ThicknessQualified: "0.010 in to 0.125 in typical for sheet lap joints",
		Notes:              "Control joint gap (0.002-0.006 in) and capillary action; thicker sections require soak control",
	},
}

func ThicknessLimitsTable() Table {
	rows := make([][]string, len(ThicknessLimits))
	for i, l := range ThicknessLimits {
		rows[i] = []string{l.Process, l.ThicknessQualified, l.Notes}
	}
	return Table{
		Title:   "Material thickness limits by process",
		Columns: []string{"Process", "Thickness Qualified", "Notes"},
		Rows:    rows,
	}
}
