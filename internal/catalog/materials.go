package catalog

// BaseFillerMaterial pairs a base material with its usual filler metals and
// joining processes under the governing MIL specification.
type BaseFillerMaterial struct {
	BaseMaterial string
	FillerMetals string
	Process      string
	GuidingSpec  string
}

var BaseFillerMaterials = []BaseFillerMaterial{
	{
		BaseMaterial: "Low-carbon steel sheet",
		FillerMetals: "AWS A5.18 ER70S-6; AWS A5.20 E71T-1",
		Process:      "GMAW, FCAW, GTAW",
		GuidingSpec:  "MIL-SD-248D",
	},
	{
		BaseMaterial: "Austenitic stainless steel",
		FillerMetals: "AWS A5.9 ER308L/ER309L; AWS A5.22 E308LT",
		Process:      "GTAW, GMAW-P, SMAW",
		GuidingSpec:  "MIL-SD-248D",
	},
	{
		BaseMaterial: "Aluminum alloys (5xxx/6xxx)",
		FillerMetals: "AWS A5.10 ER4043; AWS A5.10 ER5356",
		Process:      "GMAW, GTAW",
		GuidingSpec:  "MIL-S-23284A",
	},
	{
		BaseMaterial: "Nickel-base alloys",
		FillerMetals: "AWS A5.14 ERNiCr-3; BNi-2 brazing alloy",
		Process:      "GTAW, brazing",
		GuidingSpec:  "MIL-S-23284A",
	},
}

func BaseFillerMaterialsTable() Table {
	rows := make([][]string, len(BaseFillerMaterials))
	for i, m := range BaseFillerMaterials {
		rows[i] = []string{m.BaseMaterial, m.FillerMetals, m.Process, m.GuidingSpec}
	}
	return Table{
		Title:   "Base and filler materials",
		Columns: []string{"Base Material", "Filler Metals", "Process", "Guiding Spec"},
		Rows:    rows,
	}
}

// GDTCallout is a drawing feature-control callout that deserves attention on
// formed and brazed sheet-metal parts.
type GDTCallout struct {
	Callout string
	Use     string
}

var GDTCallouts = []GDTCallout{
	{Callout: "Flatness (⏤)", Use: "Control skin panels after brazing to prevent oil-canning"},
	{Callout: "Perpendicularity (⌖)", Use: "Maintain flange-to-web alignment on formed channels"},
	{Callout: "Position (⌀)", Use: "Locate pierced holes for fasteners and brazed inserts"},
	{Callout: "Profile of a surface (∩)", Use: "Capture aerodynamic surface after forming/brazing"},
}

func GDTCalloutsTable() Table {
	rows := make([][]string, len(GDTCallouts))
	for i, c := range GDTCallouts {
		rows[i] = []string{c.Callout, c.Use}
	}
	return Table{
		Title:   "Drawing callouts to watch",
		Columns: []string{"Callout", "Use"},
		Rows:    rows,
	}
}
