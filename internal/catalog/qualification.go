package catalog

// FillerCombination pairs base metals with proven filler selections.
type FillerCombination struct {
	BaseMetal string
	Filler    string
	Process   string
	Notes     string
}

var FillerCombinations = []FillerCombination{
	{
		BaseMetal: "Carbon steel",
		Filler:    "ER70S-6 / E7018",
		Process:   "GMAW / SMAW",
		Notes:     "Suitable for structural sheet; low hydrogen electrodes for restraint",
	},
	{
		BaseMetal: "304/316 stainless",
		Filler:    "ER308L / ER309L",
		Process:   "GTAW / GMAW-P",
		Notes:     "Use ER309L when welding dissimilar or cladding",
	},
	{
		BaseMetal: "6061-T6",
		Filler:    "ER4043 (general), ER5356 (higher strength)",
		Process:   "GTAW / GMAW",
		Notes:     "Avoid ER5356 if service >150°F where stress corrosion risk exists",
	},
	{
		BaseMetal: "Nickel alloys",
		Filler:    "ERNiCr-3; BNi-2 for brazing",
		Process:   "GTAW / Brazing",
		Notes:     "Maintain inert backing; control heat input for precipitate-hardened grades",
	},
}

func FillerCombinationsTable() Table {
	rows := make([][]string, len(FillerCombinations))
	for i, c := range FillerCombinations {
		rows[i] = []string{c.BaseMetal, c.Filler, c.Process, c.Notes}
	}
	return Table{
		Title:   "Filler metal and process combinations",
		Columns: []string{"Base Metal", "Filler", "Process", "Notes"},
		Rows:    rows,
	}
}

// QualificationLimit bounds what a qualification test actually covers.
type QualificationLimit struct {
	Test       string
	Limitation string
}

var QualificationLimits = []QualificationLimit{
	{
		Test:       "Groove weld procedure",
		Limitation: "Qualified thickness range per coupon (e.g., 0.250 in qualifies 0.125-0.500 in); position qualified separately",
	},
	{
		Test:       "Fillet weld performance",
		Limitation: "Welder qualified for equal or smaller fillet size and same or easier position",
	},
	{
		Test:       "Brazing procedure",
		Limitation: "Qualified base-metal thickness ±50% of test coupon; joint type limited to tested configuration",
	},
	{
		Test:       "Brazing performance",
		Limitation: "Operator limited to process, filler, joint type, and base-metal thickness tested",
	},
}

func QualificationLimitsTable() Table {
	rows := make([][]string, len(QualificationLimits))
	for i, l := range QualificationLimits {
		rows[i] = []string{l.Test, l.Limitation}
	}
	return Table{
		Title:   "Qualification test limitations",
		Columns: []string{"Test", "Limitation"},
		Rows:    rows,
	}
}

// PerformanceEvaluation lists how qualification coupons are judged.
type PerformanceEvaluation struct {
	Evaluation  string
	Requirement string
}

var PerformanceEvaluations = []PerformanceEvaluation{
	{
		Evaluation:  "Visual examination",
		Requirement: "No cracks, lack of fusion, excessive reinforcement, or undercut per acceptance criteria",
	},
	{
		Evaluation:  "Bend tests",
		Requirement: "Root/face bends with no open defects >1/8 in in tensile surface",
	},
	{
		Evaluation:  "Radiography/UT",
		Requirement: "Where specified for critical joints; must meet volumetric acceptance per MIL-SD-248D",
	},
}

func PerformanceEvaluationsTable() Table {
	rows := make([][]string, len(PerformanceEvaluations))
	for i, e := range PerformanceEvaluations {
		rows[i] = []string{e.Evaluation, e.Requirement}
	}
	return Table{
		Title:   "Performance qualification evaluation",
		Columns: []string{"Evaluation", "Requirement"},
		Rows:    rows,
	}
}

// AssemblyTest is a demonstration test required for welding procedures.
type AssemblyTest struct {
	Test        string
	Requirement string
	When        string
}

var AssemblyTests = []AssemblyTest{
	{
		Test:        "Macroetch",
		Requirement: "Sectioned sample shows full penetration/filler distribution; fusion to root/backing",
		When:        "Each procedure qualification and periodic audit per MIL-SD-248D",
	},
	{
		Test:        "Fillet break/face bend",
		Requirement: "No open defects >1/8 in; sound fusion at root",
		When:        "Performance qualification for fillet positions",
	},
	{
		Test:        "Proof/pressure test",
		Requirement: "Leak-tight to drawing requirement (e.g., 1.5x design pressure)",
		When:        "Tanks/ducting; procedure demonstration",
	},
}

func AssemblyTestsTable() Table {
	rows := make([][]string, len(AssemblyTests))
	for i, a := range AssemblyTests {
		rows[i] = []string{a.Test, a.Requirement, a.When}
	}
	return Table{
		Title:   "Welding procedure assembly test requirements",
		Columns: []string{"Assembly Test", "Requirement", "When"},
		Rows:    rows,
	}
}
