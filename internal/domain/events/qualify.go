package events

import "strings"

// drugAliases folds brand, salt, and formulation variants onto one canonical
// drug name so that course consolidation can group by name.
var drugAliases = map[string]string{
	"ciprofloxacin iv":           "ciprofloxacin",
	"clindamycin phosphate":      "clindamycin",
	"erythromycin lactobionate":  "erythromycin",
	"gentamicin sulfate":         "gentamicin",
	"metronidazole (flagyl)":     "metronidazole",
	"piperacillin-tazobactam na": "piperacillin-tazobactam",
	"sulfameth/trimethoprim":     "sulfamethoxazole-trimethoprim",
	"vancomycin enema":           "vancomycin",
	"vancomycin hcl":             "vancomycin",
	"vancomycin oral liquid":     "vancomycin",
}

// oralRoutes are the only enteral routes accepted, and then only for
// vancomycin and linezolid. Everything else must be intravenous.
var oralRoutes = map[string]struct{}{
	"PO":                 {},
	"PO/NG":              {},
	"PO OR ENTERAL TUBE": {},
	"PO/OG":              {},
}

// NormalizeDrug lowercases a prescription drug name and folds known variants
// onto their canonical form.
func NormalizeDrug(drug string) string {
	drug = strings.ToLower(strings.TrimSpace(drug))
	if canonical, ok := drugAliases[drug]; ok {
		return canonical
	}
	return drug
}

// QualifyOrders filters raw prescription rows down to antibiotic orders that
// can suggest infection treatment rather than surgical prophylaxis:
//
//   - drug names are normalized; desensitization protocols and non-formulary
//     entries are dropped
//   - intravenous orders qualify unless the drug is a prophylactic agent
//     (cefazolin, ampicillin-sulbactam, erythromycin)
//   - oral orders qualify only for vancomycin and linezolid on a fixed set
//     of enteral routes
//
// Order of the input is preserved.
func QualifyOrders(orders []AbxOrder) []AbxOrder {
	out := make([]AbxOrder, 0, len(orders))
	for _, o := range orders {
		drug := NormalizeDrug(o.Drug)
		if strings.Contains(drug, "desensitization") || strings.Contains(drug, "nf") {
			continue
		}
		o.Drug = drug
		if isIVRoute(o.Route) {
			if strings.Contains(drug, "cefazolin") || strings.Contains(drug, "sulbactam") || strings.Contains(drug, "erythromycin") {
				continue
			}
			out = append(out, o)
			continue
		}
		if _, oral := oralRoutes[o.Route]; oral {
			if strings.Contains(drug, "vancomycin") || strings.Contains(drug, "linezolid") {
				out = append(out, o)
			}
		}
	}
	return out
}

func isIVRoute(route string) bool {
	return strings.Contains(strings.ToLower(route), "iv")
}
