package schema

import "strings"

// MedicationCategory groups medications in the catalogue.
type MedicationCategory string

// All medication categories, in catalogue order.
const (
	MetabolicCategory       MedicationCategory = "Metabolic"
	HormoneCategory         MedicationCategory = "Hormone"
	HealingRecoveryCategory MedicationCategory = "Healing & Recovery"
	ImmuneCategory          MedicationCategory = "Immune"
	StacksCategory          MedicationCategory = "Stacks"
	ResearchCategory        MedicationCategory = "Research"
)

// AllMedicationCategories lists categories in display order.
var AllMedicationCategories = []MedicationCategory{
	MetabolicCategory, HormoneCategory, HealingRecoveryCategory, ImmuneCategory, StacksCategory, ResearchCategory,
}

// Medication is one entry of the built-in catalogue.
type Medication struct {
	ID            string             `json:"id" yaml:"id"`
	Name          string             `json:"name" yaml:"name"`
	BrandNames    []string           `json:"brand_names,omitempty" yaml:"brand_names,omitempty"`
	GenericName   string             `json:"generic_name" yaml:"generic_name"`
	Category      MedicationCategory `json:"category" yaml:"category"`
	Description   string             `json:"description" yaml:"description"`
	IsFDAApproved bool               `json:"is_fda_approved" yaml:"is_fda_approved"`
}

// AllNames returns the name, brand names and generic name without duplicates.
func (m Medication) AllNames() []string {
	names := []string{m.Name}
	names = append(names, m.BrandNames...)
	if m.GenericName != "" && m.GenericName != m.Name {
		names = append(names, m.GenericName)
	}
	return names
}

// MedicationCatalog is the built-in medication list.
var MedicationCatalog = []Medication{
	// Metabolic
	{ID: "tirzepatide", Name: "Tirzepatide", BrandNames: []string{"Mounjaro", "Zepbound"}, GenericName: "Tirzepatide", Category: MetabolicCategory, Description: "Dual GIP/GLP-1 receptor agonist for weight loss and diabetes management.", IsFDAApproved: true},
	{ID: "semaglutide", Name: "Semaglutide", BrandNames: []string{"Ozempic", "Wegovy"}, GenericName: "Semaglutide", Category: MetabolicCategory, Description: "GLP-1 receptor agonist for weight management and type 2 diabetes.", IsFDAApproved: true},
	{ID: "retatrutide", Name: "Retatrutide", GenericName: "LY3437943", Category: MetabolicCategory, Description: "Triple agonist targeting GIP, GLP-1, and glucagon receptors."},
	{ID: "motsc", Name: "MOTS-c", GenericName: "Mitochondrial ORF of the 12S rRNA-c", Category: MetabolicCategory, Description: "Mitochondrial-derived peptide that mimics exercise effects on metabolism."},
	// Hormone
	{ID: "cjc1295", Name: "CJC-1295", GenericName: "CJC-1295", Category: HormoneCategory, Description: "Growth hormone releasing hormone analog with extended half-life."},
	{ID: "ipamorelin", Name: "Ipamorelin", GenericName: "Ipamorelin", Category: HormoneCategory, Description: "Selective growth hormone secretagogue with minimal side effects."},
	{ID: "mk677", Name: "MK-677", BrandNames: []string{"Ibutamoren"}, GenericName: "Ibutamoren", Category: HormoneCategory, Description: "Oral growth hormone secretagogue that mimics ghrelin."},
	{ID: "tesamorelin", Name: "Tesamorelin", BrandNames: []string{"Egrifta"}, GenericName: "Tesamorelin Acetate", Category: HormoneCategory, Description: "FDA-approved GHRH analog for reducing visceral fat.", IsFDAApproved: true},
	// Healing & Recovery
	{ID: "bpc157", Name: "BPC-157", GenericName: "Body Protection Compound-157", Category: HealingRecoveryCategory, Description: "Gastric pentadecapeptide with tissue healing properties."},
	{ID: "tb500", Name: "TB-500", GenericName: "Thymosin Beta-4", Category: HealingRecoveryCategory, Description: "Naturally occurring peptide that promotes tissue repair and reduces inflammation."},
	// Immune
	{ID: "thymosinAlpha1", Name: "Thymosin Alpha-1", BrandNames: []string{"Zadaxin"}, GenericName: "Thymalfasin", Category: ImmuneCategory, Description: "Immune-modulating peptide that enhances T-cell function and immune response."},
	// Stacks
	{ID: "glow", Name: "GLOW", GenericName: "GHK-Cu + Epithalon Stack", Category: StacksCategory, Description: "Skin, hair, and anti-aging stack combining copper peptide with telomerase activator."},
	{ID: "klow", Name: "KLOW", GenericName: "CJC-1295 + Ipamorelin Stack", Category: StacksCategory, Description: "Growth hormone optimization stack for body composition and recovery."},
	{ID: "cjcIpaStack", Name: "CJC/Ipamorelin", GenericName: "CJC-1295/Ipamorelin Blend", Category: StacksCategory, Description: "GH secretagogue combination for synergistic growth hormone release."},
	{ID: "bpcTbStack", Name: "BPC/TB-500", GenericName: "BPC-157/TB-500 Blend", Category: StacksCategory, Description: "Healing stack combining two tissue repair peptides."},
	// Research
	{ID: "epithalon", Name: "Epithalon", BrandNames: []string{"Epitalon", "Epithalone"}, GenericName: "Epithalon", Category: ResearchCategory, Description: "Telomerase-activating tetrapeptide studied for anti-aging effects."},
	{ID: "ghFrag176191", Name: "GH-Frag 176-191", GenericName: "HGH Fragment 176-191", Category: ResearchCategory, Description: "Fragment of growth hormone targeting fat metabolism."},
	{ID: "pt141", Name: "PT-141", BrandNames: []string{"Bremelanotide"}, GenericName: "Bremelanotide", Category: ResearchCategory, Description: "Melanocortin receptor agonist for sexual dysfunction."},
	{ID: "selank", Name: "Selank", GenericName: "Synthetic Tuftsin Analog", Category: ResearchCategory, Description: "Anxiolytic and nootropic peptide derived from tuftsin."},
	{ID: "semax", Name: "Semax", GenericName: "ACTH(4-10) Analog", Category: ResearchCategory, Description: "Neuroprotective peptide derived from ACTH with nootropic effects."},
}

// MedicationByID looks a medication up by its catalogue id.
func MedicationByID(id string) (Medication, bool) {
	for _, m := range MedicationCatalog {
		if m.ID == id {
			return m, true
		}
	}
	return Medication{}, false
}

// FindMedication matches a medication by id or any of its names, case-insensitively.
func FindMedication(name string) (Medication, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return Medication{}, false
	}
	for _, m := range MedicationCatalog {
		if strings.ToLower(m.ID) == needle {
			return m, true
		}
		for _, n := range m.AllNames() {
			if strings.ToLower(n) == needle {
				return m, true
			}
		}
	}
	return Medication{}, false
}

// MedicationsByCategory filters the catalogue to one category.
func MedicationsByCategory(category MedicationCategory) []Medication {
	var out []Medication
	for _, m := range MedicationCatalog {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// DefaultEnabledMedications returns the FDA-approved subset, the default selection.
func DefaultEnabledMedications() []Medication {
	var out []Medication
	for _, m := range MedicationCatalog {
		if m.IsFDAApproved {
			out = append(out, m)
		}
	}
	return out
}

// ParseMedicationCategory matches a category name case-insensitively.
func ParseMedicationCategory(s string) (MedicationCategory, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllMedicationCategories {
		if strings.ToLower(string(c)) == needle {
			return c, true
		}
	}
	if needle == "healing" || needle == "recovery" {
		return HealingRecoveryCategory, true
	}
	return "", false
}
