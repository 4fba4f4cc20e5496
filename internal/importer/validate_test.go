package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validMinimalSeed() *SeedFile {
	return &SeedFile{
		Name: "Fruit",
		Tiers: []TierImport{
			{ID: "s", Name: "S", Items: []ItemImport{{ID: "apple", Content: "Apple"}}},
			{Name: "A"},
		},
	}
}

func errStrings(errs []error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}

func TestValidateSeedFile_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateSeedFile(validMinimalSeed()))
}

func TestValidateSeedFile_MissingNameAndTiers(t *testing.T) {
	errs := ValidateSeedFile(&SeedFile{})

	msgs := errStrings(errs)
	assert.Contains(t, msgs, "name is required")
	assert.Contains(t, msgs, "tiers: at least one tier is required")
}

func TestValidateSeedFile_TierProblems(t *testing.T) {
	sf := validMinimalSeed()
	sf.DefaultLabelPosition = "middle"
	sf.Tiers = append(sf.Tiers,
		TierImport{ID: "s", Name: "", LabelPosition: "bottom"},
	)

	msgs := errStrings(ValidateSeedFile(sf))
	assert.Contains(t, msgs, `default_label_position: invalid value "middle"`)
	assert.Contains(t, msgs, "tiers[2].name is required")
	assert.Contains(t, msgs, `tiers[2].id: duplicate id "s"`)
	assert.Contains(t, msgs, `tiers[2].label_position: invalid value "bottom"`)
}

func TestValidateSeedFile_ItemIDsUniqueAcrossTiers(t *testing.T) {
	sf := validMinimalSeed()
	sf.Tiers[1].Items = []ItemImport{{ID: "apple", Content: "Another apple"}, {Content: ""}}

	msgs := errStrings(ValidateSeedFile(sf))
	assert.Contains(t, msgs, `tiers[1].items[0].id: duplicate id "apple" (first used at tiers[0].items[0])`)
	assert.Contains(t, msgs, "tiers[1].items[1].content is required")
}

func TestValidateSeedFile_ItemsWithoutIDsAreFine(t *testing.T) {
	sf := validMinimalSeed()
	sf.Tiers[1].Items = []ItemImport{{Content: "Pear"}, {Content: "Plum"}}

	assert.Empty(t, ValidateSeedFile(sf))
}
