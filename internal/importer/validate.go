package importer

import (
	"fmt"

	"github.com/alexanderramin/tierboard/internal/domain"
)

// ValidateSeedFile checks a parsed seed file before conversion and returns
// every problem found.
func ValidateSeedFile(sf *SeedFile) []error {
	var errs []error

	if sf.Name == "" {
		errs = append(errs, fmt.Errorf("name is required"))
	}
	if sf.DefaultLabelPosition != "" && !domain.ValidLabelPositions[sf.DefaultLabelPosition] {
		errs = append(errs, fmt.Errorf("default_label_position: invalid value %q", sf.DefaultLabelPosition))
	}
	if len(sf.Tiers) == 0 {
		errs = append(errs, fmt.Errorf("tiers: at least one tier is required"))
	}

	tierIDs := make(map[string]bool)
	itemIDs := make(map[string]string) // item id -> prefix of first use
	for i, t := range sf.Tiers {
		prefix := fmt.Sprintf("tiers[%d]", i)

		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if t.ID != "" {
			if tierIDs[t.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, t.ID))
			}
			tierIDs[t.ID] = true
		}
		if t.LabelPosition != "" && !domain.ValidLabelPositions[t.LabelPosition] {
			errs = append(errs, fmt.Errorf("%s.label_position: invalid value %q", prefix, t.LabelPosition))
		}

		for j, it := range t.Items {
			itemPrefix := fmt.Sprintf("%s.items[%d]", prefix, j)
			if it.Content == "" {
				errs = append(errs, fmt.Errorf("%s.content is required", itemPrefix))
			}
			if it.ID == "" {
				continue
			}
			if first, ok := itemIDs[it.ID]; ok {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q (first used at %s)", itemPrefix, it.ID, first))
				continue
			}
			itemIDs[it.ID] = itemPrefix
		}
	}

	return errs
}
