package usecase

import (
	"fmt"

	"github.com/azocr/boq-insight/internal/core/domain"
	"github.com/azocr/boq-insight/internal/core/ports"
)

// categoryTaxonomy is the fixed 5-category assignment cycle for normalized
// uploads (earthworks, concrete, reinforcement, insulation, finishing).
var categoryTaxonomy = []string{
	"أعمال ترابية",
	"خرسانة",
	"تسليح",
	"عزل",
	"تشطيبات",
}

// CategoryAt assigns a category purely by item position. The mapping is
// content-blind: position modulo taxonomy size.
func CategoryAt(position int) string {
	return categoryTaxonomy[position%len(categoryTaxonomy)]
}

// Normalizer maps an uploaded file identity onto canonical line items seeded
// from the reference catalog. It does not inspect the uploaded bytes; that
// stand-in transformation is kept deliberately (only the numeric extractor
// reads real content).
type Normalizer struct {
	catalog ports.ItemCatalog
}

func NewNormalizer(catalog ports.ItemCatalog) *Normalizer {
	return &Normalizer{catalog: catalog}
}

// NormalizeUpload produces one item per catalog entry. Identifiers get a
// positional suffix so repeated uploads stay unique within a result set, and
// descriptions record the source file name.
func (n *Normalizer) NormalizeUpload(fileName string) []domain.Item {
	seed := n.catalog.Items()
	out := make([]domain.Item, 0, len(seed))
	for idx, item := range seed {
		item.ID = fmt.Sprintf("%s-%d", item.ID, idx+1)
		item.Category = CategoryAt(idx)
		item.Description = fmt.Sprintf("%s — مصدر: %s", item.Description, fileName)
		out = append(out, item)
	}
	return out
}
