package t2048

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Variant is a registered board size.
type Variant struct {
	ID    string
	Title string
	Size  int
}

// Variants lists the playable boards. The first entry is the classic game.
var Variants = []Variant{
	{ID: "2048", Title: "2048", Size: 4},
	{ID: "2048_3x3", Title: "2048 (3x3)", Size: 3},
	{ID: "2048_5x5", Title: "2048 (5x5)", Size: 5},
	{ID: "2048_6x6", Title: "2048 (6x6)", Size: 6},
}

// VariantByID returns the variant with the given id.
func VariantByID(id string) (Variant, error) {
	for _, v := range Variants {
		if v.ID == id {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("t2048: unknown variant %q", id)
}

// BySize returns the variants ordered from the smallest board up.
func BySize() []Variant {
	out := append([]Variant(nil), Variants...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Size < out[j].Size })
	return out
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func(opts registry.Options) registry.Game {
			return New(v, opts)
		})
	}
}
