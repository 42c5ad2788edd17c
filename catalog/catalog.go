package catalog

import (
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/trumpetlab/arranger/model"
	"github.com/trumpetlab/arranger/util"
)

func NewId() string {
	return uuid.NewString()
}

func Save(c model.Catalog) {
	util.CreateBinary(util.GetCatalogPath(), c)
}

func Load() model.Catalog {
	return util.ReadBinaryOrPanic[model.Catalog](util.GetCatalogPath())
}

// LoadOrEmpty is for the serving path, where an absent catalog just
// means nothing has been arranged yet.
func LoadOrEmpty() model.Catalog {
	if _, err := os.Stat(util.GetCatalogPath()); err != nil {
		return make(model.Catalog)
	}
	return Load()
}

// Entries returns the catalog sorted by title so listings are stable.
func Entries(c model.Catalog) []model.ArrangementEntry {
	entries := make([]model.ArrangementEntry, 0, len(c))
	for _, id := range util.GetKeys(c) {
		entries = append(entries, c[id])
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Title != entries[j].Title {
			return entries[i].Title < entries[j].Title
		}
		return entries[i].Id < entries[j].Id
	})
	return entries
}
