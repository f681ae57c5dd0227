package catalog

import (
	"github.com/mkozlowski/cleansweep/internal/config"
)

// Build assembles the runtime catalog: builtin categories minus cleaners
// disabled in config, plus user-defined command cleaners appended to their
// declared category (created on demand, after the builtins).
func Build(cfg *config.Config) Catalog {
	cat := Default()

	if cfg == nil {
		return cat
	}

	if len(cfg.Disabled) > 0 {
		filtered := make(Catalog, 0, len(cat))
		for _, category := range cat {
			items := make([]Item, 0, len(category.Items))
			for _, item := range category.Items {
				if !cfg.IsDisabled(item.Name) {
					items = append(items, item)
				}
			}
			if len(items) > 0 {
				category.Items = items
				filtered = append(filtered, category)
			}
		}
		cat = filtered
	}

	for _, name := range cfg.CustomNames() {
		custom := cfg.Custom[name]
		item := Item{
			Name:              name,
			Description:       custom.Description,
			Kind:              KindCache,
			RequiresPrivilege: custom.Privileged,
			Action:            CommandAction(name, custom.CleanCmd, custom.Paths, KindCache),
		}

		placed := false
		for i := range cat {
			if cat[i].Name == custom.Category {
				cat[i].Items = append(cat[i].Items, item)
				placed = true
				break
			}
		}
		if !placed {
			cat = append(cat, Category{
				Name:        custom.Category,
				Description: "User-defined cleaners",
				Items:       []Item{item},
			})
		}
	}

	return cat
}
