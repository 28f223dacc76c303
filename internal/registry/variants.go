package registry

// DefaultVariant is used when no variant is selected.
const DefaultVariant = "classic"

// Built-in variants. Targets are realistic for each board size; larger
// boards leave more room and get a higher threshold.
func init() {
	Register(Variant{ID: "classic", Title: "Classic 2048", Dimension: 4, Threshold: 2048, Spawn4: 0.10, Order: 1})
	Register(Variant{ID: "sprint", Title: "Sprint to 512", Dimension: 4, Threshold: 512, Spawn4: 0.10, Order: 2})
	Register(Variant{ID: "mini", Title: "Mini 3x3", Dimension: 3, Threshold: 512, Spawn4: 0.10, Order: 3})
	Register(Variant{ID: "large", Title: "Large 5x5", Dimension: 5, Threshold: 4096, Spawn4: 0.12, Order: 4})
	Register(Variant{ID: "huge", Title: "Huge 6x6", Dimension: 6, Threshold: 8192, Spawn4: 0.15, Order: 5})
}
