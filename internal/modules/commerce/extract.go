package commerce

// Flatten expands every variant's every inventory level into one
// InventoryRecord, preserving the order the backend returned them.
// An absent "available" quantity bucket counts as 0. Duplicate
// locations across variants are kept as separate records, not merged.
func Flatten(p *Product) []InventoryRecord {
	if p == nil {
		return nil
	}
	var records []InventoryRecord
	for _, v := range p.Variants {
		for _, level := range v.Levels {
			available := 0
			for _, q := range level.Quantities {
				if q.Name == "available" {
					available = q.Quantity
					break
				}
			}
			records = append(records, InventoryRecord{
				Location:  level.Location,
				Available: available,
			})
		}
	}
	return records
}
