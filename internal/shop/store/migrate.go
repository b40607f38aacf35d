package store

// RawProduct is a persisted product record before schema validation.
// Migration works on the raw shape so fields it does not know about
// survive untouched.
type RawProduct map[string]interface{}

// legacyCategories maps retired category names to their current values.
var legacyCategories = map[string]string{
	"Home Decor": "Decors",
	"Kitchen":    "Decors",
	"Storage":    "Decors",
	"Wall Art":   "Decors",
	"Self Care":  "Gifts",
}

// Migrate upgrades previously persisted catalog records to the current
// schema and reports whether anything changed. Per record, order
// independent:
//
//   - a legacy singular "image" field becomes images=[image], but only
//     when "images" is absent
//   - a retired category name is replaced by its current value
//
// Running it twice is a no-op: the second pass reports changed=false so
// the caller can skip the store write. A record carrying neither image
// field is passed through as-is and left for validation to reject at
// render time.
func Migrate(records []RawProduct) ([]RawProduct, bool) {
	changed := false
	out := make([]RawProduct, len(records))
	for i, rec := range records {
		cp := make(RawProduct, len(rec))
		for k, v := range rec {
			cp[k] = v
		}
		if _, ok := cp["images"]; !ok {
			if img, ok := cp["image"]; ok {
				cp["images"] = []interface{}{img}
				delete(cp, "image")
				changed = true
			}
		}
		if cat, ok := cp["category"].(string); ok {
			if current, ok := legacyCategories[cat]; ok {
				cp["category"] = current
				changed = true
			}
		}
		out[i] = cp
	}
	return out, changed
}
