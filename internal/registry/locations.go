package registry

import "strings"

// locationAliases maps a canonical province/city name to the surface
// forms scrapers and posters actually write. All entries are lowercase.
var locationAliases = map[string][]string{
	"hồ chí minh": {
		"hồ chí minh", "ho chi minh", "ho chi minh city", "hochiminh", "hcm",
		"tphcm", "tp hcm", "tp. hcm", "tp. hồ chí minh", "thành phố hồ chí minh",
		"sài gòn", "saigon",
	},
	"hà nội":     {"hà nội", "ha noi", "hanoi", "hn", "thủ đô hà nội"},
	"đà nẵng":    {"đà nẵng", "da nang", "danang"},
	"cần thơ":    {"cần thơ", "can tho", "cantho"},
	"hải phòng":  {"hải phòng", "hai phong", "haiphong"},
	"bình dương": {"bình dương", "binh duong"},
	"đồng nai":   {"đồng nai", "dong nai", "biên hòa", "bien hoa"},
	"khánh hòa":  {"khánh hòa", "khanh hoa", "nha trang"},
	"thừa thiên huế": {"thừa thiên huế", "thua thien hue", "huế", "hue"},
	"remote":     {"remote", "từ xa", "làm việc từ xa", "work from home"},
}

// aliasIndex is the flattened alias -> canonical lookup, built once.
var aliasIndex = func() map[string]string {
	idx := make(map[string]string)
	for canonical, aliases := range locationAliases {
		for _, a := range aliases {
			idx[a] = canonical
		}
	}
	return idx
}()

// CanonicalLocation maps a raw location string to its canonical province
// name via exact alias match. Unknown inputs come back lowercased and
// trimmed, never empty-for-unknown.
func CanonicalLocation(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := aliasIndex[name]; ok {
		return canonical
	}
	return name
}
