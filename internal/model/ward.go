package model

// DefaultArea fills location fields the registration form does not collect
const DefaultArea = "Nairobi"

// Wards lists the wards a player may register into
var Wards = []string{
	"Kibera", "Laini Saba", "Makina", "Sarangombe", "Woodley", "Karen",
	"Nyayo Highrise", "South B", "South C", "Umoja I", "Umoja II",
	"Kayole North", "Kayole Central", "Kayole South", "Dandora I",
	"Dandora II", "Dandora III", "Dandora IV", "Mathare North",
	"Mathare West", "Pangani", "Ziwani", "Ngara",
}

// SubCounties lists the sub-counties offered on the registration form
var SubCounties = []string{
	"Westlands", "Dagoretti North", "Dagoretti South", "Lang'ata", "Kibra",
	"Kasarani", "Roysambu", "Ruaraka", "Embakasi East", "Embakasi West",
	"Embakasi South", "Embakasi Central", "Embakasi North", "Makadara",
	"Kamukunji", "Starehe", "Mathare",
}

// IsWard reports whether name is one of the enumerated wards
func IsWard(name string) bool {
	return contains(Wards, name)
}

// IsSubCounty reports whether name is one of the enumerated sub-counties
func IsSubCounty(name string) bool {
	return contains(SubCounties, name)
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}
