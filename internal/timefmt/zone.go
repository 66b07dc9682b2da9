package timefmt

import (
	"strconv"
	"time"
)

// metazone groups tz database zones that share display names.
type metazone uint8

const (
	mzNone metazone = iota
	mzAlaska
	mzAleutian
	mzHawaii
	mzAtlantic
	mzEastern
	mzCentral
	mzMountain
	mzPacific
	mzEuropeCentral
	mzEuropeEastern
	mzEuropeWestern
	mzBritish
	mzGulf
)

// metazoneMembers lists the zone IDs, aliases included, whose current
// rules follow each metazone. Zones outside these sets render as offsets.
var metazoneMembers = map[metazone][]string{
	mzAlaska: {
		"America/Anchorage", "America/Juneau", "America/Metlakatla",
		"America/Nome", "America/Sitka", "America/Yakutat", "US/Alaska",
	},
	mzAleutian: {
		"America/Adak", "America/Atka", "US/Aleutian",
	},
	mzHawaii: {
		"HST", "Pacific/Honolulu", "Pacific/Johnston", "US/Hawaii",
	},
	mzAtlantic: {
		"America/Anguilla", "America/Antigua", "America/Aruba", "America/Barbados",
		"America/Blanc-Sablon", "America/Curacao", "America/Dominica",
		"America/Glace_Bay", "America/Goose_Bay", "America/Grenada",
		"America/Guadeloupe", "America/Halifax", "America/Kralendijk",
		"America/Lower_Princes", "America/Marigot", "America/Martinique",
		"America/Moncton", "America/Montserrat", "America/Port_of_Spain",
		"America/Puerto_Rico", "America/Santo_Domingo", "America/St_Barthelemy",
		"America/St_Kitts", "America/St_Lucia", "America/St_Thomas",
		"America/St_Vincent", "America/Thule", "America/Tortola", "America/Virgin",
		"Atlantic/Bermuda", "Canada/Atlantic",
	},
	mzEastern: {
		"America/Atikokan", "America/Cancun", "America/Cayman",
		"America/Coral_Harbour", "America/Detroit", "America/Fort_Wayne",
		"America/Grand_Turk", "America/Indiana/Indianapolis",
		"America/Indiana/Marengo", "America/Indiana/Petersburg",
		"America/Indiana/Vevay", "America/Indiana/Vincennes",
		"America/Indiana/Winamac", "America/Indianapolis", "America/Iqaluit",
		"America/Jamaica", "America/Kentucky/Louisville",
		"America/Kentucky/Monticello", "America/Louisville", "America/Montreal",
		"America/Nassau", "America/New_York", "America/Nipigon", "America/Panama",
		"America/Pangnirtung", "America/Port-au-Prince", "America/Thunder_Bay",
		"America/Toronto", "Canada/Eastern", "EST", "EST5EDT", "Jamaica",
		"US/East-Indiana", "US/Eastern", "US/Michigan",
	},
	mzCentral: {
		"America/Bahia_Banderas", "America/Belize", "America/Chicago",
		"America/Chihuahua", "America/Costa_Rica", "America/El_Salvador",
		"America/Guatemala", "America/Indiana/Knox", "America/Indiana/Tell_City",
		"America/Knox_IN", "America/Managua", "America/Matamoros",
		"America/Menominee", "America/Merida", "America/Mexico_City",
		"America/Monterrey", "America/North_Dakota/Beulah",
		"America/North_Dakota/Center", "America/North_Dakota/New_Salem",
		"America/Ojinaga", "America/Rainy_River", "America/Rankin_Inlet",
		"America/Regina", "America/Resolute", "America/Swift_Current",
		"America/Tegucigalpa", "America/Winnipeg", "CST6CDT", "Canada/Central",
		"Canada/Saskatchewan", "Mexico/General", "US/Central", "US/Indiana-Starke",
	},
	mzMountain: {
		"America/Boise", "America/Cambridge_Bay", "America/Ciudad_Juarez",
		"America/Creston", "America/Dawson_Creek", "America/Denver",
		"America/Edmonton", "America/Fort_Nelson", "America/Inuvik",
		"America/Phoenix", "America/Shiprock", "America/Yellowknife",
		"Canada/Mountain", "MST", "MST7MDT", "Navajo", "US/Arizona", "US/Mountain",
	},
	mzPacific: {
		"America/Ensenada", "America/Los_Angeles", "America/Santa_Isabel",
		"America/Tijuana", "America/Vancouver", "Canada/Pacific",
		"Mexico/BajaNorte", "PST8PDT", "US/Pacific",
	},
	mzEuropeCentral: {
		"Africa/Algiers", "Africa/Ceuta", "Africa/Tunis", "Arctic/Longyearbyen",
		"Atlantic/Jan_Mayen", "CET", "Europe/Amsterdam", "Europe/Andorra",
		"Europe/Belgrade", "Europe/Berlin", "Europe/Bratislava", "Europe/Brussels",
		"Europe/Budapest", "Europe/Busingen", "Europe/Copenhagen",
		"Europe/Gibraltar", "Europe/Ljubljana", "Europe/Luxembourg",
		"Europe/Madrid", "Europe/Malta", "Europe/Monaco", "Europe/Oslo",
		"Europe/Paris", "Europe/Podgorica", "Europe/Prague", "Europe/Rome",
		"Europe/San_Marino", "Europe/Sarajevo", "Europe/Skopje",
		"Europe/Stockholm", "Europe/Tirane", "Europe/Vaduz", "Europe/Vatican",
		"Europe/Vienna", "Europe/Warsaw", "Europe/Zagreb", "Europe/Zurich", "MET",
		"Poland",
	},
	mzEuropeEastern: {
		"Africa/Cairo", "Africa/Tripoli", "Asia/Beirut", "Asia/Gaza",
		"Asia/Hebron", "Asia/Nicosia", "EET", "Egypt", "Europe/Athens",
		"Europe/Bucharest", "Europe/Chisinau", "Europe/Helsinki",
		"Europe/Kaliningrad", "Europe/Kiev", "Europe/Kyiv", "Europe/Mariehamn",
		"Europe/Nicosia", "Europe/Riga", "Europe/Sofia", "Europe/Tallinn",
		"Europe/Tiraspol", "Europe/Uzhgorod", "Europe/Vilnius",
		"Europe/Zaporozhye", "Libya",
	},
	mzEuropeWestern: {
		"Atlantic/Canary", "Atlantic/Faeroe", "Atlantic/Faroe", "Atlantic/Madeira",
		"Europe/Lisbon", "Portugal", "WET",
	},
	mzBritish: {
		"Europe/Belfast", "Europe/London", "GB", "GB-Eire",
	},
	mzGulf: {
		"Asia/Dubai", "Asia/Muscat",
	},
}

var zoneMetazones = func() map[string]metazone {
	out := map[string]metazone{}
	for mz, zones := range metazoneMembers {
		for _, zone := range zones {
			out[zone] = mz
		}
	}
	return out
}()

// zoneName is a metazone's short standard and daylight name.
type zoneName struct {
	standard string
	daylight string
}

// zoneStyle holds the short zone names a locale commonly uses. Zones whose
// metazone has no name in the locale render as an offset.
type zoneStyle struct {
	gmt   string
	minus string
	names map[metazone]zoneName
}

var utcZoneNames = map[string]struct{}{
	"UTC":           {},
	"Etc/UTC":       {},
	"Etc/UCT":       {},
	"Etc/Universal": {},
	"Etc/Zulu":      {},
	"UCT":           {},
	"Universal":     {},
	"Zulu":          {},
}

func (z zoneStyle) label(t time.Time) string {
	zone := t.Location().String()
	if _, ok := utcZoneNames[zone]; ok {
		return "UTC"
	}
	if name, ok := z.names[zoneMetazones[zone]]; ok {
		if t.IsDST() {
			return name.daylight
		}
		return name.standard
	}
	_, offset := t.Zone()
	return z.offset(offset)
}

// offset renders "GMT", "GMT+2" or "GMT+5:30" style labels.
func (z zoneStyle) offset(seconds int) string {
	if seconds == 0 {
		return z.gmt
	}
	sign := "+"
	if seconds < 0 {
		sign = z.minus
		seconds = -seconds
	}
	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	out := z.gmt + sign + strconv.Itoa(hours)
	if minutes > 0 {
		out += ":" + twoDigits(minutes)
	}
	return out
}
