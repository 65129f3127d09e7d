package domain

// StationID identifies a bookable console station.
type StationID string

const (
	StationXboxSeriesX StationID = "xbox-series-x"
	StationPS5         StationID = "ps5"
	StationXboxOneS    StationID = "xbox-one-s"
	StationXbox360     StationID = "xbox-360"
)

// Station represents a static catalog entry. Stations are fixed hardware and
// are never created or destroyed at runtime.
type Station struct {
	ID    StationID
	Name  string
	Short string
	Notes string
}

// Stations статический каталог станций зала.
// Порядок важен: он определяет порядок в ответах API и в WhatsApp-подсказках.
var Stations = []Station{
	{ID: StationXboxSeriesX, Name: "Xbox Series X", Short: "Series X", Notes: "Main station (usually connected)."},
	{ID: StationPS5, Name: "PlayStation 5", Short: "PS5", Notes: "Main station (usually connected)."},
	{ID: StationXboxOneS, Name: "Xbox One S", Short: "One S", Notes: "Main station (usually connected)."},
	{ID: StationXbox360, Name: "Xbox 360", Short: "360", Notes: "Backup console (swap-in if needed)."},
}

// StationByID returns the catalog entry for id.
func StationByID(id StationID) (Station, bool) {
	for _, s := range Stations {
		if s.ID == id {
			return s, true
		}
	}
	return Station{}, false
}

// IsKnownStation returns true if id exists in the catalog.
func IsKnownStation(id StationID) bool {
	_, ok := StationByID(id)
	return ok
}

// StationIDs returns all catalog ids in display order.
func StationIDs() []StationID {
	ids := make([]StationID, len(Stations))
	for i, s := range Stations {
		ids[i] = s.ID
	}
	return ids
}

// StationName returns the full display name, falling back to the raw id for
// unknown values (legacy records).
func StationName(id StationID) string {
	if s, ok := StationByID(id); ok {
		return s.Name
	}
	return string(id)
}

// StationShort returns the short display name.
func StationShort(id StationID) string {
	if s, ok := StationByID(id); ok {
		return s.Short
	}
	return string(id)
}
