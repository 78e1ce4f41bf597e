package types

import (
	"time"
)

// cli related.
// CliFlags defines the structure for command-line flags, including the Steam
// library overrides, wiki lookup toggle, result display and save options,
// output directory, and result limits shared by the find and search commands.
type CliFlags struct {
	InstalledOnly   bool
	JSONOutput      bool
	Limit           int
	MaxResults      int
	NoWiki          bool
	Open            bool
	OutputDirectory string
	Quiet           bool
	SaveResults     bool
	SteamLibraries  []string
	Verbose         bool
}

// end cli related.

// steam catalog related.

// AppListResponse mirrors the JSON envelope returned by the Steam
// GetAppList endpoint: {"applist": {"apps": [{"appid": ..., "name": ...}]}}.
type AppListResponse struct {
	AppList struct {
		Apps []SteamApp `json:"apps"`
	} `json:"applist"`
}

// SteamApp is one entry of the Steam app catalog.
type SteamApp struct {
	AppID int64  `json:"appid"`
	Name  string `json:"name"`
}

// end steam catalog related.

// discovery related.

// LocationCategory names the provenance of a discovered folder. The fixed
// categories correspond to the probed Proton prefix sub-locations; WikiHint
// entries are produced from resolved PCGamingWiki path templates.
type LocationCategory string

const (
	CategoryAppDataLocal    LocationCategory = "AppData/Local"
	CategoryAppDataRoaming  LocationCategory = "AppData/Roaming"
	CategoryAppDataLocalLow LocationCategory = "AppData/LocalLow"
	CategoryDocuments       LocationCategory = "Documents"
	CategoryMyGames         LocationCategory = "My Games"
	CategorySavedGames      LocationCategory = "Saved Games"
	CategoryWikiHint        LocationCategory = "Wiki Save Location"
)

// ScoredFolder is one ranked discovery result. Label carries the provenance
// (category plus confidence tier), Priority orders the final listing, and
// LastModified is nil when the folder's mtime could not be read.
type ScoredFolder struct {
	Label        string           `json:"label"`
	Category     LocationCategory `json:"category"`
	Path         string           `json:"path"`
	Priority     int              `json:"priority"`
	LastModified *time.Time       `json:"lastModified,omitempty"`
}

// end discovery related.
