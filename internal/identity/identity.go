package identity

import "strings"

// historicalCodes maps franchise codes from older seasons onto the code the
// lineage uses today. Codes absent from the table are assumed current.
var historicalCodes = map[string]string{
	"NJN": "BRK", // New Jersey Nets -> Brooklyn Nets
	"NOH": "NOP", // New Orleans Hornets -> New Orleans Pelicans
	"CHA": "CHO", // Charlotte Bobcats -> Charlotte Hornets
	"CHH": "CHO", // Charlotte Hornets (original) -> Charlotte Hornets
	"SEA": "OKC", // Seattle SuperSonics -> Oklahoma City Thunder
	"VAN": "MEM", // Vancouver Grizzlies -> Memphis Grizzlies
	"NOK": "NOP", // New Orleans/Oklahoma City Hornets -> New Orleans Pelicans
}

// franchiseNicknames maps the free-text team names used by the championship
// source onto canonical codes. Lookup is exact; unmapped names are dropped
// by callers.
var franchiseNicknames = map[string]string{
	"Lakers":    "LAL",
	"Celtics":   "BOS",
	"Rockets":   "HOU",
	"Sixers":    "PHI",
	"Pistons":   "DET",
	"Blazers":   "POR",
	"Bulls":     "CHI",
	"Suns":      "PHX",
	"Knicks":    "NYK",
	"Magic":     "ORL",
	"Spurs":     "SAS",
	"Heat":      "MIA",
	"Mavericks": "DAL",
	"Cavaliers": "CLE",
	"Thunder":   "OKC",
	"Warriors":  "GSW",
	"Sonics":    "OKC", // Seattle SuperSonics lineage
	"Jazz":      "UTA",
	"Pacers":    "IND",
	"Nets":      "BRK",
}

// CanonicalCode resolves a team code to the canonical code for its franchise
// lineage. Codes without a known historical mapping pass through unchanged.
func CanonicalCode(code string) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if canonical, ok := historicalCodes[normalized]; ok {
		return canonical
	}
	return normalized
}

// CodeForFranchiseName resolves a free-text franchise nickname to a canonical
// code. Returns ok=false for names outside the curated table; there is no
// fuzzy matching on purpose, so unmapped rows stay visible as data loss.
func CodeForFranchiseName(name string) (string, bool) {
	code, ok := franchiseNicknames[strings.TrimSpace(name)]
	return code, ok
}
