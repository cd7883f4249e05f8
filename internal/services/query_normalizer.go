package services

import (
	"strings"
	"unicode"

	"fleet-eta-service/internal/domain"
)

// ParseQuery turns free text like "ETA 5051 to Dallas TX" or
// "Chicago IL to Dallas TX" into a ParsedIntent. ok=false means the
// text is unparseable; the caller falls back to structured fields.
//
// The grammar is intentionally small: the leftmost token containing a
// digit is taken as a vehicle reference, so a city name with a digit in
// it is misread as a vehicle. Callers depend on this tie-break; do not
// change it without an API revision.
func ParseQuery(text string) (domain.ParsedIntent, bool) {
	tokens := strings.Fields(text)
	if len(tokens) < 2 {
		return domain.ParsedIntent{}, false
	}

	toIdx := -1
	for i, t := range tokens {
		if strings.EqualFold(t, "to") {
			toIdx = i
			break
		}
	}

	vehicleIdx := -1
	for i, t := range tokens {
		if containsDigit(t) {
			vehicleIdx = i
			break
		}
	}

	if vehicleIdx >= 0 {
		return parseVehicleQuery(tokens, vehicleIdx, toIdx)
	}
	return parseCityQuery(tokens, toIdx)
}

// Vehicle branch: "<...> 5051 [to] <city...> <ST>".
func parseVehicleQuery(tokens []string, vehicleIdx, toIdx int) (domain.ParsedIntent, bool) {
	intent := domain.ParsedIntent{
		Mode:       domain.IntentVehicle,
		VehicleRef: tokens[vehicleIdx],
	}

	var destTokens []string
	if toIdx > vehicleIdx && toIdx < len(tokens)-1 {
		destTokens = tokens[toIdx+1:]
	} else {
		destTokens = tokens[vehicleIdx+1:]
	}

	// A destination needs at least a city token and a state token;
	// anything shorter leaves a vehicle-only intent.
	if len(destTokens) >= 2 {
		intent.DestinationCity = strings.Join(destTokens[:len(destTokens)-1], " ")
		intent.DestinationState = destTokens[len(destTokens)-1]
	}

	return intent, true
}

// City branch: "<city...> <ST> to <city...> <ST>".
func parseCityQuery(tokens []string, toIdx int) (domain.ParsedIntent, bool) {
	if toIdx < 1 || toIdx >= len(tokens)-1 {
		return domain.ParsedIntent{}, false
	}

	before := tokens[:toIdx]
	after := tokens[toIdx+1:]
	if len(before) < 2 || len(after) < 2 {
		return domain.ParsedIntent{}, false
	}

	return domain.ParsedIntent{
		Mode:             domain.IntentCity,
		OriginCity:       strings.Join(before[:len(before)-1], " "),
		OriginState:      before[len(before)-1],
		DestinationCity:  strings.Join(after[:len(after)-1], " "),
		DestinationState: after[len(after)-1],
	}, true
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
