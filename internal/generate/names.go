package generate

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"
)

var (
	//go:embed data/first_names.txt
	firstNamesRaw string
	//go:embed data/last_names.txt
	lastNamesRaw string
	//go:embed data/street_names.txt
	streetNamesRaw string
	//go:embed data/street_types.txt
	streetTypesRaw string
	//go:embed data/town_names.txt
	townNamesRaw string
	//go:embed data/zip_codes.txt
	zipCodesRaw string
	//go:embed data/tlds.txt
	tldsRaw string
	//go:embed data/product_adjectives.txt
	productAdjectivesRaw string
	//go:embed data/product_types.txt
	productTypesRaw string
)

var (
	firstNames        = splitLines(firstNamesRaw)
	lastNames         = splitLines(lastNamesRaw)
	streetNames       = splitLines(streetNamesRaw)
	streetTypes       = splitLines(streetTypesRaw)
	townNames         = splitLines(townNamesRaw)
	zipCodes          = splitLines(zipCodesRaw)
	tlds              = splitLines(tldsRaw)
	productAdjectives = splitLines(productAdjectivesRaw)
	productTypes      = splitLines(productTypesRaw)
)

func splitLines(raw string) []string {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func pick(rng *rand.Rand, list []string) string {
	return list[rng.Intn(len(list))]
}

func personName(rng *rand.Rand) (first, last string) {
	return pick(rng, firstNames), pick(rng, lastNames)
}

func streetAddress(rng *rand.Rand) string {
	return fmt.Sprintf("%d %s %s", 1+rng.Intn(9999), pick(rng, streetNames), pick(rng, streetTypes))
}

func phoneNumber(rng *rand.Rand) string {
	return fmt.Sprintf("(%d) %d-%04d", 200+rng.Intn(800), 200+rng.Intn(800), rng.Intn(10000))
}

func emailAddress(rng *rand.Rand, first, last string) string {
	return strings.ToLower(fmt.Sprintf("%s.%s@example.%s", first, last, pick(rng, tlds)))
}

func productName(rng *rand.Rand) string {
	return fmt.Sprintf("%s %s", pick(rng, productAdjectives), pick(rng, productTypes))
}
