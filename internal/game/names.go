package game

import (
	"math/rand/v2"
	"strings"
)

// NoInhabitants is shown in place of a demonym on an empty planet.
const NoInhabitants = "N/A"

var (
	nameVowels = []byte{'a', 'e', 'i', 'o', 'u'}
	// Some consonants are left out, they make ugly planet names.
	nameConsonants = []byte{'b', 'c', 'd', 'f', 'g', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'z'}
)

// RandomName builds a pronounceable planet name from alternating vowels and consonants.
func RandomName(rng *rand.Rand) string {
	letters := rng.IntN(4) + 4 // 4-7
	name := make([]byte, 0, letters+4)

	// Half the time start with a consonant
	if rng.IntN(2) == 0 {
		name = append(name, nameConsonants[rng.IntN(len(nameConsonants))])
	}

	for i := 0; i < letters; i += 2 {
		name = append(name,
			nameVowels[rng.IntN(len(nameVowels))],
			nameConsonants[rng.IntN(len(nameConsonants))],
		)

		// q is always followed by u unless it ends the name
		if name[len(name)-1] == 'q' && i+2 < letters {
			name = append(name, 'u')
			i++
		}
	}

	if rng.IntN(4) == 0 {
		name = append(name, 'i', 'a')
	}

	name[0] -= 'a' - 'A'
	return string(name)
}

// Demonym derives the name of a planet's inhabitants.
// Alia -> Alians, Mars -> Martians, Ulem -> Ulemians.
func Demonym(name string) string {
	switch {
	case name == "":
		return ""
	case strings.HasSuffix(name, "a"):
		return name + "ns"
	case strings.HasSuffix(name, "s"):
		return name[:len(name)-1] + "tians"
	default:
		return name + "ians"
	}
}
