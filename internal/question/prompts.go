package question

import (
	"fmt"
	"strings"
)

const cityPromptBase = `Pick one capital city of the world for a geography trivia round.
Return its country, latitude, longitude, exactly three other capital cities
as plausible distractor answers, and one short fun fact about the city.`

func cityPrompt(seen []string) string {
	if len(seen) == 0 {
		return cityPromptBase
	}
	return fmt.Sprintf("%s\nDo not pick any of these cities: %s.", cityPromptBase, strings.Join(seen, ", "))
}

func imagePrompt(city, country string) string {
	return fmt.Sprintf(
		"Generate a photorealistic daytime image of the skyline of %s, %s. No text or captions in the image.",
		city, country,
	)
}
