package ui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pterm/pterm"
)

const bannerText = `
██╗      █████╗ ███╗   ██╗ ██████╗ ███████╗ █████╗ ██╗      █████╗ ██████╗ ██╗███████╗███████╗
██║     ██╔══██╗████╗  ██║██╔════╝ ██╔════╝██╔══██╗██║     ██╔══██╗██╔══██╗██║██╔════╝██╔════╝
██║     ███████║██╔██╗ ██║██║  ███╗███████╗███████║██║     ███████║██████╔╝██║█████╗  ███████╗
██║     ██╔══██║██║╚██╗██║██║   ██║╚════██║██╔══██║██║     ██╔══██║██╔══██╗██║██╔══╝  ╚════██║
███████╗██║  ██║██║ ╚████║╚██████╔╝███████║██║  ██║███████╗██║  ██║██║  ██║██║███████╗███████║
╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚══════╝╚══════╝
 programmer salaries in Moscow, by language
`

// ColorizeText fades text between two random colors
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	runes := []rune(text)
	half := len(runes) / 2
	if half == 0 {
		return text
	}

	var colored string
	for i, r := range runes {
		colored += startColor.Fade(0, float32(half), float32(i%half), endColor).Sprint(string(r))
	}
	return colored
}

// PrintBanner displays the application banner
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}
