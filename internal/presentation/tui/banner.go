package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/tradein/pkg/domain"
	"github.com/muesli/termenv"
)

var bannerLines = []string{
	" _____              _             _",
	"|_   _| __ __ _  __| | ___       (_)_ __",
	"  | || '__/ _` |/ _` |/ _ \\_____| | '_ \\",
	"  | || | | (_| | (_| |  __/_____| | | | |",
	"  |_||_|  \\__,_|\\__,_|\\___|     |_|_| |_|",
}

// PrintBanner writes the ASCII banner, striped in the platform accents, and the version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()
	platforms := domain.Platforms()

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		accent := platforms[i%len(platforms)].Theme().Accent
		fmt.Fprintln(w, termenv.String(line).Foreground(p.Color(accent)))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, termenv.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}
