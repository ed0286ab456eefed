package content

import (
	"errors"

	"sitecontent/internal/cms"
)

var (
	ErrHomePayloadMissing = errors.New("home: payload missing")
	ErrHomeHeroMissing    = errors.New("home: hero section missing")
)

// MapHomePage builds the home page view-model. The home page declares
// no-fallback: an absent payload or an absent hero section is a hard error
// rather than a defaulted render.
func MapHomePage(raw any) (HomePage, error) {
	entry, ok := cms.EntryFrom(raw)
	if !ok {
		return HomePage{}, ErrHomePayloadMissing
	}

	slides, ok := entry.Entries("hero")
	if !ok || len(slides) == 0 {
		return HomePage{}, ErrHomeHeroMissing
	}

	vm := HomePage{Hero: make([]HeroSlide, 0, len(slides))}
	for _, s := range slides {
		vm.Hero = append(vm.Hero, HeroSlide{
			Title:    s.String("title"),
			Subtitle: s.String("subtitle"),
			ImageURL: mediaURL(s, "image"),
			LinkURL:  s.String("link"),
		})
	}

	// Highlights are optional; present-but-empty maps to an empty slice.
	if cards, ok := entry.Entries("highlights"); ok {
		vm.Highlights = make([]Highlight, 0, len(cards))
		for _, c := range cards {
			vm.Highlights = append(vm.Highlights, Highlight{
				Title:   c.String("title"),
				Body:    c.String("body"),
				IconURL: mediaURL(c, "icon"),
			})
		}
	}

	return vm, nil
}

// mediaURL resolves an image field that may be a plain URL string or a
// nested media entity carrying a url attribute.
func mediaURL(e cms.Entry, key string) string {
	if s := e.String(key); s != "" {
		return s
	}
	if media, ok := e.Entry(key); ok {
		return media.String("url")
	}
	return ""
}
