// Package scraper retrieves PGSoft catalog pages and extracts game data.
package scraper

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/constants"
	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
	"github.com/nova88bet/telegram-lottery-bot/internal/domain/repository"
)

var (
	gameIDPattern  = regexp.MustCompile(`/games/([^/]+)/?`)
	percentPattern = regexp.MustCompile(`(\d+\.\d+)%`)
	rtpTextPattern = regexp.MustCompile(`(?i)rtp\D*(\d+\.\d+)%`)
)

// Images for games whose pages tend to lack usable artwork.
var fallbackImages = map[string]string{
	"pg-soft-mahjong-ways":      "https://www.pgslot9999.com/wp-content/uploads/2020/02/mahjong-ways-1536x864.jpg",
	"pg-soft-mahjong-ways-2":    "https://pgsoftlb.com/wp-content/uploads/2021/02/Mahjong-Ways-2-min-1.jpg",
	"pg-soft-fortune-mouse":     "https://www.pgslot9999.com/wp-content/uploads/2020/02/fortune-mouse-1536x864.jpg",
	"pg-soft-lucky-neko":        "https://pgslot.cc/wp-content/uploads/2020/12/lucky-neko.jpg",
	"pg-soft-dragon-tiger-luck": "https://www.pgslot9999.com/wp-content/uploads/2020/02/dragon-tiger-luck-1536x864.jpg",
}

// PGSoftScraper fetches game data from the official PGSoft website.
type PGSoftScraper struct {
	client  *http.Client
	baseURL string
}

// New creates a scraper with the bounded fetch timeout.
func New() *PGSoftScraper {
	return &PGSoftScraper{
		client:  &http.Client{Timeout: constants.FetchTimeout},
		baseURL: constants.CatalogBaseURL,
	}
}

var _ repository.GameFetcher = (*PGSoftScraper)(nil)

// FetchGameDetails retrieves the detail page for gameID. On any fetch or
// parse failure it returns the placeholder record together with the error,
// so the caller can persist something and avoid a fetch storm.
func (s *PGSoftScraper) FetchGameDetails(ctx context.Context, gameID string) (entity.Game, error) {
	detailURL := s.baseURL + gameID + "/"

	game := entity.Game{
		GameID:      gameID,
		Name:        FormatGameName(gameID),
		Description: "",
		ImageURL:    FallbackImageURL(gameID),
		RTP:         "N/A",
		DetailURL:   detailURL,
		LastUpdated: time.Now().UTC(),
	}

	log.Printf("🔎 Fetching game details from %s", detailURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, detailURL, nil)
	if err != nil {
		return game, fmt.Errorf("failed to build request for %s: %w", detailURL, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return game, fmt.Errorf("failed to fetch %s: %w", detailURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return game, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, detailURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return game, fmt.Errorf("failed to parse %s: %w", detailURL, err)
	}

	// Missing selectors degrade individual fields, never the whole record.
	if name := strings.TrimSpace(doc.Find(".game-detail-title h1").First().Text()); name != "" {
		game.Name = name
	}
	if src, ok := doc.Find(".game-banner img").First().Attr("src"); ok && src != "" {
		game.ImageURL = src
	}
	if description := strings.TrimSpace(doc.Find(".game-description").First().Text()); description != "" {
		game.Description = description
	}
	if rtp := extractRTP(doc); rtp != "N/A" {
		game.RTP = rtp
	}

	return game, nil
}

// FetchGameList retrieves the catalog index page.
func (s *PGSoftScraper) FetchGameList(ctx context.Context) ([]entity.Game, error) {
	log.Printf("🔎 Fetching game list from %s", s.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", s.baseURL, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, s.baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse game list: %w", err)
	}

	var games []entity.Game
	doc.Find(".game-card").Each(func(_ int, card *goquery.Selection) {
		href, ok := card.Find("a").First().Attr("href")
		if !ok {
			return
		}
		gameID := ExtractGameID(href)
		if gameID == "" {
			return
		}

		game := entity.Game{
			GameID:      gameID,
			Name:        "Unknown Game",
			DetailURL:   href,
			LastUpdated: time.Now().UTC(),
		}
		if src, ok := card.Find("img").First().Attr("src"); ok {
			game.ImageURL = src
		}
		if name := strings.TrimSpace(card.Find(".game-card-title").First().Text()); name != "" {
			game.Name = name
		}
		games = append(games, game)
	})

	log.Printf("✅ Found %d PGSoft games", len(games))
	return games, nil
}

// extractRTP tries three strategies in order, first match wins.
func extractRTP(doc *goquery.Document) string {
	// 1. Dedicated info sections
	rtp := "N/A"
	doc.Find(".game-info-item").EachWithBreak(func(_ int, section *goquery.Selection) bool {
		text := strings.ToLower(section.Text())
		if strings.Contains(text, "rtp") {
			if m := percentPattern.FindStringSubmatch(text); m != nil {
				rtp = m[1] + "%"
				return false
			}
		}
		return true
	})
	if rtp != "N/A" {
		return rtp
	}

	// 2. The game description
	if description := doc.Find(".game-description").First().Text(); description != "" {
		if m := rtpTextPattern.FindStringSubmatch(description); m != nil {
			return m[1] + "%"
		}
	}

	// 3. Any feature block mentioning RTP / return to player
	doc.Find(".game-feature").EachWithBreak(func(_ int, feature *goquery.Selection) bool {
		text := strings.ToLower(feature.Text())
		if strings.Contains(text, "rtp") || strings.Contains(text, "return to player") {
			if m := percentPattern.FindStringSubmatch(text); m != nil {
				rtp = m[1] + "%"
				return false
			}
		}
		return true
	})
	return rtp
}

// ExtractGameID pulls the game identifier out of a catalog URL.
func ExtractGameID(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	if m := gameIDPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}

// FormatGameName turns an identifier back into a readable display name.
func FormatGameName(gameID string) string {
	if gameID == "" {
		return "Unknown Game"
	}
	name := strings.TrimPrefix(gameID, constants.GameIDPrefix)
	words := strings.Split(strings.ReplaceAll(name, "-", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// FallbackImageURL returns known artwork for the identifier, or the generic
// default image.
func FallbackImageURL(gameID string) string {
	if img, ok := fallbackImages[gameID]; ok {
		return img
	}
	return constants.DefaultGameImageURL
}
