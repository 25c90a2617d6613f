package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/constants"
	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
	"github.com/nova88bet/telegram-lottery-bot/internal/domain/repository"
)

// PGSoft titles shown when neither the store nor the catalog can help.
var popularGames = []string{
	"Mahjong Ways",
	"Mahjong Ways 2",
	"Fortune Mouse",
	"Lucky Neko",
	"Treasures of Aztec",
	"Wild Bandito",
	"Ganesha Fortune",
	"Queen of Bounty",
	"Dragon Hatch",
	"Gem Saviour Sword",
	"Phoenix Rises",
	"Dreams of Macau",
	"Leprechaun Riches",
	"Medusa 2",
	"Buffalo Win",
	"Dragon Tiger Luck",
	"Candy Burst",
	"Piggy Gold",
	"The Great Icescape",
	"Jungle Delight",
}

// Identifiers for titles whose names do not hyphenate cleanly, checked
// before the mechanical derivation.
var gameIDMapping = map[string]string{
	"mahjong ways":       "pg-soft-mahjong-ways",
	"mahjong ways 2":     "pg-soft-mahjong-ways-2",
	"fortune mouse":      "pg-soft-fortune-mouse",
	"lucky neko":         "pg-soft-lucky-neko",
	"treasures of aztec": "pg-soft-treasures-of-aztec",
	"wild bandito":       "pg-soft-wild-bandito",
	"ganesha fortune":    "pg-soft-ganesha-fortune",
	"queen of bounty":    "pg-soft-queen-of-bounty",
	"dragon hatch":       "pg-soft-dragon-hatch",
	"gem saviour sword":  "pg-soft-gem-saviour-sword",
	"phoenix rises":      "pg-soft-phoenix-rises",
	"dreams of macau":    "pg-soft-dreams-of-macau",
	"leprechaun riches":  "pg-soft-leprechaun-riches",
	"medusa 2":           "pg-soft-medusa-2",
	"buffalo win":        "pg-soft-buffalo-win",
	"dragon tiger luck":  "pg-soft-dragon-tiger-luck",
	"candy burst":        "pg-soft-candy-burst",
	"piggy gold":         "pg-soft-piggy-gold",
	"the great icescape": "pg-soft-the-great-icescape",
	"jungle delight":     "pg-soft-jungle-delight",
}

// Artwork keyed by lowercased game name, used when a record carries no
// image of its own.
var genericFallbackImages = map[string]string{
	"mahjong ways":       "https://45.76.150.54/wp-content/uploads/2025/05/1.jpg",
	"mahjong ways 2":     "https://45.76.150.54/wp-content/uploads/2025/05/1.jpg",
	"fortune mouse":      "https://45.76.150.54/wp-content/uploads/2025/05/2.jpg",
	"lucky neko":         "https://pgslot.cc/wp-content/uploads/2020/12/lucky-neko.jpg",
	"dragon tiger luck":  "https://www.pgslot9999.com/wp-content/uploads/2020/02/dragon-tiger-luck-1536x864.jpg",
	"treasures of aztec": "https://www.pgslot9999.com/wp-content/uploads/2020/02/treasures-of-aztec-1536x864.jpg",
	"ganesha fortune":    "https://www.pgslot9999.com/wp-content/uploads/2020/02/ganesha-fortune-1536x864.jpg",
	"wild bandito":       "https://www.pgslot9999.com/wp-content/uploads/2020/02/wild-bandito-1536x864.jpg",
	"queen of bounty":    "https://www.pgslot9999.com/wp-content/uploads/2020/02/queen-of-bounty-1536x864.jpg",
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveGameID maps a user-supplied game name to a catalog identifier.
func DeriveGameID(gameName string) string {
	normalized := strings.ToLower(strings.TrimSpace(gameName))
	if id, ok := gameIDMapping[normalized]; ok {
		return id
	}
	return constants.GameIDPrefix + nonAlphanumeric.ReplaceAllString(normalized, "-")
}

// SlotGameUsecase answers slot game info requests by combining stored or
// freshly scraped catalog data with AI-written overviews.
type SlotGameUsecase struct {
	ai      repository.AIRepository
	store   repository.GameRepository
	fetcher repository.GameFetcher
	now     func() time.Time
}

// NewSlotGameUsecase wires the store and fetcher behind the game info flow.
func NewSlotGameUsecase(ai repository.AIRepository, store repository.GameRepository, fetcher repository.GameFetcher) *SlotGameUsecase {
	return &SlotGameUsecase{ai: ai, store: store, fetcher: fetcher, now: time.Now}
}

// GetGameInfo returns a formatted overview of the named game together with
// an image URL. Stored records within the freshness window are reused;
// otherwise the catalog is scraped and the result persisted. When the
// catalog cannot be reached a generic overview is written instead.
func (u *SlotGameUsecase) GetGameInfo(ctx context.Context, gameName string, lang entity.LanguageCode) entity.GameInfo {
	template, ok := gameInfoTemplates[lang]
	if !ok {
		log.Printf("⚠️ Language %q not supported for slot game info, using Vietnamese", lang)
		lang = entity.DefaultLanguage
		template = gameInfoTemplates[lang]
	}

	game, err := u.acquireGame(ctx, gameName)
	if err != nil {
		log.Printf("⚠️ Could not get catalog data for %q, using generic info: %v", gameName, err)
		return u.genericGameInfo(ctx, gameName, lang, template)
	}

	imageURL := game.ImageURL
	if imageURL == "" {
		imageURL = imageForName(game.Name)
	}

	prompt := fmt.Sprintf(template.scrapedPrompt, game.Name, game.Description, game.RTP, game.DetailURL)
	overview, err := u.ai.GenerateText(ctx, template.system, prompt, constants.GameInfoMaxTokens)
	if err != nil {
		log.Printf("❌ Failed to generate game info for %q: %v", gameName, err)
		return entity.GameInfo{Text: fmt.Sprintf(template.errorMessage, gameName)}
	}

	text := fmt.Sprintf("\n%s\n\n%s\n\n%s\n\n%s\n\n%s\n",
		fmt.Sprintf(template.header, strings.ToUpper(game.Name)),
		overview,
		fmt.Sprintf(template.rtpLabel, game.RTP),
		template.footer,
		template.playButton,
	)
	return entity.GameInfo{Text: text, ImageURL: imageURL}
}

// acquireGame resolves a game record from the store or the catalog. A
// failed fetch still persists the placeholder so repeated requests for a
// dead page do not hammer the catalog, and the error is passed up to route
// the request onto the generic path.
func (u *SlotGameUsecase) acquireGame(ctx context.Context, gameName string) (entity.Game, error) {
	gameID := DeriveGameID(gameName)

	cached, found, err := u.store.Get(ctx, gameID)
	if err != nil {
		log.Printf("⚠️ Game store lookup failed for %s: %v", gameID, err)
	}
	if found && cached.Fresh(u.now()) {
		log.Printf("✅ Using stored game data for %s", gameID)
		return cached, nil
	}

	log.Printf("🔄 Fetching fresh game data for %s", gameID)
	game, fetchErr := u.fetcher.FetchGameDetails(ctx, gameID)
	if storeErr := u.store.Upsert(ctx, game); storeErr != nil {
		log.Printf("⚠️ Failed to store game %s: %v", gameID, storeErr)
	}
	if fetchErr != nil {
		return game, fetchErr
	}
	return game, nil
}

// genericGameInfo writes an overview from the model's own knowledge when no
// catalog data is available.
func (u *SlotGameUsecase) genericGameInfo(ctx context.Context, gameName string, lang entity.LanguageCode, template gameInfoTemplate) entity.GameInfo {
	imageURL := imageForName(gameName)

	prompt := fmt.Sprintf(template.genericPrompt, gameName)
	overview, err := u.ai.GenerateText(ctx, template.system, prompt, constants.GameInfoMaxTokens)
	if err != nil {
		log.Printf("❌ Failed to generate generic game info for %q: %v", gameName, err)
		return entity.GameInfo{Text: fmt.Sprintf(template.errorMessage, gameName)}
	}

	text := fmt.Sprintf("\n%s\n\n%s\n\n%s\n\n%s\n",
		fmt.Sprintf(template.header, strings.ToUpper(gameName)),
		overview,
		template.footer,
		template.playButton,
	)
	return entity.GameInfo{Text: text, ImageURL: imageURL}
}

// PopularGames returns the formatted list of popular PGSoft titles. Stored
// records are preferred, the live catalog tops the list up, and the static
// list covers total failure.
func (u *SlotGameUsecase) PopularGames(ctx context.Context, lang entity.LanguageCode) string {
	template, ok := gameListTemplates[lang]
	if !ok {
		log.Printf("⚠️ Language %q not supported for game list, using Vietnamese", lang)
		template = gameListTemplates[entity.DefaultLanguage]
	}

	names := u.collectGameNames(ctx)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(template.header)
	b.WriteString("\n\n")
	for i, name := range names {
		if i >= 20 {
			break
		}
		fmt.Fprintf(&b, "🎮 %d. %s\n", i+1, name)
	}
	b.WriteString("\n")
	b.WriteString(template.usageInfo)
	b.WriteString("\n")
	b.WriteString(template.example)
	b.WriteString("\n\n")
	b.WriteString(template.playButton)
	b.WriteString("\n")
	return b.String()
}

func (u *SlotGameUsecase) collectGameNames(ctx context.Context) []string {
	var names []string
	seen := make(map[string]bool)

	stored, err := u.store.List(ctx)
	if err != nil {
		log.Printf("⚠️ Failed to list stored games: %v", err)
	}
	for _, game := range stored {
		if game.Name != "" && !seen[game.Name] {
			names = append(names, game.Name)
			seen[game.Name] = true
		}
	}

	if len(names) < 5 {
		fetched, err := u.fetcher.FetchGameList(ctx)
		if err != nil {
			log.Printf("⚠️ Failed to fetch game list: %v", err)
		}
		for _, game := range fetched {
			if len(names) >= 20 {
				break
			}
			if game.Name != "" && !seen[game.Name] {
				names = append(names, game.Name)
				seen[game.Name] = true
			}
		}
	}

	if len(names) == 0 {
		names = popularGames
	}
	return names
}

func imageForName(gameName string) string {
	if img, ok := genericFallbackImages[strings.ToLower(strings.TrimSpace(gameName))]; ok {
		return img
	}
	return constants.DefaultGameImageURL
}
