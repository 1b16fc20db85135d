package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"

	"github.com/cadenza-labs/cadenza/internal/adapters/gemini"
	"github.com/cadenza-labs/cadenza/internal/adapters/spotify"
	"github.com/cadenza-labs/cadenza/internal/adapters/sqlite"
	"github.com/cadenza-labs/cadenza/internal/config"
	"github.com/cadenza-labs/cadenza/internal/core/domain"
	"github.com/cadenza-labs/cadenza/internal/core/ports"
	"github.com/cadenza-labs/cadenza/internal/core/services"
)

var spotifyEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.spotify.com/authorize",
	TokenURL: "https://accounts.spotify.com/api/token",
}

func main() {
	preview := flag.Bool("preview", false, "run the pipeline without creating the playlist")
	history := flag.Int("history", 0, "print the last N recorded runs and exit")
	size := flag.Int("size", 0, "playlist size (overrides CURATOR_PLAYLIST_SIZE)")
	mood := flag.String("mood", "", "mood hint for the playlist concept")
	theme := flag.String("theme", "", "theme hint for the playlist concept")
	occasion := flag.String("occasion", "", "occasion hint for the playlist concept")
	flag.Parse()

	// 1. Configuration. Crash early if required settings are missing.
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO curator: no .env file loaded: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	if *size > 0 {
		cfg.PlaylistSize = *size
	}
	if *mood != "" {
		cfg.Mood = *mood
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *occasion != "" {
		cfg.Occasion = *occasion
	}

	ctx := context.Background()

	// 2. Run-history repository.
	repo, err := sqlite.NewAdapter(cfg.DBPath)
	if err != nil {
		log.Fatalf("FATAL: failed to initialize database: %v", err)
	}
	defer repo.Close()

	if *history > 0 {
		printHistory(ctx, repo, *history)
		return
	}

	// 3. Authenticated catalog session. The refresh token is the opaque
	// listener-bound handle; oauth2 keeps the access token fresh.
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.SpotifyClientID,
		ClientSecret: cfg.SpotifyClientSecret,
		RedirectURL:  cfg.SpotifyRedirectURL,
		Endpoint:     spotifyEndpoint,
	}
	tokenSource := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.SpotifyRefreshToken})
	httpClient := oauth2.NewClient(ctx, tokenSource)

	catalog := spotify.NewClient(httpClient, "", spotify.WithMarket(cfg.Market))

	// 4. Generative text service, optional.
	var gen ports.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gen = gemini.NewClient(cfg.GeminiAPIKey, "", cfg.GeminiModel)
		log.Println("INFO curator: AI features enabled")
	} else {
		log.Println("WARN curator: no Gemini API key provided, AI features disabled")
	}

	// 5. Pipeline.
	pipeline := services.NewPipeline(catalog, gen, repo)
	opts := services.Options{
		PlaylistSize: cfg.PlaylistSize,
		TimeRange:    parseTimeRange(cfg.TimeRange),
		Mood:         cfg.Mood,
		Theme:        cfg.Theme,
		Occasion:     cfg.Occasion,
	}

	if *preview {
		result, err := pipeline.GeneratePreview(ctx, opts)
		if err != nil {
			log.Fatalf("FATAL: preview failed: %v", err)
		}
		printPreview(result)
		return
	}

	result, err := pipeline.Generate(ctx, opts)
	if err != nil {
		log.Fatalf("FATAL: playlist generation failed: %v", err)
	}
	printResult(result)
}

func parseTimeRange(raw string) ports.TimeRange {
	switch raw {
	case "short":
		return ports.RangeShort
	case "long":
		return ports.RangeLong
	default:
		return ports.RangeMedium
	}
}

func printResult(result *services.Result) {
	fmt.Println("\n🎶 Playlist created!")
	fmt.Printf("Name:        %s\n", result.Playlist.Name)
	if result.Playlist.URL != "" {
		fmt.Printf("URL:         %s\n", result.Playlist.URL)
	}
	fmt.Printf("Description: %s\n", result.Description)
	printAnalysis(result.Analysis, result.Concept)
	printSelection(result.Selected)
}

func printPreview(preview *services.Preview) {
	fmt.Println("\n🎶 Playlist preview (nothing written)")
	fmt.Printf("Name:        %s\n", preview.Name)
	fmt.Printf("Description: %s\n", preview.Description)
	printAnalysis(preview.Analysis, preview.Concept)
	printSelection(preview.Selected)
}

func printAnalysis(analysis domain.TasteAnalysis, concept domain.PlaylistConcept) {
	fmt.Println("\nTaste analysis:")
	fmt.Printf("  Personality:    %s\n", analysis.Personality)
	fmt.Printf("  Primary genres: %s\n", strings.Join(analysis.PrimaryGenres, ", "))
	fmt.Printf("  Moods:          %s\n", strings.Join(analysis.MoodPreferences, ", "))
	fmt.Printf("  Similar:        %s\n", strings.Join(analysis.Discovery.SimilarArtists, ", "))
	fmt.Printf("  Insight:        %s\n", analysis.Insight)
	fmt.Println("\nConcept:")
	fmt.Printf("  Target mood:    %s\n", concept.TargetMood)
	fmt.Printf("  Energy:         %s\n", concept.Energy)
	fmt.Printf("  Genre focus:    %s\n", strings.Join(concept.GenreFocus, ", "))
}

func printSelection(selected []domain.ScoredCandidate) {
	fmt.Printf("\nSelected tracks (%d):\n", len(selected))
	for i, candidate := range selected {
		fmt.Printf("  %2d. %s — %s (score %.1f)\n",
			i+1, candidate.Track.Title, strings.Join(candidate.Track.Artists, ", "), candidate.Score)
	}
}

func printHistory(ctx context.Context, repo *sqlite.Adapter, limit int) {
	runs, err := repo.Recent(ctx, limit)
	if err != nil {
		log.Fatalf("FATAL: loading run history: %v", err)
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs yet.")
		return
	}
	for _, run := range runs {
		fmt.Printf("%s  %s (%d tracks)\n", run.CreatedAt.Format("2006-01-02 15:04"), run.Name, run.TrackCount)
		for _, t := range run.Tracks {
			fmt.Printf("    %2d. %s — %s\n", t.Position, t.Title, t.Artists)
		}
	}
}
