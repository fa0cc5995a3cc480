// Command main writes the default content into the configured storage
// backend, optionally padding it with generated demo posts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"studio/internal/config"
	"studio/internal/models"
	"studio/internal/seed"
	"studio/internal/storage"

	"github.com/brianvoe/gofakeit/v6"
)

func main() {
	force := flag.Bool("force", false, "Overwrite slots that already hold content")
	demoPosts := flag.Int("demo-posts", 0, "Number of generated demo posts to append")
	flag.Parse()

	log.Println("Content Seeder")
	log.Println("==============")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := storage.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	posts := seed.Posts()
	if *demoPosts > 0 {
		posts = append(posts, generatePosts(*demoPosts)...)
		log.Printf("Generated %d demo posts", *demoPosts)
	}

	if err := seedSlice(ctx, store, storage.PostsSlot, posts, *force); err != nil {
		log.Fatalf("Post seeding failed: %v", err)
	}
	if err := seedSlice(ctx, store, storage.ProjectsSlot, seed.Projects(), *force); err != nil {
		log.Fatalf("Project seeding failed: %v", err)
	}
	if err := seedOne(ctx, store, storage.AboutSlot, seed.About(), *force); err != nil {
		log.Fatalf("About seeding failed: %v", err)
	}

	log.Println("All done. Content slots are populated.")
}

// seedSlice fills a collection slot. Without -force, a slot that already
// holds content is left alone.
func seedSlice[T any](ctx context.Context, store storage.SlotStore, key string, items []T, force bool) error {
	if !force {
		if _, ok, err := store.Read(ctx, key); err != nil {
			return err
		} else if ok {
			log.Printf("Slot %q already populated, skipping (use -force to overwrite)", key)
			return nil
		}
	}
	if err := storage.SaveSlice(ctx, store, key, items); err != nil {
		return err
	}
	log.Printf("Wrote %d entries to slot %q", len(items), key)
	return nil
}

func seedOne[T any](ctx context.Context, store storage.SlotStore, key string, item T, force bool) error {
	if !force {
		if _, ok, err := store.Read(ctx, key); err != nil {
			return err
		} else if ok {
			log.Printf("Slot %q already populated, skipping (use -force to overwrite)", key)
			return nil
		}
	}
	if err := storage.SaveOne(ctx, store, key, item); err != nil {
		return err
	}
	log.Printf("Wrote slot %q", key)
	return nil
}

// generatePosts fabricates plausible draft posts for local development.
func generatePosts(n int) []models.Post {
	categories := []string{"ai-news", "tutorials", "case-studies"}
	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		title := strings.TrimSuffix(gofakeit.HipsterSentence(4), ".")
		posts = append(posts, models.Post{
			ID:        fmt.Sprintf("demo-%d", i+1),
			Slug:      gofakeit.Slug(),
			Title:     title,
			Category:  categories[i%len(categories)],
			Content:   gofakeit.Paragraph(4, 5, 12, "\n\n"),
			Excerpt:   gofakeit.Sentence(12),
			Published: false,
			Date: gofakeit.DateRange(
				time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Now(),
			).Format("2006-01-02"),
			Author: seed.Author,
			Tags:   []string{gofakeit.BuzzWord(), gofakeit.BuzzWord()},
		})
	}
	return posts
}
