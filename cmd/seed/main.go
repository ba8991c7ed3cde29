// Command seed writes demo profiles with listings into Firestore so the
// directory has content to work with locally. Seeded profiles are flagged
// isTestProfile and can be removed again with -delete.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"geniuses-backend-go/internal/config"
	"geniuses-backend-go/internal/db"
	"geniuses-backend-go/internal/models"
)

var demoListings = []models.ListingRequest{
	{Name: "Acme Yoga", Category: "Wellness & Spirituality", Headline: "Breathwork and movement", Description: "Group and 1:1 yoga sessions.", Skills: []string{"Yoga Teacher", "Life Coach"}},
	{Name: "Bright Ledger", Category: "Finance", Headline: "Accounting for small studios", Skills: []string{"Accountant"}},
	{Name: "Pixel Grove", Category: "Technology", Headline: "Web apps for wellness brands", Skills: []string{"Web Developer", "Designer"}},
	{Name: "Heart Space Events", Category: "Other", Headline: "Retreat and workshop planning", Skills: []string{"Events Planning"}},
	{Name: "Quiet Mind Coaching", Category: "Consulting", Headline: "Coaching for career changes", Skills: []string{"Life Coach", "Accountability Buddy"}},
}

func main() {
	count := flag.Int("count", 10, "number of demo profiles to create")
	deleteMode := flag.Bool("delete", false, "delete previously seeded profiles instead of creating")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := db.InitFirebase(ctx, appConfig); err != nil {
		logger.Fatal("failed to initialize Firebase", zap.Error(err))
	}
	client := db.GetFirestoreClient()
	defer client.Close()

	if *deleteMode {
		iter := client.Collection("profiles").Where("isTestProfile", "==", true).Documents(ctx)
		defer iter.Stop()
		deleted := 0
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				logger.Fatal("failed to iterate seeded profiles", zap.Error(err))
			}
			if _, err := doc.Ref.Delete(ctx); err != nil {
				logger.Fatal("failed to delete seeded profile", zap.Error(err), zap.String("id", doc.Ref.ID))
			}
			deleted++
		}
		logger.Info("seeded profiles deleted", zap.Int("count", deleted))
		return
	}

	repo := db.NewFirestoreProfileRepository(client)
	for i := 0; i < *count; i++ {
		req := demoListings[i%len(demoListings)]
		listing := models.Listing{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Category:    req.Category,
			Headline:    req.Headline,
			Description: req.Description,
			Skills:      req.Skills,
		}
		profile := &models.Profile{
			ID:                 fmt.Sprintf("seed%04d", i),
			DisplayName:        fmt.Sprintf("Demo Member %d", i+1),
			CountryOfResidence: "Spain",
			Businesses:         []models.Listing{listing},
			Revision:           1,
			IsTestProfile:      true,
		}
		if err := repo.Create(ctx, profile); err != nil {
			logger.Fatal("failed to create seeded profile", zap.Error(err), zap.String("id", profile.ID))
		}
	}
	logger.Info("demo profiles created", zap.Int("count", *count))
}
