package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"geniuses-backend-go/internal/models"
)

const profilesCollection = "profiles"

// firestoreProfileRepository implements ProfileRepository using Firestore.
type firestoreProfileRepository struct {
	client *firestore.Client
}

// NewFirestoreProfileRepository creates a new instance of firestoreProfileRepository.
func NewFirestoreProfileRepository(client *firestore.Client) ProfileRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ProfileRepository.")
	}
	return &firestoreProfileRepository{client: client}
}

// Create adds a new profile document. The profile.ID (Firebase Auth UID) is
// the Firestore document ID; CreatedAt/UpdatedAt come from serverTimestamp tags.
func (r *firestoreProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if profile.ID == "" {
		return errors.New("profile ID cannot be empty for Create operation")
	}
	_, err := r.client.Collection(profilesCollection).Doc(profile.ID).Create(ctx, profile)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("profile with ID '%s' already exists: %w", profile.ID, err)
		}
		return fmt.Errorf("failed to create profile with ID '%s': %w", profile.ID, err)
	}
	return nil
}

// GetByID retrieves a profile document by its ID (Firebase Auth UID).
func (r *firestoreProfileRepository) GetByID(ctx context.Context, profileID string) (*models.Profile, error) {
	if profileID == "" {
		return nil, errors.New("profileID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(profilesCollection).Doc(profileID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("profile with ID '%s' not found: %w", profileID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile with ID '%s': %w", profileID, err)
	}

	var profile models.Profile
	if err := docSnap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile data for ID '%s': %w", profileID, err)
	}
	profile.ID = docSnap.Ref.ID

	return &profile, nil
}

// GetAll retrieves every profile document in the collection. A document that
// fails to decode (malformed legacy data) is logged and skipped so a single
// bad profile cannot take down the directory.
func (r *firestoreProfileRepository) GetAll(ctx context.Context) ([]*models.Profile, error) {
	iter := r.client.Collection(profilesCollection).Documents(ctx)
	defer iter.Stop()

	var profiles []*models.Profile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate profiles: %w", err)
		}

		var profile models.Profile
		if err := doc.DataTo(&profile); err != nil {
			log.Printf("Error decoding profile data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		profile.ID = doc.Ref.ID
		profiles = append(profiles, &profile)
	}

	return profiles, nil
}

// Mutate applies mutate to the profile inside a Firestore transaction and
// writes the result back with Revision incremented. The transaction re-runs
// on contention, so concurrent mutations of the same document serialize
// instead of overwriting each other.
func (r *firestoreProfileRepository) Mutate(ctx context.Context, profileID string, mutate func(p *models.Profile) error) (*models.Profile, error) {
	if profileID == "" {
		return nil, errors.New("profileID cannot be empty for Mutate operation")
	}
	docRef := r.client.Collection(profilesCollection).Doc(profileID)

	var updated models.Profile
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("profile with ID '%s' not found: %w", profileID, ErrNotFound)
			}
			return fmt.Errorf("failed to get profile with ID '%s': %w", profileID, err)
		}

		var profile models.Profile
		if err := docSnap.DataTo(&profile); err != nil {
			return fmt.Errorf("failed to decode profile data for ID '%s': %w", profileID, err)
		}
		profile.ID = docSnap.Ref.ID

		if err := mutate(&profile); err != nil {
			return err
		}

		profile.Revision++
		// The serverTimestamp transform only substitutes server time for
		// zero-valued fields; the decoded UpdatedAt is non-zero, so it must
		// be cleared or every mutation writes the stale timestamp back.
		// CreatedAt keeps its decoded value and round-trips unchanged.
		profile.UpdatedAt = time.Time{}
		updated = profile
		return tx.Set(docRef, &profile)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a profile document.
func (r *firestoreProfileRepository) Delete(ctx context.Context, profileID string) error {
	if profileID == "" {
		return errors.New("profileID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(profilesCollection).Doc(profileID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete profile with ID '%s': %w", profileID, err)
	}
	return nil
}
