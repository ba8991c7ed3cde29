package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"geniuses-backend-go/internal/models"
)

const userLikesCollection = "userLikes"

// likedListingsField is the array field holding composite like keys. The
// name predates stable listing IDs and is kept for wire compatibility with
// existing documents.
const likedListingsField = "likedBusinesses"

// firestoreLikesRepository implements LikesRepository using Firestore.
type firestoreLikesRepository struct {
	client *firestore.Client
}

// NewFirestoreLikesRepository creates a new instance of firestoreLikesRepository.
func NewFirestoreLikesRepository(client *firestore.Client) LikesRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for LikesRepository.")
	}
	return &firestoreLikesRepository{client: client}
}

// Get returns the member's liked-listing keys. A missing document means the
// member has never liked anything: an empty set, not an error.
func (r *firestoreLikesRepository) Get(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for Get operation")
	}
	docSnap, err := r.client.Collection(userLikesCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to get userLikes for '%s': %w", userID, err)
	}

	var likes models.UserLikes
	if err := docSnap.DataTo(&likes); err != nil {
		return nil, fmt.Errorf("failed to decode userLikes for '%s': %w", userID, err)
	}
	if likes.LikedListings == nil {
		return []string{}, nil
	}
	return likes.LikedListings, nil
}

// Add unions the key into the member's like set. Set with MergeAll creates
// the document on first like; ArrayUnion keeps the write scoped to the one
// array field, so concurrent toggles by the same member cannot clobber each
// other.
func (r *firestoreLikesRepository) Add(ctx context.Context, userID, key string) error {
	if userID == "" || key == "" {
		return errors.New("userID and key are required for Add operation")
	}
	_, err := r.client.Collection(userLikesCollection).Doc(userID).Set(ctx, map[string]interface{}{
		likedListingsField: firestore.ArrayUnion(key),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to add like '%s' for user '%s': %w", key, userID, err)
	}
	return nil
}

// Remove removes the key from the member's like set.
func (r *firestoreLikesRepository) Remove(ctx context.Context, userID, key string) error {
	if userID == "" || key == "" {
		return errors.New("userID and key are required for Remove operation")
	}
	_, err := r.client.Collection(userLikesCollection).Doc(userID).Set(ctx, map[string]interface{}{
		likedListingsField: firestore.ArrayRemove(key),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to remove like '%s' for user '%s': %w", key, userID, err)
	}
	return nil
}
