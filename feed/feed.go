// Package feed implements the feed collaborator boundary: seeded posts,
// the favorites list and authored-post counts, persisted as JSON blobs
// in the local store.
package feed

import (
	"errors"

	"campuschat/storage"
)

// Post kinds, mirroring the publish form.
const (
	PostShare       = "share"
	PostEvent       = "event"
	PostMarketplace = "marketplace"
)

const (
	favoritesStateKey = "feed.favorites"
	authoredStateKey  = "feed.authored_counts"
)

// Post is one feed entry.
type Post struct {
	ID           string
	UserID       string
	Kind         string
	Caption      string
	Location     string
	Tags         []string
	ImageURL     string
	CreatedLabel string
}

// SeedPosts returns the startup feed in display order.
func SeedPosts() []Post {
	return []Post{
		{
			ID:           "post-1",
			UserID:       "sarah-chen",
			Kind:         PostShare,
			Caption:      "Sunset over the main building tonight 🌇",
			Location:     "Main Campus",
			Tags:         []string{"campus", "sunset"},
			ImageURL:     "https://images.unsplash.com/photo-1541339907198-e08756dedf3f?w=400",
			CreatedLabel: "2 hours ago",
		},
		{
			ID:           "post-2",
			UserID:       "mike-johnson",
			Kind:         PostEvent,
			Caption:      "Study group for the algorithms midterm, all welcome.",
			Location:     "Library Room 3",
			Tags:         []string{"study", "algorithms"},
			CreatedLabel: "5 hours ago",
		},
		{
			ID:           "post-3",
			UserID:       "lisa-park",
			Kind:         PostMarketplace,
			Caption:      "Selling a barely used graphing calculator.",
			Tags:         []string{"secondhand"},
			CreatedLabel: "Yesterday",
		},
	}
}

// Service tracks favorites and authored counts over the local store.
type Service struct {
	store *storage.Store
}

// NewService creates a feed service.
func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

// Favorites returns the persisted favorite post ids in toggle order.
func (s *Service) Favorites() ([]string, error) {
	var favorites []string
	if err := s.store.GetState(favoritesStateKey, &favorites); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return favorites, nil
}

// IsFavorite reports whether a post id is favorited.
func (s *Service) IsFavorite(postID string) (bool, error) {
	favorites, err := s.Favorites()
	if err != nil {
		return false, err
	}
	for _, id := range favorites {
		if id == postID {
			return true, nil
		}
	}
	return false, nil
}

// ToggleFavorite flips a post's favorite state and returns the new state.
func (s *Service) ToggleFavorite(postID string) (bool, error) {
	if postID == "" {
		return false, errors.New("feed: post id is required")
	}

	favorites, err := s.Favorites()
	if err != nil {
		return false, err
	}

	next := make([]string, 0, len(favorites)+1)
	removed := false
	for _, id := range favorites {
		if id == postID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, postID)
	}

	if err := s.store.PutState(favoritesStateKey, next); err != nil {
		return false, err
	}
	return !removed, nil
}

// AuthoredCount returns how many posts a user has published locally.
func (s *Service) AuthoredCount(userID string) (int, error) {
	counts, err := s.authoredCounts()
	if err != nil {
		return 0, err
	}
	return counts[userID], nil
}

// RecordAuthored bumps a user's authored-post count.
func (s *Service) RecordAuthored(userID string) error {
	if userID == "" {
		return errors.New("feed: user id is required")
	}

	counts, err := s.authoredCounts()
	if err != nil {
		return err
	}
	counts[userID]++
	return s.store.PutState(authoredStateKey, counts)
}

func (s *Service) authoredCounts() (map[string]int, error) {
	counts := make(map[string]int)
	if err := s.store.GetState(authoredStateKey, &counts); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return counts, nil
		}
		return nil, err
	}
	return counts, nil
}
