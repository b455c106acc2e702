package services

import (
	"fmt"

	"github.com/shramana263/neighbourlink/app/models"
	"github.com/shramana263/neighbourlink/app/repositories"
)

// PostFilter narrows ListPosts results. A non-nil Near restricts results to
// geotagged posts within the smaller of RadiusKm and each post's own
// visibility radius; posts without coordinates are dropped from geo queries.
type PostFilter struct {
	Type     string
	Category string
	Near     *models.Coordinates
	RadiusKm float64
}

// PostService handles business logic for request/offer posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost creates a new post owned by actorID
func (s *PostService) CreatePost(actorID string, post *models.Post) error {
	if actorID == "" {
		return ErrUnauthenticated
	}
	post.UserID = actorID
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}
	return s.postRepo.Create(post)
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves a filtered, paginated page of posts, newest first
func (s *PostService) ListPosts(filter PostFilter, page, perPage int) ([]*models.Post, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	// Filtering happens after the full read because the store has no
	// secondary indexes over post fields; the pagination window applies
	// to the filtered sequence.
	posts, err := s.postRepo.List(0, 0)
	if err != nil {
		return nil, err
	}

	var matched []*models.Post
	for _, post := range posts {
		if !matchesFilter(post, filter) {
			continue
		}
		matched = append(matched, post)
	}

	offset := (page - 1) * perPage
	if offset >= len(matched) {
		return []*models.Post{}, nil
	}
	end := offset + perPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func matchesFilter(post *models.Post, filter PostFilter) bool {
	if filter.Type != "" && post.Type != filter.Type {
		return false
	}
	if filter.Category != "" && post.Category != filter.Category {
		return false
	}
	if filter.Near != nil {
		if post.Coordinates == nil {
			return false
		}
		limit := filter.RadiusKm
		if post.VisibilityKm > 0 && post.VisibilityKm < limit {
			limit = post.VisibilityKm
		}
		d := haversineKm(filter.Near.Lat, filter.Near.Lng, post.Coordinates.Lat, post.Coordinates.Lng)
		if d > limit {
			return false
		}
	}
	return true
}

// UpdatePost updates a post's descriptive fields. Only the owner may update;
// ownership, creation time and the responder list are preserved from the
// stored document inside the transaction.
func (s *PostService) UpdatePost(actorID string, post *models.Post) (*models.Post, error) {
	if actorID == "" {
		return nil, ErrUnauthenticated
	}

	return s.postRepo.Mutate(post.ID, func(stored *models.Post) error {
		if !stored.IsOwner(actorID) {
			return ErrNotOwner
		}
		stored.Type = post.Type
		stored.Title = post.Title
		stored.Description = post.Description
		stored.Category = post.Category
		stored.Urgency = post.Urgency
		stored.Location = post.Location
		stored.Coordinates = post.Coordinates
		stored.PhotoRefs = post.PhotoRefs
		stored.VisibilityKm = post.VisibilityKm
		stored.DurationDays = post.DurationDays
		stored.Anonymous = post.Anonymous
		return nil
	})
}

// DeletePost deletes a post after an ownership check
func (s *PostService) DeletePost(actorID, id string) error {
	if actorID == "" {
		return ErrUnauthenticated
	}

	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	if !post.IsOwner(actorID) {
		return ErrNotOwner
	}
	return s.postRepo.Delete(id)
}
