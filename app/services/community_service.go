package services

import (
	"errors"
	"fmt"

	"github.com/shramana263/neighbourlink/app/models"
	"github.com/shramana263/neighbourlink/app/repositories"
)

// ErrAlreadyRegistered is returned when a user registers as a volunteer twice.
var ErrAlreadyRegistered = errors.New("already registered as a volunteer")

// CommunityService handles skills, volunteer registrations and business
// profiles.
type CommunityService struct {
	skillRepo     repositories.SkillRepository
	volunteerRepo repositories.VolunteerRepository
	businessRepo  repositories.BusinessRepository
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(skillRepo repositories.SkillRepository, volunteerRepo repositories.VolunteerRepository, businessRepo repositories.BusinessRepository) *CommunityService {
	return &CommunityService{
		skillRepo:     skillRepo,
		volunteerRepo: volunteerRepo,
		businessRepo:  businessRepo,
	}
}

// ShareSkill publishes a skill owned by actorID
func (s *CommunityService) ShareSkill(actorID string, skill *models.Skill) error {
	if actorID == "" {
		return ErrUnauthenticated
	}
	skill.UserID = actorID
	skill.BeforeCreate()

	if err := skill.Validate(); err != nil {
		return fmt.Errorf("invalid skill: %w", err)
	}
	return s.skillRepo.Create(skill)
}

// ListSkills retrieves a page of shared skills, newest first
func (s *CommunityService) ListSkills(page, perPage int) ([]*models.Skill, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	return s.skillRepo.List(perPage, (page-1)*perPage)
}

// RegisterVolunteer registers actorID as a volunteer, once
func (s *CommunityService) RegisterVolunteer(actorID string, volunteer *models.Volunteer) error {
	if actorID == "" {
		return ErrUnauthenticated
	}
	volunteer.UserID = actorID
	volunteer.BeforeCreate()

	if err := volunteer.Validate(); err != nil {
		return fmt.Errorf("invalid volunteer registration: %w", err)
	}

	err := s.volunteerRepo.Create(volunteer)
	if errors.Is(err, repositories.ErrDuplicate) {
		return ErrAlreadyRegistered
	}
	return err
}

// ListVolunteers retrieves a page of volunteer registrations, newest first
func (s *CommunityService) ListVolunteers(page, perPage int) ([]*models.Volunteer, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	return s.volunteerRepo.List(perPage, (page-1)*perPage)
}

// CreateBusiness creates a business profile owned by actorID
func (s *CommunityService) CreateBusiness(actorID string, business *models.Business) error {
	if actorID == "" {
		return ErrUnauthenticated
	}
	business.OwnerID = actorID
	business.Verified = false
	business.BeforeCreate()

	if err := business.Validate(); err != nil {
		return fmt.Errorf("invalid business profile: %w", err)
	}
	return s.businessRepo.Create(business)
}

// ListBusinesses retrieves a page of business profiles, newest first
func (s *CommunityService) ListBusinesses(page, perPage int) ([]*models.Business, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	return s.businessRepo.List(perPage, (page-1)*perPage)
}

// UpdateBusiness updates a business profile after an ownership check. The
// verified flag is preserved from the stored profile; owners cannot verify
// themselves.
func (s *CommunityService) UpdateBusiness(actorID string, business *models.Business) error {
	if actorID == "" {
		return ErrUnauthenticated
	}

	stored, err := s.businessRepo.GetByID(business.ID)
	if err != nil {
		return err
	}
	if stored.OwnerID != actorID {
		return ErrNotOwner
	}

	business.OwnerID = stored.OwnerID
	business.Verified = stored.Verified
	business.CreatedAt = stored.CreatedAt

	if err := business.Validate(); err != nil {
		return fmt.Errorf("invalid business profile: %w", err)
	}
	return s.businessRepo.Update(business)
}
