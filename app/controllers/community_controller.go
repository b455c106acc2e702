package controllers

import (
	"net/http"

	"github.com/shramana263/neighbourlink/app/middleware"
	"github.com/shramana263/neighbourlink/app/models"
	"github.com/shramana263/neighbourlink/app/services"

	"github.com/gorilla/mux"
)

// CommunityController handles skills, volunteers and business endpoints
type CommunityController struct {
	community *services.CommunityService
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(community *services.CommunityService) *CommunityController {
	return &CommunityController{community: community}
}

// SkillsIndex handles GET /api/skills
func (cc *CommunityController) SkillsIndex(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)
	skills, err := cc.community.ListSkills(page, perPage)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"skills": skills, "page": page})
}

type skillRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Availability string `json:"availability"`
	Contact      string `json:"contact"`
}

// SkillsCreate handles POST /api/skills
func (cc *CommunityController) SkillsCreate(w http.ResponseWriter, r *http.Request) {
	var req skillRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	skill := &models.Skill{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Availability: req.Availability,
		Contact:      req.Contact,
	}
	if err := cc.community.ShareSkill(middleware.CurrentUser(r).ID, skill); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, skill)
}

// VolunteersIndex handles GET /api/volunteers
func (cc *CommunityController) VolunteersIndex(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)
	volunteers, err := cc.community.ListVolunteers(page, perPage)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"volunteers": volunteers, "page": page})
}

type volunteerRequest struct {
	Name         string   `json:"name"`
	Contact      string   `json:"contact"`
	Skills       []string `json:"skills"`
	Availability string   `json:"availability"`
	Areas        []string `json:"areas"`
}

// VolunteersCreate handles POST /api/volunteers
func (cc *CommunityController) VolunteersCreate(w http.ResponseWriter, r *http.Request) {
	var req volunteerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	volunteer := &models.Volunteer{
		Name:         req.Name,
		Contact:      req.Contact,
		Skills:       req.Skills,
		Availability: req.Availability,
		Areas:        req.Areas,
	}
	if err := cc.community.RegisterVolunteer(middleware.CurrentUser(r).ID, volunteer); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, volunteer)
}

// BusinessesIndex handles GET /api/businesses
func (cc *CommunityController) BusinessesIndex(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)
	businesses, err := cc.community.ListBusinesses(page, perPage)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"businesses": businesses, "page": page})
}

type businessRequest struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Address     string              `json:"address"`
	Coordinates *models.Coordinates `json:"coordinates"`
	Phone       string              `json:"phone"`
	PhotoRefs   []string            `json:"photoRefs"`
}

func (req *businessRequest) toModel() *models.Business {
	return &models.Business{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Address:     req.Address,
		Coordinates: req.Coordinates,
		Phone:       req.Phone,
		PhotoRefs:   req.PhotoRefs,
	}
}

// BusinessesCreate handles POST /api/businesses
func (cc *CommunityController) BusinessesCreate(w http.ResponseWriter, r *http.Request) {
	var req businessRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	business := req.toModel()
	if err := cc.community.CreateBusiness(middleware.CurrentUser(r).ID, business); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, business)
}

// BusinessesEdit handles PUT /api/businesses/{id}
func (cc *CommunityController) BusinessesEdit(w http.ResponseWriter, r *http.Request) {
	var req businessRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	business := req.toModel()
	business.ID = mux.Vars(r)["id"]
	if err := cc.community.UpdateBusiness(middleware.CurrentUser(r).ID, business); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, business)
}
