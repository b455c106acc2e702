package controllers

import (
	"net/http"
	"strconv"

	"github.com/shramana263/neighbourlink/app/middleware"
	"github.com/shramana263/neighbourlink/app/models"
	"github.com/shramana263/neighbourlink/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts and the responder workflow
type PostController struct {
	postService      *services.PostService
	responderService *services.ResponderService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, responderService *services.ResponderService) *PostController {
	return &PostController{
		postService:      postService,
		responderService: responderService,
	}
}

type postRequest struct {
	Type         string              `json:"type"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Category     string              `json:"category"`
	Urgency      string              `json:"urgency"`
	Location     string              `json:"location"`
	Coordinates  *models.Coordinates `json:"coordinates"`
	PhotoRefs    []string            `json:"photoRefs"`
	VisibilityKm float64             `json:"visibilityKm"`
	DurationDays int                 `json:"durationDays"`
	Anonymous    bool                `json:"anonymous"`
}

func (req *postRequest) toModel() *models.Post {
	return &models.Post{
		Type:         req.Type,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Urgency:      req.Urgency,
		Location:     req.Location,
		Coordinates:  req.Coordinates,
		PhotoRefs:    req.PhotoRefs,
		VisibilityKm: req.VisibilityKm,
		DurationDays: req.DurationDays,
		Anonymous:    req.Anonymous,
	}
}

// Index handles GET /api/posts with optional type, category and geo filters
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)

	filter := services.PostFilter{
		Type:     r.URL.Query().Get("type"),
		Category: r.URL.Query().Get("category"),
	}

	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			sendError(w, "Invalid lat/lng", http.StatusBadRequest)
			return
		}
		radius := 10.0
		if radiusStr := r.URL.Query().Get("radius"); radiusStr != "" {
			parsed, err := strconv.ParseFloat(radiusStr, 64)
			if err != nil || parsed <= 0 {
				sendError(w, "Invalid radius", http.StatusBadRequest)
				return
			}
			radius = parsed
		}
		filter.Near = &models.Coordinates{Lat: lat, Lng: lng}
		filter.RadiusKm = radius
	}

	posts, err := pc.postService.ListPosts(filter, page, perPage)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"page":  page,
	})
}

// Show handles GET /api/posts/{id}
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.GetPost(mux.Vars(r)["id"])
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles POST /api/posts
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post := req.toModel()
	if err := pc.postService.CreatePost(middleware.CurrentUser(r).ID, post); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Edit handles PUT /api/posts/{id}
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post := req.toModel()
	post.ID = mux.Vars(r)["id"]

	updated, err := pc.postService.UpdatePost(middleware.CurrentUser(r).ID, post)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/posts/{id}
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := pc.postService.DeletePost(middleware.CurrentUser(r).ID, mux.Vars(r)["id"]); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

// Respond handles POST /api/posts/{id}/respond
func (pc *PostController) Respond(w http.ResponseWriter, r *http.Request) {
	post, err := pc.responderService.Submit(mux.Vars(r)["id"], middleware.CurrentUser(r).ID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

type acceptRequest struct {
	UserID string `json:"userId"`
}

// Accept handles POST /api/posts/{id}/accept
func (pc *PostController) Accept(w http.ResponseWriter, r *http.Request) {
	var req acceptRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.UserID == "" {
		sendError(w, "userId is required", http.StatusBadRequest)
		return
	}

	post, err := pc.responderService.Accept(mux.Vars(r)["id"], middleware.CurrentUser(r).ID, req.UserID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}
