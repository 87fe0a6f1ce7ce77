// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes one map session over HTTP/JSON so a browser view
// can drive it.
package server

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/johnlhuangP/myArea/clustering"
	"github.com/johnlhuangP/myArea/mapview"
	"github.com/johnlhuangP/myArea/places"
	"github.com/johnlhuangP/myArea/spatial"
)

type Server struct {
	// mu serializes user events; a session handles one event at a time.
	mu      sync.Mutex
	session *mapview.Session
}

func NewServer(session *mapview.Session) *Server {
	return &Server{session: session}
}

// Routes registers the API on r.
func (s *Server) Routes(r gin.IRoutes) {
	r.GET("/api/session", s.getSession)
	r.GET("/api/clusters", s.listClusters)
	r.GET("/api/categories", s.getCategories)
	r.POST("/api/categories/all", s.selectAllCategories)
	r.POST("/api/categories/:category/toggle", s.toggleCategory)
	r.DELETE("/api/categories", s.clearCategories)
	r.PUT("/api/options", s.setOptions)
	r.POST("/api/clusters/:id/activate", s.activateCluster)
	r.POST("/api/clusters/:id/dismiss", s.dismissCluster)
	r.POST("/api/clusters/:id/select/:location_id", s.selectLocation)
	r.POST("/api/hover/:location_id", s.hover)
	r.DELETE("/api/hover", s.unhover)
}

func (s *Server) Run(addr string) error {
	r := gin.Default()
	s.Routes(r)

	log.Printf("🗺️  Map server listening on http://%s", addr)

	return r.Run(addr)
}

type sessionInfo struct {
	CanAddLocation bool               `json:"can_add_location"`
	Options        clustering.Options `json:"options"`
	Bounds         spatial.Bounds     `json:"bounds"`
	Selected       *places.Location   `json:"selected,omitempty"`
}

func (s *Server) getSession(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := sessionInfo{
		CanAddLocation: s.session.CanAddLocation(),
		Options:        s.session.Options(),
		Bounds:         s.session.Bounds(),
	}

	if loc, ok := s.session.Selected(); ok {
		info.Selected = &loc
	}

	ctx.JSON(http.StatusOK, info)
}

func (s *Server) listClusters(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := s.session.Views()
	ctx.JSON(http.StatusOK, gin.H{"clusters": views, "count": len(views)})
}

type categoryEntry struct {
	Category places.Category `json:"category"`
	Label    string          `json:"label"`
	Color    string          `json:"color"`
	Icon     string          `json:"icon"`
	Count    int             `json:"count"`
	Active   bool            `json:"active"`
}

func (s *Server) categoriesResponse(ctx *gin.Context) {
	summary := s.session.Summary()
	f := s.session.Filter()

	entries := make([]categoryEntry, 0, len(summary.Counts))
	for _, c := range places.Categories {
		n, ok := summary.Counts[c]
		if !ok {
			continue
		}

		style := c.Style()
		entries = append(entries, categoryEntry{
			Category: c,
			Label:    style.Label,
			Color:    style.Color,
			Icon:     style.Icon,
			Count:    n,
			Active:   f.Has(c),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"categories": entries,
		"visible":    summary.Visible,
		"total":      summary.Total,
		"summary":    summary.String(),
	})
}

func (s *Server) getCategories(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categoriesResponse(ctx)
}

func (s *Server) toggleCategory(ctx *gin.Context) {
	c, ok := places.ParseCategory(ctx.Param("category"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.ToggleCategory(c)
	s.categoriesResponse(ctx)
}

func (s *Server) selectAllCategories(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.SelectAllCategories()
	s.categoriesResponse(ctx)
}

func (s *Server) clearCategories(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.ClearFilters()
	s.categoriesResponse(ctx)
}

func (s *Server) setOptions(ctx *gin.Context) {
	var opts clustering.Options
	if err := ctx.ShouldBindJSON(&opts); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	if opts.Radius < 0 || opts.MinClusterSize < 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "radius must be >= 0 and min_cluster_size >= 1"})

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.SetOptions(opts)
	ctx.JSON(http.StatusOK, s.session.Options())
}

// respondSelection reports the outcome of a click on the map.
func respondSelection(ctx *gin.Context, loc places.Location, selected bool, err error) {
	if err != nil {
		if errors.Is(err, mapview.ErrUnknownCluster) || errors.Is(err, mapview.ErrUnknownLocation) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	if !selected {
		ctx.JSON(http.StatusOK, gin.H{"selected": nil})

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"selected": loc})
}

func (s *Server) activateCluster(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc, ok, err := s.session.Activate(ctx.Param("id"))
	respondSelection(ctx, loc, ok, err)
}

func (s *Server) selectLocation(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc, ok, err := s.session.Select(ctx.Param("id"), ctx.Param("location_id"))
	respondSelection(ctx, loc, ok, err)
}

func (s *Server) dismissCluster(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.Dismiss(ctx.Param("id")); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

		return
	}

	ctx.Status(http.StatusNoContent)
}

func (s *Server) hover(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Hover(ctx.Param("location_id"))
	ctx.Status(http.StatusNoContent)
}

func (s *Server) unhover(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Unhover()
	ctx.Status(http.StatusNoContent)
}
