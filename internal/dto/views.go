package dto

import "plantcare.app/leafclinic/internal/model"

// Typed view models, one per page. Templates only ever see these; the
// services never inspect rendered output.

type HomeView struct {
	Flash string
}

type LoginView struct {
	Flash string
	Email string
}

type SignupView struct {
	Flash    string
	Email    string
	Username string
}

type DashboardView struct {
	Flash     string
	Username  string
	Uploaded  bool
	ImageName string
}

type PaginationMeta struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int64
	PerPage     int
}

type HistoryView struct {
	Flash   string
	Records []model.DiagnosisSession
	Meta    PaginationMeta
	ShowAll bool
}

type DiseasesView struct {
	Flash    string
	Diseases []model.Disease
	Searched bool
	Query    string
}

type StaticView struct {
	Flash    string
	Username string
}
