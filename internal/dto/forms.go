package dto

type SignupForm struct {
	Email    string `form:"email" binding:"required,email,max=100"`
	Username string `form:"username" binding:"required,min=3,max=50"`
	Password string `form:"password" binding:"required,min=6,max=72"`
}

type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type HistoryFilter struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Show    string `form:"show"`
}

type DeleteForm struct {
	IDs []uint `form:"mycheckbox"`
}

type DiseaseQuery struct {
	Disease string `form:"disease"`
}
