package request

type CreateDeveloperRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Email string `json:"email" validate:"required,email,max=50"`
}

type UpdateDeveloperRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=50"`
	Email *string `json:"email" validate:"omitempty,email,max=50"`
}

type CreateDeveloperInfoRequest struct {
	DeveloperSince string `json:"developerSince" validate:"required,datetime=2006-01-02"`
	PreferredOS    string `json:"preferredOS" validate:"required,preferred_os"`
}

type UpdateDeveloperInfoRequest struct {
	DeveloperSince *string `json:"developerSince" validate:"omitempty,datetime=2006-01-02"`
	PreferredOS    *string `json:"preferredOS" validate:"omitempty,preferred_os"`
}
