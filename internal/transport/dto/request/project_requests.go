package request

type CreateProjectRequest struct {
	Name          string  `json:"name" validate:"required,max=50"`
	Description   string  `json:"description" validate:"required"`
	EstimatedTime string  `json:"estimatedTime" validate:"required,max=20"`
	Repository    string  `json:"repository" validate:"required,max=120"`
	StartDate     string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate       *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	DeveloperId   int64   `json:"developerId" validate:"required,max=2147483647"`
}

type UpdateProjectRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=50"`
	Description   *string `json:"description"`
	EstimatedTime *string `json:"estimatedTime" validate:"omitempty,max=20"`
	Repository    *string `json:"repository" validate:"omitempty,max=120"`
	StartDate     *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate       *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	DeveloperId   *int64  `json:"developerId" validate:"omitempty,gt=0,max=2147483647"`
}

type AddProjectTechnologyRequest struct {
	Name string `json:"name" validate:"required,technology"`
}
