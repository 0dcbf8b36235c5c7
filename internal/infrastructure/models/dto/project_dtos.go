package dto

import "github.com/niklvrr/DevProjects/internal/infrastructure/query"

type CreateProjectDTO struct {
	Name          string
	Description   string
	EstimatedTime string
	Repository    string
	StartDate     string
	EndDate       *string
	DeveloperId   int64
}

func (d *CreateProjectDTO) FieldSet() query.FieldSet {
	fs := query.FieldSet{}.
		Add("name", d.Name).
		Add("description", d.Description).
		Add("estimatedTime", d.EstimatedTime).
		Add("repository", d.Repository).
		Add("startDate", d.StartDate)

	// endDate необязателен, колонку пишем только если он пришел
	if present(d.EndDate) {
		fs = fs.Add("endDate", *d.EndDate)
	}

	return fs.Add("developerId", d.DeveloperId)
}

type ProjectPatch struct {
	Name          *string
	Description   *string
	EstimatedTime *string
	Repository    *string
	StartDate     *string
	EndDate       *string
	DeveloperId   *int64
}

func (p *ProjectPatch) Keys() []string {
	return []string{
		"name",
		"description",
		"estimatedTime",
		"repository",
		"startDate",
		"endDate",
		"developerId",
	}
}

func (p *ProjectPatch) FieldSet() query.FieldSet {
	fs := query.FieldSet{}
	if present(p.Name) {
		fs = fs.Add("name", *p.Name)
	}
	if present(p.Description) {
		fs = fs.Add("description", *p.Description)
	}
	if present(p.EstimatedTime) {
		fs = fs.Add("estimatedTime", *p.EstimatedTime)
	}
	if present(p.Repository) {
		fs = fs.Add("repository", *p.Repository)
	}
	if present(p.StartDate) {
		fs = fs.Add("startDate", *p.StartDate)
	}
	if present(p.EndDate) {
		fs = fs.Add("endDate", *p.EndDate)
	}
	if p.DeveloperId != nil && *p.DeveloperId != 0 {
		fs = fs.Add("developerId", *p.DeveloperId)
	}
	return fs
}

type UpdateProjectDTO struct {
	Id     int64
	Fields query.FieldSet
}

type ProjectTechnologyDTO struct {
	ProjectId      int64
	TechnologyName string
}
