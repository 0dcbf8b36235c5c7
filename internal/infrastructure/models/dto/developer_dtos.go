package dto

import "github.com/niklvrr/DevProjects/internal/infrastructure/query"

type CreateDeveloperDTO struct {
	Name  string
	Email string
}

func (d *CreateDeveloperDTO) FieldSet() query.FieldSet {
	return query.FieldSet{}.
		Add("name", d.Name).
		Add("email", d.Email)
}

// DeveloperPatch частичное обновление developers
type DeveloperPatch struct {
	Name  *string
	Email *string
}

func (p *DeveloperPatch) Keys() []string {
	return []string{"name", "email"}
}

func (p *DeveloperPatch) FieldSet() query.FieldSet {
	fs := query.FieldSet{}
	if present(p.Name) {
		fs = fs.Add("name", *p.Name)
	}
	if present(p.Email) {
		fs = fs.Add("email", *p.Email)
	}
	return fs
}

type UpdateDeveloperDTO struct {
	Id     int64
	Fields query.FieldSet
}

type CreateDeveloperInfoDTO struct {
	DeveloperId    int64
	DeveloperSince string
	PreferredOS    string
}

func (d *CreateDeveloperInfoDTO) FieldSet() query.FieldSet {
	return query.FieldSet{}.
		Add("developerSince", d.DeveloperSince).
		Add("preferredOS", d.PreferredOS)
}

type DeveloperInfoPatch struct {
	DeveloperSince *string
	PreferredOS    *string
}

func (p *DeveloperInfoPatch) Keys() []string {
	return []string{"developerSince", "preferredOS"}
}

func (p *DeveloperInfoPatch) FieldSet() query.FieldSet {
	fs := query.FieldSet{}
	if present(p.DeveloperSince) {
		fs = fs.Add("developerSince", *p.DeveloperSince)
	}
	if present(p.PreferredOS) {
		fs = fs.Add("preferredOS", *p.PreferredOS)
	}
	return fs
}

// UpdateDeveloperInfoDTO адресуется по разработчику: id анкеты берется из developers."developerInfoId"
type UpdateDeveloperInfoDTO struct {
	DeveloperId int64
	Fields      query.FieldSet
}

func present(s *string) bool {
	return s != nil && *s != ""
}
