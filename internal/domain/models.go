package domain

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// PreferredOSOptions допустимые значения developer_infos."preferredOS"
var PreferredOSOptions = []string{"Windows", "Linux", "MacOS"}

// TechnologyOptions каталог технологий, совпадает с сидом в миграциях
var TechnologyOptions = []string{
	"Javascript",
	"Python",
	"React",
	"Express.js",
	"HTML",
	"CSS",
	"Django",
	"PostgreSQL",
	"MongoDB",
}

func IsPreferredOS(v string) bool {
	return contains(PreferredOSOptions, v)
}

func IsTechnology(v string) bool {
	return contains(TechnologyOptions, v)
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

type Developer struct {
	Id              int64  `json:"id" db:"id"`
	Name            string `json:"name" db:"name"`
	Email           string `json:"email" db:"email"`
	DeveloperInfoId *int64 `json:"developerInfoId" db:"developerInfoId"`
}

type DeveloperInfo struct {
	Id             int64       `json:"id" db:"id"`
	DeveloperSince pgtype.Date `json:"developerSince" db:"developerSince"`
	PreferredOS    string      `json:"preferredOS" db:"preferredOS"`
}

type Project struct {
	Id            int64       `json:"id" db:"id"`
	Name          string      `json:"name" db:"name"`
	Description   string      `json:"description" db:"description"`
	EstimatedTime string      `json:"estimatedTime" db:"estimatedTime"`
	Repository    string      `json:"repository" db:"repository"`
	StartDate     pgtype.Date `json:"startDate" db:"startDate"`
	EndDate       pgtype.Date `json:"endDate" db:"endDate"`
	DeveloperId   int64       `json:"developerId" db:"developerId"`
}

type Technology struct {
	Id   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type ProjectTechnology struct {
	Id           int64     `json:"id" db:"id"`
	AddedIn      time.Time `json:"addedIn" db:"addedIn"`
	ProjectId    int64     `json:"projectId" db:"projectId"`
	TechnologyId int64     `json:"technologyId" db:"technologyId"`
}

// DeveloperWithInfo строка developers LEFT JOIN developer_infos
type DeveloperWithInfo struct {
	DeveloperId                 int64       `json:"developerID" db:"developerID"`
	DeveloperName               string      `json:"developerName" db:"developerName"`
	DeveloperEmail              string      `json:"developerEmail" db:"developerEmail"`
	DeveloperInfoId             *int64      `json:"developerInfoID" db:"developerInfoID"`
	DeveloperInfoDeveloperSince pgtype.Date `json:"developerInfoDeveloperSince" db:"developerInfoDeveloperSince"`
	DeveloperInfoPreferredOS    *string     `json:"developerInfoPreferredOS" db:"developerInfoPreferredOS"`
}

// DeveloperProjectRow строка разработчика со всеми проектами и технологиями.
// Разработчик без проектов дает одну строку с пустыми project*/technology* полями.
type DeveloperProjectRow struct {
	DeveloperWithInfo
	ProjectId            *int64      `json:"projectID" db:"projectID"`
	ProjectName          *string     `json:"projectName" db:"projectName"`
	ProjectDescription   *string     `json:"projectDescription" db:"projectDescription"`
	ProjectEstimatedTime *string     `json:"projectEstimatedTime" db:"projectEstimatedTime"`
	ProjectRepository    *string     `json:"projectRepository" db:"projectRepository"`
	ProjectStartDate     pgtype.Date `json:"projectStartDate" db:"projectStartDate"`
	ProjectEndDate       pgtype.Date `json:"projectEndDate" db:"projectEndDate"`
	TechnologyId         *int64      `json:"technologyId" db:"technologyId"`
	TechnologyName       *string     `json:"technologyName" db:"technologyName"`
}

// ProjectWithTechnology строка projects LEFT JOIN projects_technologies LEFT JOIN technologies
type ProjectWithTechnology struct {
	Project
	TechnologyId   *int64  `json:"technologyId" db:"technologyId"`
	TechnologyName *string `json:"technologyName" db:"technologyName"`
}

// Entity сущность, существование которой проверяет гейт
type Entity string

const (
	EntityDeveloper     Entity = "developer"
	EntityDeveloperInfo Entity = "developer info"
	EntityProject       Entity = "project"
	EntityTechnology    Entity = "technology"
)
