// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/Swayam792/Bugwise-Backend/internal/dto"
	"github.com/Swayam792/Bugwise-Backend/internal/entities"
)

// ToDTOUser maps entities.User to transport model.
func ToDTOUser(u entities.User) dto.User {
	return dto.User{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Role:          string(u.Role),
		DeveloperType: string(u.DeveloperType),
		IsActive:      u.IsActive,
	}
}

// ToDTOBug maps entities.Bug to transport model.
func ToDTOBug(b entities.Bug) dto.Bug {
	devs := make([]dto.User, 0, len(b.AssignedDevelopers))
	for _, d := range b.AssignedDevelopers {
		devs = append(devs, ToDTOUser(d))
	}
	types := make([]string, 0, len(b.RequiredDeveloperTypes))
	for _, t := range b.RequiredDeveloperTypes {
		types = append(types, string(t))
	}

	return dto.Bug{
		ID:                     b.ID,
		Title:                  b.Title,
		Description:            b.Description,
		Status:                 string(b.Status),
		Severity:               string(b.Severity),
		BugType:                string(b.BugType),
		ProjectID:              b.ProjectID,
		ProjectName:            b.ProjectName,
		OrganizationID:         b.OrganizationID,
		OrganizationName:       b.OrganizationName,
		ReportedByID:           b.ReportedByID,
		ReportedByEmail:        b.ReportedByEmail,
		AssignedDevelopers:     devs,
		RequiredDeveloperTypes: types,
		ExpectedTimeHours:      b.ExpectedTimeHours,
		ActualTimeHours:        b.ActualTimeHours,
		CreatedAt:              b.CreatedAt,
		UpdatedAt:              b.UpdatedAt,
	}
}

// ToDTOBugPage maps a page of bugs to transport model.
func ToDTOBugPage(page entities.BugPage) dto.BugPage {
	items := make([]dto.Bug, 0, len(page.Items))
	for _, b := range page.Items {
		items = append(items, ToDTOBug(b))
	}
	return dto.BugPage{Items: items, Total: page.Total, Page: page.Page, Size: page.Size}
}

// ToDTOStatusCounts maps a per-status breakdown to transport model.
func ToDTOStatusCounts(counts []entities.StatusCount) []dto.StatusCount {
	res := make([]dto.StatusCount, 0, len(counts))
	for _, c := range counts {
		res = append(res, dto.StatusCount{Status: string(c.Status), Count: c.Count})
	}
	return res
}

// ToDTOAnalysis maps an AI triage result to transport model.
func ToDTOAnalysis(a entities.BugAnalysis) dto.BugAnalysis {
	types := make([]string, 0, len(a.RequiredDeveloperTypes))
	for _, t := range a.RequiredDeveloperTypes {
		types = append(types, string(t))
	}
	return dto.BugAnalysis{
		BugID:                  a.BugID,
		SuggestedType:          string(a.SuggestedType),
		RequiredDeveloperTypes: types,
		EstimatedHours:         a.EstimatedHours,
		SuggestedDevelopers:    a.SuggestedDevelopers,
	}
}

// ToDTOOrganization maps entities.Organization to transport model.
func ToDTOOrganization(o entities.Organization) dto.Organization {
	return dto.Organization{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		AdminID:     o.AdminID,
		CreatedAt:   o.CreatedAt,
	}
}

// ToDTOProject maps entities.Project to transport model.
func ToDTOProject(p entities.Project) dto.Project {
	return dto.Project{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Status:           string(p.Status),
		OrganizationID:   p.OrganizationID,
		OrganizationName: p.OrganizationName,
		ManagerID:        p.ManagerID,
		ManagerName:      p.ManagerName,
		CreatedAt:        p.CreatedAt,
	}
}

// ToDTOProjectStats maps project counters to transport model.
func ToDTOProjectStats(s entities.ProjectStats) dto.ProjectStats {
	return dto.ProjectStats{
		ProjectID:   s.ProjectID,
		ProjectName: s.ProjectName,
		TotalBugs:   s.TotalBugs,
		OpenBugs:    s.OpenBugs,
		ByStatus:    ToDTOStatusCounts(s.ByStatus),
	}
}

// ToDTOOrganizationStats maps organization counters to transport model.
func ToDTOOrganizationStats(s entities.OrganizationStats) dto.OrganizationStats {
	return dto.OrganizationStats{
		OrganizationID: s.OrganizationID,
		ProjectCount:   s.ProjectCount,
		UserCount:      s.UserCount,
		BugCount:       s.BugCount,
	}
}

// ToDTOComment maps entities.Comment to transport model.
func ToDTOComment(c entities.Comment) dto.Comment {
	return dto.Comment{
		ID:          c.ID,
		BugID:       c.BugID,
		AuthorID:    c.AuthorID,
		AuthorEmail: c.AuthorEmail,
		Content:     c.Content,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToDTOComments maps a slice of comments to transport slice.
func ToDTOComments(list []entities.Comment) []dto.Comment {
	res := make([]dto.Comment, 0, len(list))
	for _, c := range list {
		res = append(res, ToDTOComment(c))
	}
	return res
}

// ToDTONotification maps entities.Notification to transport model.
func ToDTONotification(n entities.Notification) dto.Notification {
	return dto.Notification{
		ID:        n.ID,
		Type:      string(n.Type),
		Message:   n.Message,
		BugID:     n.BugID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// ToDTONotifications maps a slice of notifications to transport slice.
func ToDTONotifications(list []entities.Notification) []dto.Notification {
	res := make([]dto.Notification, 0, len(list))
	for _, n := range list {
		res = append(res, ToDTONotification(n))
	}
	return res
}

// FromDTOCreateBug builds an entities.Bug from a create request.
func FromDTOCreateBug(req dto.CreateBugRequest) entities.Bug {
	return entities.Bug{
		Title:                  req.Title,
		Description:            req.Description,
		Severity:               entities.BugSeverity(req.Severity),
		BugType:                entities.BugType(req.BugType),
		ProjectID:              req.ProjectID,
		RequiredDeveloperTypes: toDeveloperTypes(req.RequiredDeveloperTypes),
		ExpectedTimeHours:      req.ExpectedTimeHours,
	}
}

// FromDTOUpdateBug builds an entities.BugPatch from an update request.
func FromDTOUpdateBug(req dto.UpdateBugRequest) entities.BugPatch {
	patch := entities.BugPatch{
		Title:                  req.Title,
		Description:            req.Description,
		Severity:               entities.BugSeverity(req.Severity),
		ExpectedTimeHours:      req.ExpectedTimeHours,
		ActualTimeHours:        req.ActualTimeHours,
		RequiredDeveloperTypes: toDeveloperTypes(req.RequiredDeveloperTypes),
	}
	if req.BugType != nil {
		t := entities.BugType(*req.BugType)
		patch.BugType = &t
	}
	return patch
}

// FromDTORegisterUser builds an entities.User from a register request.
func FromDTORegisterUser(req dto.RegisterUserRequest) entities.User {
	return entities.User{
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Role:          entities.UserRole(req.Role),
		DeveloperType: entities.DeveloperType(req.DeveloperType),
	}
}

func toDeveloperTypes(values []string) []entities.DeveloperType {
	if len(values) == 0 {
		return nil
	}
	res := make([]entities.DeveloperType, 0, len(values))
	for _, v := range values {
		res = append(res, entities.DeveloperType(v))
	}
	return res
}
