// Package search maintains the denormalized bug projection used for
// full-text and filtered queries. The index is a rebuildable cache of
// the authoritative store and is never treated as a source of truth.
package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
	"go.uber.org/zap"
)

// Document is the denormalized search projection of a bug.
type Document struct {
	ID                      string    `json:"id"`
	Title                   string    `json:"title"`
	Description             string    `json:"description"`
	Status                  string    `json:"status"`
	Severity                string    `json:"severity"`
	BugType                 string    `json:"bug_type"`
	ProjectID               string    `json:"project_id"`
	ProjectName             string    `json:"project_name"`
	OrganizationID          string    `json:"organization_id"`
	OrganizationName        string    `json:"organization_name"`
	AssignedDeveloperIDs    []string  `json:"assigned_developer_ids"`
	AssignedDeveloperEmails string    `json:"assigned_developer_emails"`
	ReportedByID            string    `json:"reported_by_id"`
	ExpectedTimeHours       int       `json:"expected_time_hours"`
	ActualTimeHours         int       `json:"actual_time_hours"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// DocumentFromBug derives the projection from the authoritative record.
func DocumentFromBug(bug *entities.Bug) Document {
	doc := Document{
		ID:               bug.ID,
		Title:            bug.Title,
		Description:      bug.Description,
		Status:           string(bug.Status),
		Severity:         string(bug.Severity),
		BugType:          string(bug.BugType),
		ProjectID:        bug.ProjectID,
		ProjectName:      bug.ProjectName,
		OrganizationID:   bug.OrganizationID,
		OrganizationName: bug.OrganizationName,
		ReportedByID:     bug.ReportedByID,
		CreatedAt:        bug.CreatedAt,
		UpdatedAt:        bug.UpdatedAt,
	}
	if bug.ExpectedTimeHours != nil {
		doc.ExpectedTimeHours = *bug.ExpectedTimeHours
	}
	if bug.ActualTimeHours != nil {
		doc.ActualTimeHours = *bug.ActualTimeHours
	}
	emails := make([]string, 0, len(bug.AssignedDevelopers))
	for _, dev := range bug.AssignedDevelopers {
		doc.AssignedDeveloperIDs = append(doc.AssignedDeveloperIDs, dev.ID)
		emails = append(emails, dev.Email)
	}
	doc.AssignedDeveloperEmails = strings.Join(emails, ",")
	return doc
}

// Index is the projection port the lifecycle service writes through.
type Index interface {
	IndexBug(doc Document) error
	DeleteBug(id string) error
	SearchInProject(projectID, term string, limit int) ([]string, error)
	AssignedTo(developerID string) ([]string, error)
	Similar(title, excludeID string, limit int) ([]Document, error)
	Close() error
}

// Bleve implements Index on an embedded bleve index.
type Bleve struct {
	idx bleve.Index
	log *zap.SugaredLogger
}

// New opens the index at path, creating it on first use.
func New(path string, log *zap.SugaredLogger) (*Bleve, error) {
	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(path, buildMapping())
	}
	if err != nil {
		return nil, fmt.Errorf("open search index: %w", err)
	}
	return &Bleve{idx: idx, log: log.Named("search.bleve")}, nil
}

// NewMemOnly builds an in-memory index, used in tests.
func NewMemOnly(log *zap.SugaredLogger) (*Bleve, error) {
	idx, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, fmt.Errorf("open mem index: %w", err)
	}
	return &Bleve{idx: idx, log: log.Named("search.bleve")}, nil
}

func buildMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()
	text.Analyzer = en.AnalyzerName

	kw := bleve.NewTextFieldMapping()
	kw.Analyzer = keyword.Name

	date := bleve.NewDateTimeFieldMapping()
	num := bleve.NewNumericFieldMapping()

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("title", text)
	doc.AddFieldMappingsAt("description", text)
	doc.AddFieldMappingsAt("status", kw)
	doc.AddFieldMappingsAt("severity", kw)
	doc.AddFieldMappingsAt("bug_type", kw)
	doc.AddFieldMappingsAt("project_id", kw)
	doc.AddFieldMappingsAt("project_name", kw)
	doc.AddFieldMappingsAt("organization_id", kw)
	doc.AddFieldMappingsAt("organization_name", kw)
	doc.AddFieldMappingsAt("assigned_developer_ids", kw)
	doc.AddFieldMappingsAt("assigned_developer_emails", kw)
	doc.AddFieldMappingsAt("reported_by_id", kw)
	doc.AddFieldMappingsAt("expected_time_hours", num)
	doc.AddFieldMappingsAt("actual_time_hours", num)
	doc.AddFieldMappingsAt("created_at", date)
	doc.AddFieldMappingsAt("updated_at", date)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}

// IndexBug upserts the projection document keyed by bug id.
func (b *Bleve) IndexBug(doc Document) error {
	if err := b.idx.Index(doc.ID, doc); err != nil {
		return fmt.Errorf("index bug %s: %w", doc.ID, err)
	}
	return nil
}

// DeleteBug removes a projection document.
func (b *Bleve) DeleteBug(id string) error {
	if err := b.idx.Delete(id); err != nil {
		return fmt.Errorf("delete bug %s: %w", id, err)
	}
	return nil
}

// SearchInProject returns ids of project bugs whose title or
// description matches the term.
func (b *Bleve) SearchInProject(projectID, term string, limit int) ([]string, error) {
	project := bleve.NewTermQuery(projectID)
	project.SetField("project_id")

	title := bleve.NewMatchQuery(term)
	title.SetField("title")
	desc := bleve.NewMatchQuery(term)
	desc.SetField("description")

	q := bleve.NewConjunctionQuery(project, bleve.NewDisjunctionQuery(title, desc))
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)

	res, err := b.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search in project: %w", err)
	}
	ids := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}

// AssignedTo returns ids of bugs assigned to the developer.
func (b *Bleve) AssignedTo(developerID string) ([]string, error) {
	q := bleve.NewTermQuery(developerID)
	q.SetField("assigned_developer_ids")
	req := bleve.NewSearchRequestOptions(q, 1000, 0, false)

	res, err := b.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search assigned: %w", err)
	}
	ids := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}

// Similar returns recent documents resembling the given title,
// excluding the bug itself.
func (b *Bleve) Similar(title, excludeID string, limit int) ([]Document, error) {
	match := bleve.NewMatchQuery(title)
	match.SetField("title")

	q := bleve.NewBooleanQuery()
	q.AddMust(match)
	if excludeID != "" {
		q.AddMustNot(bleve.NewDocIDQuery([]string{excludeID}))
	}

	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	req.Fields = []string{"*"}
	req.SortBy([]string{"-created_at"})

	res, err := b.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search similar: %w", err)
	}

	docs := make([]Document, 0, len(res.Hits))
	for _, hit := range res.Hits {
		docs = append(docs, documentFromFields(hit.ID, hit.Fields))
	}
	return docs, nil
}

// Close releases the index.
func (b *Bleve) Close() error {
	return b.idx.Close()
}

func documentFromFields(id string, fields map[string]interface{}) Document {
	doc := Document{
		ID:                      id,
		Title:                   fieldString(fields, "title"),
		Description:             fieldString(fields, "description"),
		Status:                  fieldString(fields, "status"),
		Severity:                fieldString(fields, "severity"),
		BugType:                 fieldString(fields, "bug_type"),
		ProjectID:               fieldString(fields, "project_id"),
		ProjectName:             fieldString(fields, "project_name"),
		OrganizationID:          fieldString(fields, "organization_id"),
		OrganizationName:        fieldString(fields, "organization_name"),
		AssignedDeveloperEmails: fieldString(fields, "assigned_developer_emails"),
		ReportedByID:            fieldString(fields, "reported_by_id"),
		ExpectedTimeHours:       fieldInt(fields, "expected_time_hours"),
		ActualTimeHours:         fieldInt(fields, "actual_time_hours"),
	}
	switch v := fields["assigned_developer_ids"].(type) {
	case string:
		if v != "" {
			doc.AssignedDeveloperIDs = []string{v}
		}
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				doc.AssignedDeveloperIDs = append(doc.AssignedDeveloperIDs, s)
			}
		}
	}
	return doc
}

func fieldString(fields map[string]interface{}, name string) string {
	if s, ok := fields[name].(string); ok {
		return s
	}
	return ""
}

func fieldInt(fields map[string]interface{}, name string) int {
	if f, ok := fields[name].(float64); ok {
		return int(f)
	}
	return 0
}
