package postgres

import (
	"context"
	"fmt"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"
)

const (
	statsByProjectQuery = `
SELECT status, COUNT(*) FROM bugs WHERE project_id=$1 GROUP BY status ORDER BY status`

	statsByProjectsQuery = `
SELECT status, COUNT(*) FROM bugs WHERE project_id = ANY($1) GROUP BY status ORDER BY status`

	statsAllQuery = `
SELECT status, COUNT(*) FROM bugs GROUP BY status ORDER BY status`
)

// BugStatistics returns the per-status bug breakdown of one project.
func (p *Postgres) BugStatistics(ctx context.Context, projectID string) ([]entities.StatusCount, error) {
	return p.statusCounts(ctx, statsByProjectQuery, projectID)
}

// BugStatisticsForProjects aggregates across the given projects.
func (p *Postgres) BugStatisticsForProjects(ctx context.Context, projectIDs []string) ([]entities.StatusCount, error) {
	if len(projectIDs) == 0 {
		return []entities.StatusCount{}, nil
	}
	return p.statusCounts(ctx, statsByProjectsQuery, projectIDs)
}

// BugStatisticsAll aggregates across every stored bug.
func (p *Postgres) BugStatisticsAll(ctx context.Context) ([]entities.StatusCount, error) {
	return p.statusCounts(ctx, statsAllQuery)
}

func (p *Postgres) statusCounts(ctx context.Context, query string, args ...any) ([]entities.StatusCount, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("bug statistics: %w", err)
	}
	defer rows.Close()

	counts := make([]entities.StatusCount, 0)
	for rows.Next() {
		var sc entities.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan statistic: %w", err)
		}
		counts = append(counts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate statistics: %w", err)
	}
	return counts, nil
}
