package gwd

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"gridwarden.com/gwd/pkg/primitives"
)

const (
	projectEnv   = "GOOGLE_CLOUD_PROJECT"
	mapsDataset  = "gridwarden"
	mapsTable    = "patrol_maps"
	mapRowsQuery = "SELECT row_index, cells FROM `%s.%s` WHERE name = @name ORDER BY row_index"
)

// mapRow is one row of a stored patrol map.
type mapRow struct {
	RowIndex int64  `bigquery:"row_index"`
	Cells    string `bigquery:"cells"`
}

// LoadGridFromCloud loads the named patrol map from BigQuery. Maps are
// stored one grid row per table row, keyed by name. The project is
// taken from GOOGLE_CLOUD_PROJECT.
func LoadGridFromCloud(ctx context.Context, name string) (*primitives.Grid, error) {
	project := os.Getenv(projectEnv)
	if project == "" {
		return nil, fmt.Errorf("%s is not set", projectEnv)
	}

	client, err := bigquery.NewClient(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("bigquery client: %w", err)
	}
	defer client.Close()

	q := client.Query(fmt.Sprintf(mapRowsQuery, mapsDataset, mapsTable))
	q.Parameters = []bigquery.QueryParameter{{Name: "name", Value: name}}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("load map %q: %w", name, err)
	}

	var lines []string
	for {
		var row mapRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load map %q: %w", name, err)
		}
		lines = append(lines, row.Cells)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("map %q not found", name)
	}

	g, err := primitives.GridFromLines(lines)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", name, err)
	}
	return g, nil
}
