// Package grid reads and writes the role-by-permission access grid as CSV.
// The first three columns describe the permission and every further column
// holds one role's access level, blank meaning no access.
package grid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"role-explorer/pkg/permissions"

	"github.com/samber/oops"
)

var fixedColumns = []string{"api_name", "display_name", "product_category"}

// Entry is one non-empty cell of the grid
type Entry struct {
	APIName     permissions.APIName
	DisplayName string
	RoleID      string
	Access      permissions.AccessLevel
}

// Row is the consolidated view of one permission across all roles
type Row struct {
	APIName     permissions.APIName                `json:"api_name" yaml:"api_name"`
	DisplayName string                             `json:"display_name" yaml:"display_name"`
	Access      map[string]permissions.AccessLevel `json:"access" yaml:"access"`
}

// Export writes the catalog as a grid with one column per built-in role
func Export(w io.Writer, catalog *permissions.Catalog) error {
	roles := catalog.Roles()

	cw := csv.NewWriter(w)
	header := append([]string(nil), fixedColumns...)
	for _, r := range roles {
		header = append(header, r.ID)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write grid header: %w", err)
	}

	for _, p := range catalog.Permissions() {
		record := []string{string(p.APIName), p.DisplayName, p.ProductCategory}
		for _, r := range roles {
			record = append(record, string(p.RoleAccess[r.ID]))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write grid row for %s: %w", p.APIName, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush grid: %w", err)
	}
	return nil
}

// Parse reads a grid into entries in file order
func Parse(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, oops.In("grid").Code(permissions.CodeInvalidArgument).Errorf("grid is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read grid header: %w", err)
	}
	if len(header) < len(fixedColumns) {
		return nil, oops.In("grid").
			Code(permissions.CodeInvalidArgument).
			With("columns", len(header)).
			Errorf("grid header needs at least %d columns", len(fixedColumns))
	}
	for i, name := range fixedColumns {
		if strings.TrimSpace(header[i]) != name {
			return nil, oops.In("grid").
				Code(permissions.CodeInvalidArgument).
				With("column", i+1).
				Errorf("grid column %d must be %q, got %q", i+1, name, header[i])
		}
	}
	roleIDs := header[len(fixedColumns):]

	var entries []Entry
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read grid row %d: %w", line, err)
		}

		name := permissions.APIName(strings.TrimSpace(record[0]))
		if name == "" {
			continue
		}
		displayName := ""
		if len(record) > 1 {
			displayName = record[1]
		}

		for i, roleID := range roleIDs {
			col := len(fixedColumns) + i
			if col >= len(record) || strings.TrimSpace(record[col]) == "" {
				continue
			}
			level, err := permissions.ParseAccessLevel(record[col])
			if err != nil {
				return nil, oops.In("grid").
					Code(permissions.CodeInvalidArgument).
					With("row", line).
					With("role_id", roleID).
					Wrapf(err, "invalid access on grid row %d", line)
			}
			entries = append(entries, Entry{
				APIName:     name,
				DisplayName: displayName,
				RoleID:      strings.TrimSpace(roleID),
				Access:      level,
			})
		}
	}
	return entries, nil
}

// Consolidate merges entries by permission name, keeping first-seen order.
// Repeated grants for the same role widen to the union of both levels.
func Consolidate(entries []Entry) []Row {
	index := make(map[permissions.APIName]int)
	var rows []Row

	for _, e := range entries {
		i, ok := index[e.APIName]
		if !ok {
			i = len(rows)
			index[e.APIName] = i
			rows = append(rows, Row{
				APIName:     e.APIName,
				DisplayName: e.DisplayName,
				Access:      make(map[string]permissions.AccessLevel),
			})
		}
		row := &rows[i]
		if row.DisplayName == "" {
			row.DisplayName = e.DisplayName
		}
		row.Access[e.RoleID] = union(row.Access[e.RoleID], e.Access)
	}
	return rows
}

func union(a, b permissions.AccessLevel) permissions.AccessLevel {
	if a == "" {
		return b
	}
	if a.Covers(b) {
		return a
	}
	if b.Covers(a) {
		return b
	}
	return permissions.AccessReadWrite
}
