package permissions

import (
	"sort"
	"strings"
)

// Dimension is an axis permissions can be grouped along
type Dimension int

const (
	ByProductCategory Dimension = iota
	ByTaskCategory
	ByOperationType
	ByRiskLevel
	BySensitivity
	Alphabetical
)

// AlphabeticalBucket is the single label used by the alphabetical dimension
const AlphabeticalBucket = "All"

var dimensionNames = map[Dimension]string{
	ByProductCategory: "productCategory",
	ByTaskCategory:    "taskCategory",
	ByOperationType:   "operationType",
	ByRiskLevel:       "riskLevel",
	BySensitivity:     "sensitivity",
	Alphabetical:      "alphabetical",
}

// Dimensions lists every supported dimension in display order
func Dimensions() []Dimension {
	return []Dimension{ByProductCategory, ByTaskCategory, ByOperationType, ByRiskLevel, BySensitivity, Alphabetical}
}

// String returns the wire name of the dimension
func (d Dimension) String() string {
	if name, ok := dimensionNames[d]; ok {
		return name
	}
	return "unknown"
}

// ParseDimension converts a wire name into a Dimension. Names are matched
// case-insensitively; snake_case aliases are accepted.
func ParseDimension(s string) (Dimension, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for d, name := range dimensionNames {
		if strings.ToLower(name) == normalized {
			return d, nil
		}
	}
	return 0, InvalidArgument("grouping", "unknown grouping dimension %q", s)
}

// Groups maps bucket labels to the permissions in each bucket
type Groups map[string][]Permission

// Labels returns the bucket labels sorted lexically
func (g Groups) Labels() []string {
	labels := make([]string, 0, len(g))
	for label := range g {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Size returns the number of memberships across all buckets. Multi-valued
// dimensions can make this larger than the input.
func (g Groups) Size() int {
	n := 0
	for _, perms := range g {
		n += len(perms)
	}
	return n
}

// Group buckets perms along dim. Within a bucket the input order is kept.
// A dimension outside the declared set fails with INVALID_ARGUMENT.
func Group(perms []Permission, dim Dimension) (Groups, error) {
	if _, ok := dimensionNames[dim]; !ok {
		return nil, InvalidArgument("grouping", "unknown grouping dimension %d", int(dim))
	}

	groups := make(Groups)
	for _, p := range perms {
		for _, label := range labelsFor(p, dim) {
			groups[label] = append(groups[label], p)
		}
	}

	if dim == Alphabetical {
		bucket := groups[AlphabeticalBucket]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].APIName < bucket[j].APIName
		})
	}
	return groups, nil
}

func labelsFor(p Permission, dim Dimension) []string {
	switch dim {
	case ByProductCategory:
		return []string{p.ProductCategory}
	case ByTaskCategory:
		return p.TaskCategories
	case ByOperationType:
		return []string{p.OperationType}
	case ByRiskLevel:
		return []string{string(p.RiskLevel)}
	case BySensitivity:
		return p.SensitivityLabels()
	case Alphabetical:
		return []string{AlphabeticalBucket}
	}
	return nil
}
