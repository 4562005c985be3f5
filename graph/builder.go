package graph

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/developer-hhiotsystems/terminology-extraction/relation"
)

// Builder turns extracted relationships into visualization graphs.
type Builder struct {
	logger *zap.SugaredLogger
}

// NewBuilder creates a graph builder.
func NewBuilder(logger *zap.SugaredLogger) *Builder {
	return &Builder{logger: logger.Named("graph.builder")}
}

// Build projects relationships into a graph: one node per distinct term,
// one directed edge per relationship with weight = confidence. Node order
// follows first appearance, so identical input yields an identical graph
// apart from freshly generated edge ids.
func (b *Builder) Build(rels []relation.Relationship) *Graph {
	graph := &Graph{
		Nodes: []Node{},
		Links: []Link{},
	}

	seen := make(map[string]bool)
	addNode := func(term string) string {
		id := normalizeNodeID(term)
		if !seen[id] {
			seen[id] = true
			graph.Nodes = append(graph.Nodes, Node{
				ID:      id,
				Type:    "term",
				Label:   term,
				Visible: true,
			})
		}
		return id
	}

	for _, r := range rels {
		sourceID := addNode(r.SourceTerm)
		targetID := addNode(r.TargetTerm)

		graph.Links = append(graph.Links, Link{
			ID:     uuid.NewString(),
			Source: sourceID,
			Target: targetID,
			Type:   string(r.Kind),
			Weight: r.Confidence,
			Label:  kindLabel(r.Kind),
		})
	}

	graph.Meta = Meta{
		GeneratedAt: time.Now(),
		Stats: Stats{
			TotalNodes: len(graph.Nodes),
			TotalEdges: len(graph.Links),
		},
		RelationshipTypes: collectRelationshipTypeInfo(graph.Links),
	}

	b.logger.Debugw("Graph built",
		"count", len(rels),
		"total_nodes", graph.Meta.Stats.TotalNodes,
		"total_edges", graph.Meta.Stats.TotalEdges,
	)
	return graph
}

// collectRelationshipTypeInfo summarizes the relation kinds present in the
// graph, most common first (ties sorted by type name so output is stable).
func collectRelationshipTypeInfo(links []Link) []RelationshipTypeInfo {
	typeCounts := make(map[string]int)
	for _, link := range links {
		typeCounts[link.Type]++
	}

	var relationshipTypes []RelationshipTypeInfo
	for linkType, count := range typeCounts {
		relationshipTypes = append(relationshipTypes, RelationshipTypeInfo{
			Type:  linkType,
			Label: kindLabel(relation.RelationKind(linkType)),
			Count: count,
		})
	}

	sort.Slice(relationshipTypes, func(i, j int) bool {
		if relationshipTypes[i].Count != relationshipTypes[j].Count {
			return relationshipTypes[i].Count > relationshipTypes[j].Count
		}
		return relationshipTypes[i].Type < relationshipTypes[j].Type
	})

	return relationshipTypes
}

// kindLabel renders a relation kind as a human-readable edge label
// ("PART_OF" -> "part of").
func kindLabel(kind relation.RelationKind) string {
	return strings.ToLower(strings.ReplaceAll(string(kind), "_", " "))
}
