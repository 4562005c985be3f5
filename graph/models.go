// Package graph projects extracted term relationships into a graph
// structure for visualization. It is a consumer boundary: the extraction
// core knows nothing about it.
package graph

import (
	"time"
)

// Graph represents the complete graph structure for visualization
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
	Meta  Meta   `json:"meta"`
}

// Node represents a term in the graph
type Node struct {
	ID      string `json:"id"`
	Type    string `json:"type"` // always "term" for vocabulary nodes
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
}

// Link represents a relationship between terms
type Link struct {
	ID     string  `json:"id"`
	Source string  `json:"source"` // Node ID
	Target string  `json:"target"` // Node ID
	Type   string  `json:"type"`   // Relation kind (e.g., "MEASURES", "USES")
	Weight float64 `json:"value"`  // Link strength = extraction confidence (D3 uses "value")
	Label  string  `json:"label,omitempty"`
}

// Meta contains metadata about the graph
type Meta struct {
	GeneratedAt       time.Time              `json:"generated_at"`
	Stats             Stats                  `json:"stats"`
	RelationshipTypes []RelationshipTypeInfo `json:"relationship_types"`
}

// RelationshipTypeInfo describes a relation kind present in the graph
type RelationshipTypeInfo struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Count int    `json:"count,omitempty"`
}

// Stats provides graph statistics
type Stats struct {
	TotalNodes int `json:"total_nodes,omitempty"`
	TotalEdges int `json:"total_edges,omitempty"`
}
