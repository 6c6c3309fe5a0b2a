// Package dto defines the shape of the hierarchy aggregation response: one
// organization with three sibling collections of active brands, businesses
// and franchises. Each business node additionally nests its own franchises.
package dto

import "time"

// OrganizationNode is the root of the hierarchy response.
type OrganizationNode struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// BrandNode is one active brand of the organization.
type BrandNode struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// FranchiseNode is one active franchise. BusinessID is set in the top-level
// franchises collection and omitted when the node is nested under its
// business.
type FranchiseNode struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id,omitempty"`
	Name       string `json:"name"`
	City       string `json:"city,omitempty"`
	IsActive   bool   `json:"is_active"`
}

// BusinessNode is one active business, annotated with its resolved brand
// name when branded.
type BusinessNode struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Industry   string          `json:"industry"`
	BrandID    *string         `json:"brand_id,omitempty"`
	BrandName  *string         `json:"brand_name,omitempty"`
	IsActive   bool            `json:"is_active"`
	Franchises []FranchiseNode `json:"franchises"`
}

// HierarchyResponse is the full aggregation for one organization.
type HierarchyResponse struct {
	Organization OrganizationNode `json:"organization"`
	Brands       []BrandNode      `json:"brands"`
	Businesses   []BusinessNode   `json:"businesses"`
	Franchises   []FranchiseNode  `json:"franchises"`
}
