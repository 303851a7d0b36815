// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the article-engine pipeline.
// Implements: prd010-classification (TopicCategory);
//
//	prd011-research (ResearchBundle, SearchResult);
//	prd012-templates (ContentTemplate, ToneProfile);
//	prd015-assembly (GeneratedDocument);
//	prd016-validation (ValidationMetrics).
//
// See docs/ARCHITECTURE.md § Pipeline Interface, § Data Structures.
package types

// TopicCategory is the coarse content domain derived from the primary
// keyword. It is computed once per generation request and never changes
// afterwards; every downstream stage branches on it to pick vocabulary
// and structure.
type TopicCategory string

const (
	CategoryNutrition     TopicCategory = "nutrition"
	CategoryMedical       TopicCategory = "medical"
	CategoryMarketing     TopicCategory = "marketing"
	CategoryBusiness      TopicCategory = "business"
	CategoryOnlineIncome  TopicCategory = "online_income"
	CategoryTechnology    TopicCategory = "technology"
	CategoryHealthFitness TopicCategory = "health_fitness"
	CategoryGeneral       TopicCategory = "general"
)

// IsHealth reports whether the category carries medical-content obligations
// (disclaimer line, reviewer box, citation post-processing).
func (c TopicCategory) IsHealth() bool {
	return c == CategoryNutrition || c == CategoryMedical || c == CategoryHealthFitness
}

// Valid reports whether c is one of the declared categories.
func (c TopicCategory) Valid() bool {
	switch c {
	case CategoryNutrition, CategoryMedical, CategoryMarketing, CategoryBusiness,
		CategoryOnlineIncome, CategoryTechnology, CategoryHealthFitness, CategoryGeneral:
		return true
	}
	return false
}
