// Package state holds the in-memory recipes and ingredient stock of a Cookbook session.
// A State is created once at start-up and handed to the commands that read or change it.
package state

import (
	"cookbook/pkg/cooktypes"
)

// State is the application state shared by the recipe and stock commands.
type State struct {
	recipes []cooktypes.Recipe
	stock   []*cooktypes.Ingredient
}

// New creates an empty state.
func New() *State {
	return &State{}
}

// AddRecipe appends a recipe. Names are not required to be unique.
func (s *State) AddRecipe(recipe cooktypes.Recipe) {
	s.recipes = append(s.recipes, recipe)
}

// Recipes returns the recipes in the order they were added.
func (s *State) Recipes() []cooktypes.Recipe {
	recipes := make([]cooktypes.Recipe, len(s.recipes))
	copy(recipes, s.recipes)
	return recipes
}

// FindStock returns the stock entry whose name matches exactly, or nil.
func (s *State) FindStock(name string) *cooktypes.Ingredient {
	for _, ingredient := range s.stock {
		if ingredient.Name == name {
			return ingredient
		}
	}
	return nil
}

// CreateStock adds a new stock entry with a zero amount and returns it.
func (s *State) CreateStock(name, unit string) *cooktypes.Ingredient {
	ingredient := &cooktypes.Ingredient{Name: name, Unit: unit}
	s.stock = append(s.stock, ingredient)
	return ingredient
}

// Stock returns the stock entries in the order they were created.
func (s *State) Stock() []cooktypes.Ingredient {
	stock := make([]cooktypes.Ingredient, 0, len(s.stock))
	for _, ingredient := range s.stock {
		stock = append(stock, *ingredient)
	}
	return stock
}
